package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ehotels/infras/jwt"
	jwtMocks "ehotels/infras/jwt/mocks"
	otelMocks "ehotels/infras/otel/mocks"
	accountMocks "ehotels/internal/domains/account/mocks"
	accountModel "ehotels/internal/domains/account/model"
	"ehotels/internal/domains/auth/model/dto"
	"ehotels/internal/domains/auth/service"
	employeeMocks "ehotels/internal/domains/employee/mocks"
	employeeModel "ehotels/internal/domains/employee/model"
	"ehotels/shared/constant"
	"ehotels/shared/failure"
	"ehotels/shared/transaction"
	txMocks "ehotels/shared/transaction/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// "password" hashed with bcrypt.
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type fixture struct {
	accountRepo  *accountMocks.MockAccount
	employeeRepo *employeeMocks.MockEmployee
	transactor   *txMocks.MockTransactor
	jwt          *jwtMocks.MockJWT
	svc          service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		accountRepo:  accountMocks.NewMockAccount(ctrl),
		employeeRepo: employeeMocks.NewMockEmployee(ctrl),
		transactor:   txMocks.NewMockTransactor(ctrl),
		jwt:          jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.accountRepo, f.employeeRepo, f.transactor, otelMocks.NewOtel(), f.jwt)

	return f
}

func managerAccount() accountModel.Account {
	return accountModel.Account{
		ID:       1,
		Username: "manager",
		Password: passwordHash,
		UserType: constant.UserTypeEmployee,
		UserID:   1,
		Active:   true,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer", ExpiresIn: 900}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.LoginRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "successful login carries the employee position",
			req:  dto.LoginRequest{Username: "manager", Password: "password"},
			setup: func(f fixture) {
				f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(managerAccount(), nil)
				f.employeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), employeeModel.FieldID, employeeModel.FieldPosition).
					Return(employeeModel.Employee{ID: 1, Position: constant.PositionManager}, nil)
				f.jwt.EXPECT().
					GenerateTokenPair(jwt.Identity{AccountID: 1, UserType: constant.UserTypeEmployee, UserID: 1, Position: constant.PositionManager}).
					Return(tokenPair(), nil)
				f.transactor.EXPECT().
					WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn transaction.TxFunc) error {
						return fn(ctx, nil)
					})
				f.accountRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "last login failure does not block the login",
			req:  dto.LoginRequest{Username: "manager", Password: "password"},
			setup: func(f fixture) {
				f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(managerAccount(), nil)
				f.employeeRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{ID: 1, Position: constant.PositionManager}, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair(), nil)
				f.transactor.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "ghost", Password: "password"},
			setup: func(f fixture) {
				f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "manager", Password: "wrong"},
			setup: func(f fixture) {
				f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(managerAccount(), nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive account",
			req:  dto.LoginRequest{Username: "manager", Password: "password"},
			setup: func(f fixture) {
				account := managerAccount()
				account.Active = false

				f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "store error",
			req:  dto.LoginRequest{Username: "manager", Password: "password"},
			setup: func(f fixture) {
				f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("reloads the position", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(&jwt.Claims{AccountID: 1}, nil)
		f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(managerAccount(), nil)
		f.employeeRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(employeeModel.Employee{ID: 1, Position: constant.PositionReceptionist}, nil)
		f.jwt.EXPECT().
			GenerateTokenPair(jwt.Identity{AccountID: 1, UserType: constant.UserTypeEmployee, UserID: 1, Position: constant.PositionReceptionist}).
			Return(tokenPair(), nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bogus"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("deleted account", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(&jwt.Claims{AccountID: 9}, nil)
		f.accountRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
