package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"ehotels/infras/jwt"
	"ehotels/infras/otel"
	accountModel "ehotels/internal/domains/account/model"
	accountRepo "ehotels/internal/domains/account/repository"
	"ehotels/internal/domains/auth/model/dto"
	employeeModel "ehotels/internal/domains/employee/model"
	employeeRepo "ehotels/internal/domains/employee/repository"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/password"
	"ehotels/shared/session"
	"ehotels/shared/timezone"
	"ehotels/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "invalid username or password"
	msgAccountInactive    = "account is deactivated"
	msgInvalidRefresh     = "invalid refresh token"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	accountRepo  accountRepo.Account
	employeeRepo employeeRepo.Employee
	transactor   transaction.Transactor
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(
	accountRepo accountRepo.Account,
	employeeRepo employeeRepo.Employee,
	transactor transaction.Transactor,
	otel otel.Otel,
	jwt jwt.JWT,
) Auth {
	return &serviceImpl{
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		transactor:   transactor,
		otel:         otel,
		jwtService:   jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	usernameFilter := gDto.And(gDto.Filter{
		Field:    accountModel.FieldUsername,
		Operator: gDto.FilterOperatorEq,
		Value:    req.Username,
		Table:    accountModel.TableName,
	})

	account, err := s.accountRepo.Get(ctx, usernameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == 0 {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, account.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	tokenPair, err := s.issueTokens(ctx, account)
	if err != nil {
		return res, err
	}

	s.touchLastLogin(ctx, account)

	res.FromTokenPair(tokenPair)

	return res, nil
}

// RefreshToken reloads the account behind a refresh token so that a changed
// position or a deactivated account takes effect on the next pair.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized(msgInvalidRefresh) // nolint:wrapcheck
	}

	account, err := s.accountRepo.Get(ctx, shared.FilterByID(claims.AccountID, accountModel.FieldID, accountModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == 0 {
		return res, failure.Unauthorized(msgInvalidRefresh) // nolint:wrapcheck
	}

	tokenPair, err := s.issueTokens(ctx, account)
	if err != nil {
		return res, err
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) issueTokens(ctx context.Context, account accountModel.Account) (*jwt.TokenPair, error) {
	if !account.Active {
		return nil, failure.Unauthorized(msgAccountInactive) // nolint:wrapcheck
	}

	identity := jwt.Identity{
		AccountID: account.ID,
		UserType:  account.UserType,
		UserID:    account.UserID,
	}

	if account.UserType == constant.UserTypeEmployee {
		employee, err := s.employeeRepo.Get(
			ctx,
			shared.FilterByID(account.UserID, employeeModel.FieldID, employeeModel.TableName),
			employeeModel.FieldID, employeeModel.FieldPosition,
		)
		if err != nil {
			log.Error().Err(err).Msg("failed to get employee")

			return nil, fmt.Errorf("failed to get employee: %w", err)
		}

		if employee.ID == 0 {
			log.Warn().Int64("account_id", account.ID).Msg("account points at a missing employee")

			return nil, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
		}

		identity.Position = employee.Position
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(identity)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokenPair, nil
}

func (s *serviceImpl) touchLastLogin(ctx context.Context, account accountModel.Account) {
	actor := session.Session{UserType: account.UserType, UserID: account.UserID}.Actor()
	fields := shared.UpdateFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, actor)
	filter := shared.FilterByID(account.ID, accountModel.FieldID, accountModel.TableName)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := s.accountRepo.UpdateTx(ctx, tx, fields, filter)

		return err
	})
	if err != nil {
		log.Warn().Err(err).Int64("account_id", account.ID).Msg("failed to update last login")
	}
}
