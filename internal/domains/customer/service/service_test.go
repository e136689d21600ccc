package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"ehotels/config"
	otelMocks "ehotels/infras/otel/mocks"
	customerMocks "ehotels/internal/domains/customer/mocks"
	"ehotels/internal/domains/customer/model"
	"ehotels/internal/domains/customer/model/dto"
	"ehotels/internal/domains/customer/service"
	cacheMocks "ehotels/shared/cache/mocks"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/session"
	"ehotels/shared/timezone"
	"ehotels/shared/transaction"
	txMocks "ehotels/shared/transaction/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo       *customerMocks.MockCustomer
	transactor *txMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
	svc        service.Customer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       customerMocks.NewMockCustomer(ctrl),
		transactor: txMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.transactor, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) runTransaction() {
	f.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn transaction.TxFunc) error {
			return fn(ctx, nil)
		})
}

func managerContext() context.Context {
	return session.WithSession(context.Background(), session.Session{
		UserType: constant.UserTypeEmployee,
		UserID:   1,
		Position: constant.PositionManager,
	})
}

func validRequest() dto.CustomerRequest {
	return dto.CustomerRequest{
		FullName:         "Jane Roe",
		Address:          "1 Rideau St, Ottawa",
		IDType:           "Passport",
		IDNumber:         "P1234567",
		RegistrationDate: "2024-04-01",
	}
}

func TestCustomerService_Form(t *testing.T) {
	f := newFixture(t)

	res := f.svc.Form(context.Background())

	assert.Equal(t, timezone.Format(timezone.Now(), constant.DateOnly), res.RegistrationDate)
}

func TestCustomerService_Create(t *testing.T) {
	t.Run("inserts the parsed registration date", func(t *testing.T) {
		f := newFixture(t)

		f.runTransaction()
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, customer model.Customer) error {
				assert.Equal(t, "Jane Roe", customer.FullName)
				assert.Equal(t, "2024-04-01", customer.RegistrationDate.Format(constant.DateOnly))
				assert.Equal(t, "employee:1", customer.CreatedBy)

				return nil
			})

		err := f.svc.Create(managerContext(), validRequest())
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("empty registration date defaults to today", func(t *testing.T) {
		f := newFixture(t)

		req := validRequest()
		req.RegistrationDate = ""

		f.runTransaction()
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, customer model.Customer) error {
				assert.Equal(t, timezone.Today(), customer.RegistrationDate)

				return nil
			})

		err := f.svc.Create(managerContext(), req)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("malformed date is a bad request", func(t *testing.T) {
		f := newFixture(t)

		req := validRequest()
		req.RegistrationDate = "01/04/2024"

		err := f.svc.Create(managerContext(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestCustomerService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).
		Return([]model.Customer{{ID: 4, FullName: "Alan Poe"}, {ID: 3, FullName: "Jane Roe"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{})
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Customers, 2)
	assert.Equal(t, "Alan Poe", res.Customers[0].FullName)
	assert.Equal(t, 2, res.TotalData)
}

func TestCustomerService_Get(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "customer:get:3", gomock.Any()).Return(nil)

		_, err := f.svc.Get(context.Background(), 3)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

		_, err := f.svc.Get(context.Background(), 3)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCustomerService_Update(t *testing.T) {
	t.Run("full row update", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.runTransaction()
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, "Jane Roe", fields["full_name"])
				assert.Equal(t, "P1234567", fields["id_number"])
				assert.NotContains(t, fields, model.FieldID)

				return 1, nil
			})

		err := f.svc.Update(managerContext(), 3, validRequest())
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing customer", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(managerContext(), 3, validRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCustomerService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		repoErr  error
		wantCode int
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantCode: http.StatusNotFound},
		{name: "referenced", repoErr: &pq.Error{Code: constant.PqErrorCodeFkViolation}, wantCode: http.StatusConflict},
		{name: "store error", repoErr: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.runTransaction()
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.affected, tt.repoErr)

			err := f.svc.Delete(managerContext(), 3)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
