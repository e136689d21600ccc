package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Customer=MockCustomerService

import (
	"context"
	"fmt"

	"ehotels/config"
	"ehotels/infras/otel"
	"ehotels/internal/domains/customer/model"
	"ehotels/internal/domains/customer/model/dto"
	"ehotels/internal/domains/customer/repository"
	"ehotels/shared"
	"ehotels/shared/cache"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/session"
	"ehotels/shared/timezone"
	"ehotels/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer    = constant.CachePrefixCustomer + "get"
	cacheGetAllCustomer = constant.CachePrefixCustomer + "gets"
	cacheCountCustomer  = constant.CachePrefixCustomer + "count"
)

const (
	msgCustomerNotFound   = "customer not found"
	msgCustomerReferenced = "cannot delete the customer because bookings or rentals still reference it"
	msgCustomerConflict   = "customer conflicts with existing data"
)

type Customer interface {
	Form(ctx context.Context) dto.CustomerFormResponse
	Create(ctx context.Context, req dto.CustomerRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetCustomersResponse, error)
	Get(ctx context.Context, id int64) (dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, req dto.CustomerRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo       repository.Customer
	transactor transaction.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Customer,
	transactor transaction.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Customer {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Form(_ context.Context) dto.CustomerFormResponse {
	return dto.CustomerFormResponse{RegistrationDate: timezone.Format(timezone.Now(), constant.DateOnly)}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := req.ToModel(session.ActorFromContext(ctx))
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.repo.InsertTx(ctx, tx, customer)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return failure.FromStore(err, msgCustomerConflict) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.count(ctx, params)
	if err != nil {
		return res, err
	}

	customers, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(customers, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return res, failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.CustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
	}

	actor := session.ActorFromContext(ctx)

	customer, err := req.ToModel(actor)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	fields := shared.UpdateFields(customer, actor)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateTx(ctx, tx, fields, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")

		return failure.FromStore(err, msgCustomerConflict) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.DeleteTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("customer_id", id).Msg("failed to delete customer")

		return failure.FromStore(err, msgCustomerReferenced) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()
}
