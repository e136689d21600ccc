package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Employee=MockEmployeeService

import (
	"context"
	"fmt"

	"ehotels/config"
	"ehotels/infras/otel"
	accountModel "ehotels/internal/domains/account/model"
	accountRepo "ehotels/internal/domains/account/repository"
	"ehotels/internal/domains/employee/model"
	"ehotels/internal/domains/employee/model/dto"
	"ehotels/internal/domains/employee/repository"
	hotelModel "ehotels/internal/domains/hotel/model"
	hotelDto "ehotels/internal/domains/hotel/model/dto"
	hotelRepo "ehotels/internal/domains/hotel/repository"
	"ehotels/shared"
	"ehotels/shared/cache"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/password"
	"ehotels/shared/session"
	"ehotels/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetEmployee    = constant.CachePrefixEmployee + "get"
	cacheGetAllEmployee = constant.CachePrefixEmployee + "gets"
	cacheCountEmployee  = constant.CachePrefixEmployee + "count"
)

const (
	msgEmployeeNotFound   = "employee not found"
	msgHotelNotFound      = "hotel not found"
	msgEmployeeConflict   = "an employee with this ssn or an account with this username already exists"
	msgEmployeeReferenced = "cannot delete the employee because rentals still reference it"
)

type Employee interface {
	Form(ctx context.Context) (dto.EmployeeFormResponse, error)
	Create(ctx context.Context, req dto.EmployeeAddRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id int64) (dto.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req dto.EmployeeEditRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Employee
	accountRepo accountRepo.Account
	hotelRepo   hotelRepo.Hotel
	transactor  transaction.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Employee,
	accountRepo accountRepo.Account,
	hotelRepo hotelRepo.Hotel,
	transactor transaction.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Employee {
	return &serviceImpl{
		repo:        repo,
		accountRepo: accountRepo,
		hotelRepo:   hotelRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Form(ctx context.Context) (res dto.EmployeeFormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := s.hotelRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, hotelModel.FieldID, hotelModel.FieldHotelName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.Hotels = hotelDto.HotelOptionsFromModels(hotels)

	return res, nil
}

// Create inserts the employee and, when credentials are sent, its account in
// the same transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.EmployeeAddRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureHotelExists(ctx, req.HotelID); err != nil {
		return err
	}

	var hashedPassword string

	if req.HasAccount() {
		if hashedPassword, err = password.Hash(req.Password); err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	actor := session.ActorFromContext(ctx)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		employeeID, err := s.repo.InsertReturningIDTx(ctx, tx, req.ToModel(actor))
		if err != nil {
			return err
		}

		if !req.HasAccount() {
			return nil
		}

		return s.accountRepo.InsertTx(ctx, tx, req.ToAccountModel(employeeID, hashedPassword, actor))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return failure.FromStore(err, msgEmployeeConflict) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEmployee, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employees")

		return res, nil
	}

	total, err := s.count(ctx, params)
	if err != nil {
		return res, err
	}

	employees, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(employees, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEmployee, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetEmployee, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employee")

		return res, nil
	}

	employee, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == 0 {
		return res, failure.NotFound(msgEmployeeNotFound) // nolint:wrapcheck
	}

	res.FromModel(employee)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.EmployeeEditRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgEmployeeNotFound) // nolint:wrapcheck
	}

	if err = s.ensureHotelExists(ctx, req.HotelID); err != nil {
		return err
	}

	actor := session.ActorFromContext(ctx)
	fields := shared.UpdateFields(req.ToModel(actor), actor)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateTx(ctx, tx, fields, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NotFound(msgEmployeeNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("employee_id", id).Msg("failed to update employee")

		return failure.FromStore(err, msgEmployeeConflict) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes the employee together with its login, if any.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	accountFilter := gDto.And(
		gDto.Filter{Field: accountModel.FieldUserType, Value: constant.UserTypeEmployee, Operator: gDto.FilterOperatorEq, Table: accountModel.TableName},
		gDto.Filter{Field: accountModel.FieldUserID, Value: id, Operator: gDto.FilterOperatorEq, Table: accountModel.TableName},
	)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.DeleteTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NotFound(msgEmployeeNotFound) // nolint:wrapcheck
		}

		_, err = s.accountRepo.DeleteTx(ctx, tx, accountFilter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Int64("employee_id", id).Msg("failed to delete employee")

		return failure.FromStore(err, msgEmployeeReferenced) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ensureHotelExists(ctx context.Context, hotelID int64) error {
	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEmployee, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete employee from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()
}
