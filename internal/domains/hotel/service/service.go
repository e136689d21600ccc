package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"

	"ehotels/config"
	"ehotels/infras/otel"
	bookingModel "ehotels/internal/domains/booking/model"
	bookingRepo "ehotels/internal/domains/booking/repository"
	"ehotels/internal/domains/hotel/model"
	"ehotels/internal/domains/hotel/model/dto"
	"ehotels/internal/domains/hotel/repository"
	chainModel "ehotels/internal/domains/hotelchain/model"
	chainRepo "ehotels/internal/domains/hotelchain/repository"
	"ehotels/shared"
	"ehotels/shared/cache"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/session"
	"ehotels/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = constant.CachePrefixHotel + "get"
	cacheGetAllHotel = constant.CachePrefixHotel + "gets"
	cacheCountHotel  = constant.CachePrefixHotel + "count"
)

const (
	msgHotelNotFound      = "hotel not found"
	msgHotelChainNotFound = "hotel chain not found"
	msgHotelHasBookings   = "cannot delete the hotel because it has existing bookings"
	msgHotelReferenced    = "cannot delete the hotel because rooms, employees or rentals still reference it"
	msgHotelConflict      = "hotel conflicts with existing data"
)

type Hotel interface {
	Form(ctx context.Context) (dto.HotelFormResponse, error)
	Create(ctx context.Context, req dto.HotelRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id int64) (dto.HotelResponse, error)
	Update(ctx context.Context, id int64, req dto.HotelRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Hotel
	chainRepo   chainRepo.HotelChain
	bookingRepo bookingRepo.Booking
	transactor  transaction.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Hotel,
	chainRepo chainRepo.HotelChain,
	bookingRepo bookingRepo.Booking,
	transactor transaction.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:        repo,
		chainRepo:   chainRepo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Form(ctx context.Context) (res dto.HotelFormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	chains, err := s.chainRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chains")

		return res, fmt.Errorf("failed to get hotel chains: %w", err)
	}

	res.FromModels(chains)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.HotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureChainExists(ctx, req.HotelChainID); err != nil {
		return err
	}

	hotel := req.ToModel(session.ActorFromContext(ctx))

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.repo.InsertTx(ctx, tx, hotel)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return failure.FromStore(err, msgHotelConflict) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.count(ctx, params)
	if err != nil {
		return res, err
	}

	hotels, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(hotels, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == 0 {
		return res, failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.HotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
	}

	if err = s.ensureChainExists(ctx, req.HotelChainID); err != nil {
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
			return failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("hotel_id", id).Msg("failed to update hotel")

		return failure.FromStore(err, msgHotelConflict) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete refuses to remove a hotel that any booking references. The check
// and the delete share one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	bookingFilter := shared.FilterByID(id, bookingModel.FieldHotelID, bookingModel.TableName)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		exist, err := s.repo.ExistTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if !exist {
			return failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
		}

		hasBookings, err := s.bookingRepo.ExistTx(ctx, tx, bookingFilter)
		if err != nil {
			return err
		}

		if hasBookings {
			return failure.Conflict(msgHotelHasBookings) // nolint:wrapcheck
		}

		if _, err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("hotel_id", id).Msg("failed to delete hotel")

		return failure.FromStore(err, msgHotelReferenced) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ensureChainExists(ctx context.Context, chainID int64) error {
	exist, err := s.chainRepo.Exist(ctx, shared.FilterByID(chainID, chainModel.FieldID, chainModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel chain exists")

		return fmt.Errorf("failed to check if hotel chain exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgHotelChainNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixEmployee)
	}()
}
