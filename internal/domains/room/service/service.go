package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"io"

	"ehotels/config"
	"ehotels/infras/otel"
	"ehotels/infras/s3"
	hotelDto "ehotels/internal/domains/hotel/model/dto"
	hotelModel "ehotels/internal/domains/hotel/model"
	hotelRepo "ehotels/internal/domains/hotel/repository"
	"ehotels/internal/domains/room/model"
	"ehotels/internal/domains/room/model/dto"
	"ehotels/internal/domains/room/repository"
	"ehotels/shared"
	"ehotels/shared/base64"
	"ehotels/shared/cache"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/photo"
	"ehotels/shared/session"
	"ehotels/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = constant.CachePrefixRoom + "get"
	cacheGetAllRoom = constant.CachePrefixRoom + "gets"
	cacheCountRoom  = constant.CachePrefixRoom + "count"
)

const (
	msgRoomNotFound   = "room not found"
	msgHotelNotFound  = "hotel not found"
	msgRoomReferenced = "cannot delete the room because bookings or rentals still reference it"
	msgRoomConflict   = "room conflicts with existing data"
)

type Room interface {
	Form(ctx context.Context) (dto.RoomFormResponse, error)
	Create(ctx context.Context, req dto.RoomRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Update(ctx context.Context, id int64, req dto.RoomRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo       repository.Room
	hotelRepo  hotelRepo.Hotel
	transactor transaction.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	s3         s3.S3
}

func New(
	repo repository.Room,
	hotelRepo hotelRepo.Hotel,
	transactor transaction.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Room {
	return &serviceImpl{
		repo:       repo,
		hotelRepo:  hotelRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		s3:         s3,
	}
}

func (s *serviceImpl) Form(ctx context.Context) (res dto.RoomFormResponse, err error) {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.RoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureHotelExists(ctx, req.HotelID); err != nil {
		return err
	}

	room := req.ToModel(session.ActorFromContext(ctx))

	if req.HasImage() {
		if room.Image, err = s.uploadImage(ctx, req); err != nil {
			return err
		}
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.repo.InsertTx(ctx, tx, room)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		s.deleteImage(ctx, room.Image)

		return failure.FromStore(err, msgRoomConflict) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.count(ctx, params)
	if err != nil {
		return res, err
	}

	rooms, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// Update rewrites every editable column. The stored image is replaced only
// when a new one is sent; the old object is removed after the commit.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.RoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImage)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if current.ID == 0 {
		return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	if err = s.ensureHotelExists(ctx, req.HotelID); err != nil {
		return err
	}

	actor := session.ActorFromContext(ctx)
	fields := shared.UpdateFields(req.ToModel(actor), actor)

	var imageURL string

	if req.HasImage() {
		if imageURL, err = s.uploadImage(ctx, req); err != nil {
			return err
		}

		fields[model.FieldImage] = imageURL
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateTx(ctx, tx, fields, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to update room")

		s.deleteImage(ctx, imageURL)

		return failure.FromStore(err, msgRoomConflict) // nolint:wrapcheck
	}

	if imageURL != constant.Empty {
		s.deleteImage(ctx, current.Image)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImage)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if current.ID == 0 {
		return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.DeleteTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to delete room")

		return failure.FromStore(err, msgRoomReferenced) // nolint:wrapcheck
	}

	s.deleteImage(ctx, current.Image)
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

// uploadImage stores the image of req under the room directory and returns its URL.
func (s *serviceImpl) uploadImage(ctx context.Context, req dto.RoomRequest) (string, error) {
	var data []byte

	if req.ImageFile != nil {
		file, err := req.ImageFile.Open()
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to open image: %w", err)
		}
		defer file.Close()

		if data, err = io.ReadAll(file); err != nil {
			return constant.Empty, fmt.Errorf("failed to read image: %w", err)
		}
	} else {
		var err error

		data, _, _, err = base64.Decode(req.Image)
		if err != nil {
			return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	data, contentType, extension, err := photo.Fit(data, photo.MaxSide)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	url, err := s.s3.Upload(ctx, model.EntityName, uuid.NewString()+extension, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	if err := s.s3.DeleteByURL(context.WithoutCancel(ctx), url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete room image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
