package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"

	"ehotels/infras/otel"
	"ehotels/internal/domains/booking/model"
	"ehotels/internal/domains/booking/model/dto"
	"ehotels/internal/domains/booking/repository"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	detailRepo repository.BookingDetail
	otel       otel.Otel
}

func New(detailRepo repository.BookingDetail, otel otel.Otel) Booking {
	return &serviceImpl{
		detailRepo: detailRepo,
		otel:       otel,
	}
}

// Dashboard lists the confirmed bookings that have not started yet, earliest
// check-in first. The result changes with the date so it is never cached.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    constant.BookingStatusConfirmed,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    timezone.Today().Format(constant.DateOnly),
			Table:    model.TableName,
		},
	)

	bookings, err := s.detailRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		return res, fmt.Errorf("failed to get upcoming bookings: %w", err)
	}

	res.FromModels(bookings)

	scope.SetAttribute("bookings.count", len(bookings))

	return res, nil
}
