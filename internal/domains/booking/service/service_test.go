package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	otelMocks "ehotels/infras/otel/mocks"
	bookingMocks "ehotels/internal/domains/booking/mocks"
	"ehotels/internal/domains/booking/model"
	"ehotels/internal/domains/booking/service"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDetailRepo := bookingMocks.NewMockBookingDetail(ctrl)
	svc := service.New(mockDetailRepo, otelMocks.NewOtel())

	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockDetailRepo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.BookingDetail, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "(bookings.status = :bookings_status AND bookings.check_in_date >= :bookings_check_in_date)", where)
			assert.Equal(t, constant.BookingStatusConfirmed, args["bookings_status"])
			assert.Equal(t, timezone.Today().Format(constant.DateOnly), args["bookings_check_in_date"])

			return []model.BookingDetail{
				{
					ID:           10,
					RoomID:       5,
					CheckInDate:  checkIn,
					CheckOutDate: checkIn.AddDate(0, 0, 3),
					Status:       constant.BookingStatusConfirmed,
					HotelName:    "eHotels Ottawa Centre",
					CustomerName: "Jane Roe",
				},
			}, nil
		})

	res, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Bookings, 1)
	assert.Equal(t, int64(10), res.Bookings[0].ID)
	assert.Equal(t, "2025-06-01", res.Bookings[0].CheckInDate)
	assert.Equal(t, "2025-06-04", res.Bookings[0].CheckOutDate)
	assert.Equal(t, "Jane Roe", res.Bookings[0].CustomerName)
	assert.Equal(t, timezone.Today().Format(constant.DateOnly), res.Today)
}

func TestBookingService_Dashboard_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDetailRepo := bookingMocks.NewMockBookingDetail(ctrl)
	svc := service.New(mockDetailRepo, otelMocks.NewOtel())

	mockDetailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.BookingDetail{}, nil)

	res, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, res.Bookings)
	assert.Empty(t, res.Bookings)
}

func TestBookingService_Dashboard_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDetailRepo := bookingMocks.NewMockBookingDetail(ctrl)
	svc := service.New(mockDetailRepo, otelMocks.NewOtel())

	mockDetailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := svc.Dashboard(context.Background())
	assert.Error(t, err)
}
