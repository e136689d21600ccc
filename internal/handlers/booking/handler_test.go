package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "ehotels/infras/otel/mocks"
	bookingMocks "ehotels/internal/domains/booking/mocks"
	"ehotels/internal/domains/booking/model/dto"
	"ehotels/internal/handlers/booking"
	"ehotels/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboard(t *testing.T) {
	tests := []struct {
		name     string
		res      dto.DashboardResponse
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "lists upcoming bookings",
			res: dto.DashboardResponse{
				Today: "2024-05-01",
				Bookings: []dto.BookingDetailResponse{
					{ID: 10, RoomID: 5, Status: constant.BookingStatusConfirmed, CustomerName: "Jane Roe"},
				},
			},
			wantCode: http.StatusOK,
			wantBody: `"customer_name":"Jane Roe"`,
		},
		{
			name:     "store failure is masked",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
			svc.EXPECT().Dashboard(gomock.Any()).Return(tt.res, tt.err)

			handler := booking.New(svc, otelMocks.NewOtel())

			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
