package rental_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	otelMocks "ehotels/infras/otel/mocks"
	rentalMocks "ehotels/internal/domains/rental/mocks"
	"ehotels/internal/domains/rental/model/dto"
	"ehotels/internal/handlers/rental"
	"ehotels/shared/constant"
	"ehotels/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*rentalMocks.MockRentalService, http.Handler) {
	t.Helper()

	svc := rentalMocks.NewMockRentalService(gomock.NewController(t))
	handler := rental.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestConvertBooking(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		serviceErr   error
		callsService bool
		wantCode     int
		wantLocation string
	}{
		{
			name:         "converted",
			form:         url.Values{"booking_id": {"10"}},
			callsService: true,
			wantCode:     http.StatusSeeOther,
			wantLocation: constant.PathDashboard,
		},
		{
			name:     "missing booking id",
			form:     url.Values{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:         "unknown booking",
			form:         url.Values{"booking_id": {"99"}},
			serviceErr:   failure.NotFound("booking not found"),
			callsService: true,
			wantCode:     http.StatusNotFound,
		},
		{
			name:         "already converted",
			form:         url.Values{"booking_id": {"10"}},
			serviceErr:   failure.Conflict("booking has already been converted to a rental"),
			callsService: true,
			wantCode:     http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.callsService {
				svc.EXPECT().ConvertBooking(gomock.Any(), gomock.Any()).Return(tt.serviceErr)
			}

			rec := postForm(router, "/employee/convert-booking", tt.form)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(constant.RequestHeaderLocation))
		})
	}
}

func TestRentRoomForm(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().RentForm(gomock.Any()).Return(dto.RentFormResponse{CurrentDate: "2024-05-01"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/rent-room", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current_date":"2024-05-01"`)
}

func TestRentRoom(t *testing.T) {
	form := url.Values{
		"customer_name":  {"Jane Roe"},
		"hotel_id":       {"1"},
		"room_id":        {"5"},
		"checkin":        {"2024-05-01"},
		"checkout":       {"2024-05-03"},
		"payment_amount": {"240"},
		"payment_method": {"Card"},
	}

	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().WalkIn(gomock.Any(), dto.WalkInRequest{
			CustomerName:  "Jane Roe",
			HotelID:       1,
			RoomID:        5,
			CheckIn:       "2024-05-01",
			CheckOut:      "2024-05-03",
			PaymentAmount: 240,
			PaymentMethod: "Card",
		}).Return(dto.WalkInResponse{RentalID: 7, CustomerName: "Jane Roe", CurrentDate: "2024-05-01"}, nil)

		rec := postForm(router, "/employee/rent-room", form)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rental_id":7`)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, router := setup(t)

		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}

		bad.Set("checkin", "01/05/2024")

		rec := postForm(router, "/employee/rent-room", bad)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ambiguous customer", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().WalkIn(gomock.Any(), gomock.Any()).
			Return(dto.WalkInResponse{}, failure.Conflict("customer name is ambiguous, provide customer_id"))

		rec := postForm(router, "/employee/rent-room", form)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "ambiguous")
	})
}
