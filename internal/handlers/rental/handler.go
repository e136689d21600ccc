package rental

import (
	"net/http"
	"strconv"

	"ehotels/infras/otel"
	"ehotels/internal/domains/rental/model/dto"
	"ehotels/internal/domains/rental/service"
	"ehotels/shared/constant"
	"ehotels/shared/validator"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post(constant.PathConvertBooking, handler.ConvertBooking)
	router.Get(constant.PathRentRoom, handler.RentRoomForm)
	router.Post(constant.PathRentRoom, handler.RentRoom)
}

// ConvertBooking turns a confirmed booking into an ongoing rental.
// @Summary Convert booking to rental
// @Description Cancels the booking and opens a rental for it in one transaction.
// @Tags Rental
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.ConvertBookingRequest true "Booking to convert"
// @Success 303 {object} response.Message "Booking converted to rental"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/convert-booking [post]
// @Security BearerAuth
func (handler *Handler) ConvertBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertBooking")
	defer scope.End()

	var req dto.ConvertBookingRequest
	if err := validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid convert booking request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ConvertBooking(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", req.BookingID).Msg("failed to convert booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking converted: " + strconv.FormatInt(req.BookingID, 10))

	response.WithRedirect(writer, constant.PathDashboard, "Booking converted to rental")
}

// RentRoomForm returns the defaults of the walk-in form.
// @Summary Walk-in rental form
// @Tags Rental
// @Produce json
// @Success 200 {object} response.Data[dto.RentFormResponse]
// @Router /employee/rent-room [get]
// @Security BearerAuth
func (handler *Handler) RentRoomForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RentRoomForm")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.RentForm(ctx))
}

// RentRoom records a walk-in rental.
// @Summary Walk-in rental
// @Description The customer is picked by customer_id when sent, otherwise by exact customer_name. A customer_name sent with customer_id must match the stored name.
// @Tags Rental
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.WalkInRequest true "Walk-in rental"
// @Success 201 {object} response.Data[dto.WalkInResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/rent-room [post]
// @Security BearerAuth
func (handler *Handler) RentRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RentRoom")
	defer scope.End()

	var req dto.WalkInRequest
	if err := validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid rent room request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.WalkIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rent room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
