package booking

import (
	"net/http"

	"ehotels/infras/otel"
	"ehotels/internal/domains/booking/service"
	"ehotels/shared/constant"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathDashboard, handler.Dashboard)
}

// Dashboard lists the bookings checking in today or later.
// @Summary Front desk dashboard
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/dashboard [get]
// @Security BearerAuth
func (handler *Handler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
