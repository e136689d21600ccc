package hotel

import (
	"net/http"

	"ehotels/infras/otel"
	"ehotels/internal/domains/hotel/model/dto"
	"ehotels/internal/domains/hotel/service"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/validator"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathHotels, handler.GetHotels)
	router.Get(constant.PathHotels+constant.PathAdd, handler.AddHotelForm)
	router.Post(constant.PathHotels+constant.PathAdd, handler.CreateHotel)
	router.Get(constant.PathHotels+constant.PathEdit, handler.GetHotel)
	router.Post(constant.PathHotels+constant.PathEdit, handler.UpdateHotel)
	router.Post(constant.PathHotels+constant.PathDelete, handler.DeleteHotel)
}

// GetHotels lists hotels ordered by hotel name.
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetHotelsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/hotels [get]
// @Security BearerAuth
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, false)

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddHotelForm returns the hotel chains a new hotel can belong to.
// @Summary Add hotel form
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.HotelFormResponse]
// @Router /employee/hotels/add [get]
// @Security BearerAuth
func (handler *Handler) AddHotelForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddHotelForm")
	defer scope.End()

	res, err := handler.service.Form(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load hotel form")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateHotel adds a hotel to a chain.
// @Summary Add hotel
// @Tags Hotel
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.HotelRequest true "Hotel"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/hotels/add [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	var req dto.HotelRequest
	if err := validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid hotel request")
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathHotels, "Hotel added successfully")
}

// GetHotel returns a hotel for the edit form.
// @Summary Edit hotel form
// @Tags Hotel
// @Produce json
// @Param id path integer true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/hotels/edit/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get hotel")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateHotel replaces every editable field of a hotel.
// @Summary Edit hotel
// @Tags Hotel
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path integer true "Hotel ID"
// @Param request body dto.HotelRequest true "Hotel"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/hotels/edit/{id} [post]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.HotelRequest
	if err = validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid hotel request")
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update hotel")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathHotels, "Hotel updated successfully")
}

// DeleteHotel removes a hotel.
// @Summary Delete hotel
// @Tags Hotel
// @Produce json
// @Param id path integer true "Hotel ID"
// @Success 303 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "the hotel has existing bookings"
// @Failure 500 {object} response.Error
// @Router /employee/hotels/delete/{id} [post]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete hotel")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathHotels, "Hotel deleted successfully")
}
