package room

import (
	"net/http"

	"ehotels/infras/otel"
	"ehotels/internal/domains/room/model/dto"
	"ehotels/internal/domains/room/service"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/validator"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathRooms, handler.GetRooms)
	router.Get(constant.PathRooms+constant.PathAdd, handler.AddRoomForm)
	router.Post(constant.PathRooms+constant.PathAdd, handler.CreateRoom)
	router.Get(constant.PathRooms+constant.PathEdit, handler.GetRoom)
	router.Post(constant.PathRooms+constant.PathEdit, handler.UpdateRoom)
	router.Post(constant.PathRooms+constant.PathDelete, handler.DeleteRoom)
}

// GetRooms lists rooms ordered by id.
// @Summary List rooms
// @Tags Room
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, false)

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddRoomForm returns the hotels a room can belong to.
// @Summary Add room form
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.RoomFormResponse]
// @Router /employee/rooms/add [get]
// @Security BearerAuth
func (handler *Handler) AddRoomForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoomForm")
	defer scope.End()

	res, err := handler.service.Form(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load room form")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateRoom adds a room, uploading its optional image.
// @Summary Add room
// @Tags Room
// @Accept json,x-www-form-urlencoded,multipart/form-data
// @Produce json
// @Param request body dto.RoomRequest true "Room"
// @Param image formData file false "Room image"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/rooms/add [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req, err := decodeRoomRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid room request")
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathRooms, "Room added successfully")
}

// GetRoom returns a room for the edit form.
// @Summary Edit room form
// @Tags Room
// @Produce json
// @Param id path integer true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/rooms/edit/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
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
		log.Error().Err(err).Int64("id", id).Msg("failed to get room")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRoom replaces every editable field of a room.
// @Summary Edit room
// @Tags Room
// @Accept json,x-www-form-urlencoded,multipart/form-data
// @Produce json
// @Param id path integer true "Room ID"
// @Param request body dto.RoomRequest true "Room"
// @Param image formData file false "Room image"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/rooms/edit/{id} [post]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req, err := decodeRoomRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid room request")
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update room")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathRooms, "Room updated successfully")
}

// DeleteRoom removes a room.
// @Summary Delete room
// @Tags Room
// @Produce json
// @Param id path integer true "Room ID"
// @Success 303 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/rooms/delete/{id} [post]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete room")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathRooms, "Room deleted successfully")
}

// decodeRoomRequest binds the form fields and picks up the multipart image, if any.
func decodeRoomRequest(request *http.Request) (dto.RoomRequest, error) {
	var req dto.RoomRequest
	if err := validator.ValidateRequest(request, &req); err != nil {
		return req, err // nolint:wrapcheck
	}

	if request.MultipartForm == nil {
		return req, nil
	}

	if files := request.MultipartForm.File[constant.FormImage]; len(files) > 0 {
		req.ImageFile = files[0]

		return req, validator.ValidateStruct(&req) // nolint:wrapcheck
	}

	return req, nil
}
