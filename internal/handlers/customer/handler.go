package customer

import (
	"net/http"

	"ehotels/infras/otel"
	"ehotels/internal/domains/customer/model/dto"
	"ehotels/internal/domains/customer/service"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/validator"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathCustomers, handler.GetCustomers)
	router.Get(constant.PathCustomers+constant.PathAdd, handler.AddCustomerForm)
	router.Post(constant.PathCustomers+constant.PathAdd, handler.CreateCustomer)
	router.Get(constant.PathCustomers+constant.PathEdit, handler.GetCustomer)
	router.Post(constant.PathCustomers+constant.PathEdit, handler.UpdateCustomer)
	router.Post(constant.PathCustomers+constant.PathDelete, handler.DeleteCustomer)
}

// GetCustomers lists customers ordered by name.
// @Summary List customers
// @Tags Customer
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetCustomersResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/customers [get]
// @Security BearerAuth
func (handler *Handler) GetCustomers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, false)

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddCustomerForm returns the defaults of the add customer form.
// @Summary Add customer form
// @Tags Customer
// @Produce json
// @Success 200 {object} response.Data[dto.CustomerFormResponse]
// @Router /employee/customers/add [get]
// @Security BearerAuth
func (handler *Handler) AddCustomerForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCustomerForm")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Form(ctx))
}

// CreateCustomer registers a new customer.
// @Summary Add customer
// @Tags Customer
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CustomerRequest true "Customer"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/customers/add [post]
// @Security BearerAuth
func (handler *Handler) CreateCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	var req dto.CustomerRequest
	if err := validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid customer request")
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathCustomers, "Customer added successfully")
}

// GetCustomer returns a customer for the edit form.
// @Summary Edit customer form
// @Tags Customer
// @Produce json
// @Param id path integer true "Customer ID"
// @Success 200 {object} response.Data[dto.CustomerResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/customers/edit/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomer")
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
		log.Error().Err(err).Int64("id", id).Msg("failed to get customer")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateCustomer replaces every editable field of a customer.
// @Summary Edit customer
// @Tags Customer
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path integer true "Customer ID"
// @Param request body dto.CustomerRequest true "Customer"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/customers/edit/{id} [post]
// @Security BearerAuth
func (handler *Handler) UpdateCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.CustomerRequest
	if err = validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid customer request")
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update customer")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathCustomers, "Customer updated successfully")
}

// DeleteCustomer removes a customer.
// @Summary Delete customer
// @Tags Customer
// @Produce json
// @Param id path integer true "Customer ID"
// @Success 303 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/customers/delete/{id} [post]
// @Security BearerAuth
func (handler *Handler) DeleteCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete customer")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathCustomers, "Customer deleted successfully")
}
