package employee

import (
	"net/http"

	"ehotels/infras/otel"
	"ehotels/internal/domains/employee/model/dto"
	"ehotels/internal/domains/employee/service"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/validator"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathEmployees, handler.GetEmployees)
	router.Get(constant.PathEmployees+constant.PathAdd, handler.AddEmployeeForm)
	router.Post(constant.PathEmployees+constant.PathAdd, handler.CreateEmployee)
	router.Get(constant.PathEmployees+constant.PathEdit, handler.GetEmployee)
	router.Post(constant.PathEmployees+constant.PathEdit, handler.UpdateEmployee)
	router.Post(constant.PathEmployees+constant.PathDelete, handler.DeleteEmployee)
}

// GetEmployees lists employees ordered by name.
// @Summary List employees
// @Tags Employee
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, false)

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddEmployeeForm returns the hotels an employee can be assigned to.
// @Summary Add employee form
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Data[dto.EmployeeFormResponse]
// @Router /employee/employees/add [get]
// @Security BearerAuth
func (handler *Handler) AddEmployeeForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddEmployeeForm")
	defer scope.End()

	res, err := handler.service.Form(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load employee form")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateEmployee hires an employee, optionally with a login account.
// @Summary Add employee
// @Tags Employee
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.EmployeeAddRequest true "Employee"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/employees/add [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	var req dto.EmployeeAddRequest
	if err := validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid employee request")
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathEmployees, "Employee added successfully")
}

// GetEmployee returns an employee for the edit form.
// @Summary Edit employee form
// @Tags Employee
// @Produce json
// @Param id path integer true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/employees/edit/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployee")
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
		log.Error().Err(err).Int64("id", id).Msg("failed to get employee")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateEmployee replaces every editable field of an employee.
// @Summary Edit employee
// @Tags Employee
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path integer true "Employee ID"
// @Param request body dto.EmployeeEditRequest true "Employee"
// @Success 303 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/employees/edit/{id} [post]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.EmployeeEditRequest
	if err = validator.ValidateRequest(request, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid employee request")
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update employee")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathEmployees, "Employee updated successfully")
}

// DeleteEmployee removes an employee together with their account.
// @Summary Delete employee
// @Tags Employee
// @Produce json
// @Param id path integer true "Employee ID"
// @Success 303 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /employee/employees/delete/{id} [post]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete employee")
		response.WithError(writer, err)

		return
	}

	response.WithRedirect(writer, constant.PathEmployees, "Employee deleted successfully")
}
