package customer_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	otelMocks "ehotels/infras/otel/mocks"
	customerMocks "ehotels/internal/domains/customer/mocks"
	"ehotels/internal/domains/customer/model/dto"
	"ehotels/internal/handlers/customer"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*customerMocks.MockCustomerService, http.Handler) {
	t.Helper()

	svc := customerMocks.NewMockCustomerService(gomock.NewController(t))
	handler := customer.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestGetCustomers(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5}).
		Return(dto.GetCustomersResponse{
			Customers: []dto.CustomerResponse{{ID: 3, FullName: "Jane Roe"}},
			TotalPage: 2,
			TotalData: 6,
		}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/customers?page=2&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.InDelta(t, 6, data["total_data"], 0)
}

func TestGetCustomers_DefaultsToAllRows(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}).Return(dto.GetCustomersResponse{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/customers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCustomer(t *testing.T) {
	form := url.Values{
		"full_name": {"Jane Roe"},
		"address":   {"1 Main St"},
		"id_type":   {"Passport"},
		"id_number": {"X123"},
	}

	t.Run("form post redirects to the list", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), dto.CustomerRequest{
			FullName: "Jane Roe",
			Address:  "1 Main St",
			IDType:   "Passport",
			IDNumber: "X123",
		}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/employee/customers/add", strings.NewReader(form.Encode()))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constant.PathCustomers, rec.Header().Get(constant.RequestHeaderLocation))
		assert.Equal(t, "Customer added successfully", decode(t, rec)["message"])
	})

	t.Run("missing full name is rejected before the service", func(t *testing.T) {
		_, router := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/employee/customers/add",
			strings.NewReader(`{"id_type":"Passport","id_number":"X123"}`))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec)["error"], "full_name")
	})

	t.Run("store failure is masked", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/employee/customers/add", strings.NewReader(form.Encode()))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, constant.ResponseErrorInternal, decode(t, rec)["error"])
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.CustomerResponse{ID: 3, FullName: "Jane Roe"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/customers/edit/3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), int64(99)).Return(dto.CustomerResponse{}, failure.NotFound("customer not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/customers/edit/99", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "customer not found", decode(t, rec)["error"])
	})

	t.Run("non numeric id", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/customers/edit/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateCustomer(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/employee/customers/edit/3",
		strings.NewReader(`{"full_name":"Jane Roe","id_type":"Passport","id_number":"X123","registration_date":"2024-01-02"}`))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constant.PathCustomers, rec.Header().Get(constant.RequestHeaderLocation))
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/employee/customers/delete/3", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "Customer deleted successfully", decode(t, rec)["message"])
	})

	t.Run("still referenced", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Delete(gomock.Any(), int64(3)).
			Return(failure.Conflict("cannot delete the customer because bookings or rentals still reference it"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/employee/customers/delete/3", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
