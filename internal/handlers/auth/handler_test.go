package auth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	otelMocks "ehotels/infras/otel/mocks"
	authMocks "ehotels/internal/domains/auth/mocks"
	"ehotels/internal/domains/auth/model/dto"
	"ehotels/internal/handlers/auth"
	"ehotels/shared/constant"
	"ehotels/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*authMocks.MockAuth, http.Handler) {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a token pair", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Username: "manager", Password: "password"}).
			Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)

		form := url.Values{"username": {"manager"}, "password": {"password"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
	})

	t.Run("bad credentials send the caller back to login", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Unauthorized("invalid username or password"))

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"manager","password":"nope"}`))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constant.PathLogin, rec.Header().Get(constant.RequestHeaderLocation))
	})

	t.Run("missing password", func(t *testing.T) {
		_, router := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"manager"}`))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "refresh"}).
		Return(dto.LoginResponse{AccessToken: "next"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(`{"refresh_token":"refresh"}`))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"next"`)
}
