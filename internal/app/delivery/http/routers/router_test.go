package routers

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSetupRoutes_RequestID(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			MaxRequests:                100,
			RequestBodyLimitInMegabyte: 6,
			AdminToken:                 "test-admin-token-12345",
		},
	}

	mockDoctorUsecase := new(MockDoctorUsecase)
	mockDoctorUsecase.On("GetDoctors", mock.Anything, "", false).Return([]responses.Doctor{}, nil)
	doctorController := doctors.NewDoctorController(logger, mockDoctorUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, nil, nil, doctorController, nil, nil, nil)

	t.Run("Client request id is echoed back", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Request id is generated when missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})
}
