package routers

import (
	"bytes"
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) GetDoctors(ctx context.Context, status string, includeAll bool) ([]responses.Doctor, error) {
	args := m.Called(ctx, status, includeAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateDoctorStatus(ctx context.Context, doctorID string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
}

func TestDoctorRouter_StatusEndpoint(t *testing.T) {
	logger := zap.NewNop()

	testAdminToken := "test-admin-token-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			AdminToken: testAdminToken,
		},
	}

	mockDoctorUsecase := new(MockDoctorUsecase)
	doctorController := doctors.NewDoctorController(logger, mockDoctorUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachDoctorRoutes(router, middlewareInstance, doctorController)

	doctorID := "507f1f77bcf86cd799439011"

	t.Run("Status update with valid admin token", func(t *testing.T) {
		mockDoctorUsecase.On("UpdateDoctorStatus", mock.Anything, doctorID, mock.AnythingOfType("*requests.UpdateDoctorStatus")).Return(&responses.Doctor{
			ID:     doctorID,
			Name:   "Dr. Amelia Wong",
			Status: constvars.DoctorStatusApproved,
		}, nil)

		requestBody := requests.UpdateDoctorStatus{Status: constvars.DoctorStatusApproved}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PATCH", "/"+doctorID+"/status", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderXAdminToken, testAdminToken)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid admin token")
		mockDoctorUsecase.AssertExpectations(t)
	})

	t.Run("Status update without admin token", func(t *testing.T) {
		requestBody := requests.UpdateDoctorStatus{Status: constvars.DoctorStatusApproved}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PATCH", "/"+doctorID+"/status", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for missing admin token")
	})

	t.Run("Status update with wrong admin token", func(t *testing.T) {
		requestBody := requests.UpdateDoctorStatus{Status: constvars.DoctorStatusApproved}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PATCH", "/"+doctorID+"/status", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderXAdminToken, "wrong-token")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for mismatched admin token")
	})

	t.Run("Public listing requires no token", func(t *testing.T) {
		mockDoctorUsecase.On("GetDoctors", mock.Anything, "", false).Return([]responses.Doctor{}, nil)

		req := httptest.NewRequest("GET", "/", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDoctorRouter_ListingVisibility(t *testing.T) {
	logger := zap.NewNop()

	testAdminToken := "test-admin-token-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			AdminToken: testAdminToken,
		},
	}

	newRouter := func(mockDoctorUsecase *MockDoctorUsecase) *chi.Mux {
		doctorController := doctors.NewDoctorController(logger, mockDoctorUsecase)
		middlewareInstance := &middlewares.Middlewares{
			Log:            logger,
			InternalConfig: internalConfig,
		}
		router := chi.NewRouter()
		attachDoctorRoutes(router, middlewareInstance, doctorController)
		return router
	}

	t.Run("Anonymous all=true falls back to approved only", func(t *testing.T) {
		mockDoctorUsecase := new(MockDoctorUsecase)
		mockDoctorUsecase.On("GetDoctors", mock.Anything, "", false).Return([]responses.Doctor{}, nil)
		router := newRouter(mockDoctorUsecase)

		req := httptest.NewRequest("GET", "/?all=true", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDoctorUsecase.AssertCalled(t, "GetDoctors", mock.Anything, "", false)
	})

	t.Run("Anonymous status=pending falls back to approved only", func(t *testing.T) {
		mockDoctorUsecase := new(MockDoctorUsecase)
		mockDoctorUsecase.On("GetDoctors", mock.Anything, "", false).Return([]responses.Doctor{}, nil)
		router := newRouter(mockDoctorUsecase)

		req := httptest.NewRequest("GET", "/?status="+constvars.DoctorStatusPending, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDoctorUsecase.AssertCalled(t, "GetDoctors", mock.Anything, "", false)
	})

	t.Run("Admin token widens to all doctors", func(t *testing.T) {
		mockDoctorUsecase := new(MockDoctorUsecase)
		mockDoctorUsecase.On("GetDoctors", mock.Anything, "", true).Return([]responses.Doctor{}, nil)
		router := newRouter(mockDoctorUsecase)

		req := httptest.NewRequest("GET", "/?all=true", nil)
		req.Header.Set(constvars.HeaderXAdminToken, testAdminToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDoctorUsecase.AssertCalled(t, "GetDoctors", mock.Anything, "", true)
	})

	t.Run("Admin token filters by pending", func(t *testing.T) {
		mockDoctorUsecase := new(MockDoctorUsecase)
		mockDoctorUsecase.On("GetDoctors", mock.Anything, constvars.DoctorStatusPending, false).Return([]responses.Doctor{}, nil)
		router := newRouter(mockDoctorUsecase)

		req := httptest.NewRequest("GET", "/?status="+constvars.DoctorStatusPending, nil)
		req.Header.Set(constvars.HeaderXAdminToken, testAdminToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDoctorUsecase.AssertCalled(t, "GetDoctors", mock.Anything, constvars.DoctorStatusPending, false)
	})

	t.Run("Wrong token on listing is rejected", func(t *testing.T) {
		mockDoctorUsecase := new(MockDoctorUsecase)
		router := newRouter(mockDoctorUsecase)

		req := httptest.NewRequest("GET", "/?all=true", nil)
		req.Header.Set(constvars.HeaderXAdminToken, "wrong-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockDoctorUsecase.AssertNotCalled(t, "GetDoctors", mock.Anything, mock.Anything, mock.Anything)
	})
}
