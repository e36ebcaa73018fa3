package middlewares

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireAdminToken(t *testing.T) {
	logger := zap.NewNop()

	testAdminToken := "test-admin-token-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			AdminToken: testAdminToken,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminAuth, ok := r.Context().Value(constvars.CONTEXT_ADMIN_AUTH_KEY).(bool)
		assert.True(t, ok, "admin auth flag should be set")
		assert.True(t, adminAuth, "admin auth flag should be true")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid admin token", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/api/v1/doctors/507f1f77bcf86cd799439011/status", nil)
		req.Header.Set(constvars.HeaderXAdminToken, testAdminToken)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAdminToken(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid admin token")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Missing admin token", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/api/v1/doctors/507f1f77bcf86cd799439011/status", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAdminToken(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for missing admin token")
	})

	t.Run("Mismatched admin token", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/api/v1/doctors/507f1f77bcf86cd799439011/status", nil)
		req.Header.Set(constvars.HeaderXAdminToken, "wrong-token")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAdminToken(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for mismatched admin token")
	})
}
