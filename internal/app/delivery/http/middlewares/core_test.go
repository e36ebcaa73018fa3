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

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	t.Run("Client request id is propagated and echoed", func(t *testing.T) {
		var ctxRequestID string
		var ctxIsClient bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			ctxIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")

		rr := httptest.NewRecorder()
		handler := middlewares.RequestIDMiddleware(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-supplied-id", ctxRequestID, "context should carry the client request id")
		assert.True(t, ctxIsClient)
		assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID), "response should echo the client request id")
	})

	t.Run("Missing request id is generated", func(t *testing.T) {
		var ctxRequestID string
		var ctxIsClient bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			ctxIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequestIDMiddleware(testHandler)
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, ctxRequestID, "a request id should be generated when the client sends none")
		assert.False(t, ctxIsClient)
		assert.Equal(t, ctxRequestID, rr.Header().Get(constvars.HeaderXRequestID), "response should echo the generated request id")
	})
}

func TestLogging(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	t.Run("Wraps handler and preserves status code", func(t *testing.T) {
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		req := httptest.NewRequest("POST", "/api/v1/users/register", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequestIDMiddleware(middlewares.Logging(middlewares.Log)(testHandler))
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})
}
