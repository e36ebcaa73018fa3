package middlewares

import (
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
	"context"
	"net/http"
)

// RequireAdminToken gates admin-only routes on a shared-secret header. It is
// a plain equality check against the configured token, not an auth system.
func (m *Middlewares) RequireAdminToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminToken := r.Header.Get(constvars.HeaderXAdminToken)

		if adminToken == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminTokenMissing(nil))
			return
		}

		if adminToken != m.InternalConfig.App.AdminToken {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminTokenMismatch(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminTokenAuth recognizes the admin token on otherwise public routes.
// Requests without the header pass through unauthenticated; a token that is
// present but wrong is still rejected.
func (m *Middlewares) AdminTokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminToken := r.Header.Get(constvars.HeaderXAdminToken)

		if adminToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		if adminToken != m.InternalConfig.App.AdminToken {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminTokenMismatch(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
