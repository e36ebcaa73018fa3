package routers

import (
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.LogoutUser)
}
