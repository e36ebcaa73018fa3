package routers

import (
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Post("/register", userController.RegisterUser)
	router.With(middlewares.Authenticate).Get("/profile", userController.GetUserProfileBySession)
	router.Get("/email/{email}", userController.GetUserByEmail)
	router.Get("/{userID}", userController.GetUserByID)
}
