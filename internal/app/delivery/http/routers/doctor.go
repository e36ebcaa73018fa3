package routers

import (
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Post("/", doctorController.CreateDoctor)
	router.With(middlewares.AdminTokenAuth).Get("/", doctorController.GetDoctors)
	router.Get("/{doctorID}", doctorController.GetDoctorByID)
	router.With(middlewares.RequireAdminToken).Patch("/{doctorID}/status", doctorController.UpdateDoctorStatus)
}
