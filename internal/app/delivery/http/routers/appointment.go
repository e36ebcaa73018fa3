package routers

import (
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.RequireAdminToken).Get("/", appointmentController.GetAppointments)
	router.Get("/user/{userID}", appointmentController.GetAppointmentsByUserID)
	router.With(middlewares.RequireAdminToken).Patch("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
}
