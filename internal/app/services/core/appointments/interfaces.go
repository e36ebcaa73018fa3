package appointments

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointmentsByUserID(ctx context.Context, userID string) ([]responses.Appointment, error)
	GetAppointments(ctx context.Context) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) (matched bool, err error)
}
