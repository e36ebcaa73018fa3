package appointments

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/app/services/core/users"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	UserRepository        users.UserRepository
	DoctorRepository      doctors.DoctorRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	userRepository users.UserRepository,
	doctorRepository doctors.DoctorRepository,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		DoctorRepository:      doctorRepository,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", request.UserID),
		zap.String("doctor_id", request.DoctorID),
	)

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	now := time.Now()
	appointmentModel := &models.Appointment{
		UserID:          request.UserID,
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		Status:          constvars.AppointmentStatusPending,
		CreatedAt:       now,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	return &responses.Appointment{
		ID:              appointmentID,
		UserID:          appointmentModel.UserID,
		DoctorID:        appointmentModel.DoctorID,
		AppointmentDate: appointmentModel.AppointmentDate,
		Status:          appointmentModel.Status,
		CreatedAt:       now.Format(time.RFC3339),
	}, nil
}

func (uc *appointmentUsecase) GetAppointmentsByUserID(ctx context.Context, userID string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentsByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	appointmentModels, err := uc.AppointmentRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointmentModels), nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentModels, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointmentModels), nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
		zap.String("status", request.Status),
	)

	matched, err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	return buildAppointmentResponse(appointment), nil
}

func buildAppointmentResponses(appointmentModels []models.Appointment) []responses.Appointment {
	appointmentResponses := make([]responses.Appointment, 0, len(appointmentModels))
	for i := range appointmentModels {
		appointmentResponses = append(appointmentResponses, *buildAppointmentResponse(&appointmentModels[i]))
	}
	return appointmentResponses
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID.Hex(),
		UserID:          appointment.UserID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          appointment.Status,
		CreatedAt:       appointment.CreatedAt.Format(time.RFC3339),
	}
}
