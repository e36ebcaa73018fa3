package doctors

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository DoctorRepository, logger *zap.Logger) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	doctorModel := &models.Doctor{
		Name:           request.Name,
		Specialization: request.Specialization,
		Email:          request.Email,
		// Every doctor starts pending until an admin approves them.
		Status: constvars.DoctorStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctorModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	return &responses.Doctor{
		ID:             doctorID,
		Name:           doctorModel.Name,
		Specialization: doctorModel.Specialization,
		Email:          doctorModel.Email,
		Status:         doctorModel.Status,
		CreatedAt:      now.Format(time.RFC3339),
	}, nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context, status string, includeAll bool) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("status", status),
		zap.Bool("include_all", includeAll),
	)

	var (
		doctorModels []models.Doctor
		err          error
	)
	switch {
	case status != "":
		doctorModels, err = uc.DoctorRepository.FindByStatus(ctx, status)
	case includeAll:
		doctorModels, err = uc.DoctorRepository.FindAll(ctx)
	default:
		// The public listing only shows doctors an admin has approved.
		doctorModels, err = uc.DoctorRepository.FindByStatus(ctx, constvars.DoctorStatusApproved)
	}
	if err != nil {
		return nil, err
	}

	doctorResponses := make([]responses.Doctor, 0, len(doctorModels))
	for i := range doctorModels {
		doctorResponses = append(doctorResponses, *buildDoctorResponse(&doctorModels[i]))
	}
	return doctorResponses, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) UpdateDoctorStatus(ctx context.Context, doctorID string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctorStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
		zap.String("status", request.Status),
	)

	matched, err := uc.DoctorRepository.UpdateStatus(ctx, doctorID, request.Status)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	uc.Log.Info("doctorUsecase.UpdateDoctorStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
		zap.String("status", doctor.Status),
	)

	return buildDoctorResponse(doctor), nil
}

func buildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:             doctor.ID.Hex(),
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Email:          doctor.Email,
		Status:         doctor.Status,
		CreatedAt:      doctor.CreatedAt.Format(time.RFC3339),
	}
}
