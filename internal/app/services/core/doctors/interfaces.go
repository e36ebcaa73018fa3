package doctors

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	GetDoctors(ctx context.Context, status string, includeAll bool) ([]responses.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpdateDoctorStatus(ctx context.Context, doctorID string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByStatus(ctx context.Context, status string) ([]models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateStatus(ctx context.Context, doctorID, status string) (matched bool, err error)
}
