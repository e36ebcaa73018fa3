package medicines

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
	"io"
)

type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*responses.Medicine, error)
	GetMedicines(ctx context.Context, category string, pagination *requests.Pagination) ([]responses.Medicine, int, error)
	GetMedicineByID(ctx context.Context, medicineID string) (*responses.Medicine, error)
	UpdateMedicineStock(ctx context.Context, medicineID string, request *requests.UpdateMedicineStock) (*responses.Medicine, error)
	UploadMedicineImage(ctx context.Context, medicineID, fileName string, file io.Reader, fileSize int64, contentType string) (*responses.MedicineImageUpload, error)
}

type MedicineRepository interface {
	CreateMedicine(ctx context.Context, medicineModel *models.Medicine) (medicineID string, err error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	FindByCategory(ctx context.Context, category string, pagination *requests.Pagination) ([]models.Medicine, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Medicine, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	UpdateStock(ctx context.Context, medicineID string, stock int) (matched bool, err error)
	UpdateImage(ctx context.Context, medicineID, objectName string) (matched bool, err error)
	// DecrementStock atomically subtracts quantity from stock only when the
	// current stock covers it, returning the document as it was before the
	// decrement. A nil result means no document matched the guard.
	DecrementStock(ctx context.Context, medicineID string, quantity int) (*models.Medicine, error)
}
