package medicines

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

type medicineUsecase struct {
	MedicineRepository MedicineRepository
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	BucketName         string
	Log                *zap.Logger
}

func NewMedicineUsecase(
	medicineRepository MedicineRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	bucketName string,
	logger *zap.Logger,
) MedicineUsecase {
	return &medicineUsecase{
		MedicineRepository: medicineRepository,
		Storage:            storage,
		InternalConfig:     internalConfig,
		BucketName:         bucketName,
		Log:                logger,
	}
}

func (uc *medicineUsecase) CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.CreateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	medicineModel := &models.Medicine{
		Name:        request.Name,
		Category:    request.Category,
		Price:       request.Price,
		Stock:       request.Stock,
		Description: request.Description,
		Image:       request.Image,
		CreatedAt:   now,
	}

	medicineID, err := uc.MedicineRepository.CreateMedicine(ctx, medicineModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicineUsecase.CreateMedicine succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medicine_id", medicineID),
	)

	return &responses.Medicine{
		ID:          medicineID,
		Name:        medicineModel.Name,
		Category:    medicineModel.Category,
		Price:       medicineModel.Price,
		Stock:       medicineModel.Stock,
		Description: medicineModel.Description,
		Image:       medicineModel.Image,
		CreatedAt:   now.Format(time.RFC3339),
	}, nil
}

func (uc *medicineUsecase) GetMedicines(ctx context.Context, category string, pagination *requests.Pagination) ([]responses.Medicine, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.GetMedicines called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("category", category),
		zap.Int("page", pagination.Page),
		zap.Int("page_size", pagination.PageSize),
	)

	var (
		medicineModels []models.Medicine
		err            error
	)
	if category != "" {
		medicineModels, err = uc.MedicineRepository.FindByCategory(ctx, category, pagination)
	} else {
		medicineModels, err = uc.MedicineRepository.FindAll(ctx, pagination)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.MedicineRepository.CountByCategory(ctx, category)
	if err != nil {
		return nil, 0, err
	}

	medicineResponses := make([]responses.Medicine, 0, len(medicineModels))
	for i := range medicineModels {
		medicineResponses = append(medicineResponses, *buildMedicineResponse(&medicineModels[i]))
	}
	return medicineResponses, int(total), nil
}

func (uc *medicineUsecase) GetMedicineByID(ctx context.Context, medicineID string) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.GetMedicineByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medicine_id", medicineID),
	)

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotExist(nil)
	}

	response := buildMedicineResponse(medicine)
	if medicine.Image != "" {
		expiry := time.Duration(uc.InternalConfig.App.MedicineImageURLExpiryInHours) * time.Hour
		imageURL, err := uc.Storage.PresignedGetURL(ctx, uc.BucketName, medicine.Image, expiry)
		if err != nil {
			// A broken presign should not hide the catalog entry itself.
			uc.Log.Warn("medicineUsecase.GetMedicineByID presign failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("medicine_id", medicineID),
				zap.Error(err),
			)
		} else {
			response.ImageURL = imageURL
		}
	}
	return response, nil
}

func (uc *medicineUsecase) UpdateMedicineStock(ctx context.Context, medicineID string, request *requests.UpdateMedicineStock) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.UpdateMedicineStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medicine_id", medicineID),
		zap.Int("stock", request.Stock),
	)

	matched, err := uc.MedicineRepository.UpdateStock(ctx, medicineID, request.Stock)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrMedicineNotExist(nil)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotExist(nil)
	}

	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) UploadMedicineImage(ctx context.Context, medicineID, fileName string, file io.Reader, fileSize int64, contentType string) (*responses.MedicineImageUpload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.UploadMedicineImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medicine_id", medicineID),
		zap.String("file_name", fileName),
	)

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotExist(nil)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	objectName := utils.GenerateFileName("medicine", medicineID, ext)

	if _, err := uc.Storage.UploadObject(ctx, uc.BucketName, objectName, file, fileSize, contentType); err != nil {
		return nil, err
	}

	matched, err := uc.MedicineRepository.UpdateImage(ctx, medicineID, objectName)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrMedicineNotExist(nil)
	}

	expiry := time.Duration(uc.InternalConfig.App.MedicineImageURLExpiryInHours) * time.Hour
	imageURL, err := uc.Storage.PresignedGetURL(ctx, uc.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicineUsecase.UploadMedicineImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medicine_id", medicineID),
		zap.String("object_name", objectName),
	)

	return &responses.MedicineImageUpload{
		MedicineID: medicineID,
		ObjectName: objectName,
		ImageURL:   imageURL,
	}, nil
}

func buildMedicineResponse(medicine *models.Medicine) *responses.Medicine {
	return &responses.Medicine{
		ID:          medicine.ID.Hex(),
		Name:        medicine.Name,
		Category:    medicine.Category,
		Price:       medicine.Price,
		Stock:       medicine.Stock,
		Description: medicine.Description,
		Image:       medicine.Image,
		CreatedAt:   medicine.CreatedAt.Format(time.RFC3339),
	}
}
