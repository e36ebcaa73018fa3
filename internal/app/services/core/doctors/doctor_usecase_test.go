package doctors

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	args := m.Called(ctx, doctorModel)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByStatus(ctx context.Context, status string) ([]models.Doctor, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateStatus(ctx context.Context, doctorID, status string) (bool, error) {
	args := m.Called(ctx, doctorID, status)
	return args.Bool(0), args.Error(1)
}

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	logger := zap.NewNop()

	t.Run("New doctor starts pending", func(t *testing.T) {
		mockRepo := new(MockDoctorRepository)
		usecase := NewDoctorUsecase(mockRepo, logger)

		var storedDoctor *models.Doctor
		mockRepo.On("CreateDoctor", mock.Anything, mock.AnythingOfType("*models.Doctor")).
			Run(func(args mock.Arguments) {
				storedDoctor = args.Get(1).(*models.Doctor)
			}).
			Return("507f1f77bcf86cd799439033", nil)

		request := &requests.CreateDoctor{
			Name:           "Dr. Amelia Wong",
			Specialization: "Cardiology",
		}

		result, err := usecase.CreateDoctor(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.DoctorStatusPending, result.Status)
		assert.Equal(t, constvars.DoctorStatusPending, storedDoctor.Status, "stored document must be pending regardless of input")
	})
}

func TestDoctorUsecase_GetDoctors(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Default listing only shows approved doctors", func(t *testing.T) {
		mockRepo := new(MockDoctorRepository)
		usecase := NewDoctorUsecase(mockRepo, logger)

		mockRepo.On("FindByStatus", mock.Anything, constvars.DoctorStatusApproved).Return([]models.Doctor{
			{ID: primitive.NewObjectID(), Name: "Dr. Approved", Status: constvars.DoctorStatusApproved},
		}, nil)

		result, err := usecase.GetDoctors(context.Background(), "", false)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertNotCalled(t, "FindAll")
	})

	t.Run("Include all bypasses the approved filter", func(t *testing.T) {
		mockRepo := new(MockDoctorRepository)
		usecase := NewDoctorUsecase(mockRepo, logger)

		mockRepo.On("FindAll", mock.Anything).Return([]models.Doctor{
			{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusApproved},
			{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusPending},
		}, nil)

		result, err := usecase.GetDoctors(context.Background(), "", true)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Explicit status filter wins", func(t *testing.T) {
		mockRepo := new(MockDoctorRepository)
		usecase := NewDoctorUsecase(mockRepo, logger)

		mockRepo.On("FindByStatus", mock.Anything, constvars.DoctorStatusPending).Return([]models.Doctor{}, nil)

		result, err := usecase.GetDoctors(context.Background(), constvars.DoctorStatusPending, false)

		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestDoctorUsecase_UpdateDoctorStatus(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Approval transitions pending to approved", func(t *testing.T) {
		mockRepo := new(MockDoctorRepository)
		usecase := NewDoctorUsecase(mockRepo, logger)

		doctorID := primitive.NewObjectID()
		mockRepo.On("UpdateStatus", mock.Anything, doctorID.Hex(), constvars.DoctorStatusApproved).Return(true, nil)
		mockRepo.On("FindByID", mock.Anything, doctorID.Hex()).Return(&models.Doctor{
			ID:     doctorID,
			Name:   "Dr. Amelia Wong",
			Status: constvars.DoctorStatusApproved,
		}, nil)

		request := &requests.UpdateDoctorStatus{Status: constvars.DoctorStatusApproved}
		result, err := usecase.UpdateDoctorStatus(context.Background(), doctorID.Hex(), request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.DoctorStatusApproved, result.Status)
	})

	t.Run("Unknown doctor is a 404", func(t *testing.T) {
		mockRepo := new(MockDoctorRepository)
		usecase := NewDoctorUsecase(mockRepo, logger)

		mockRepo.On("UpdateStatus", mock.Anything, "507f1f77bcf86cd799439099", constvars.DoctorStatusApproved).Return(false, nil)

		request := &requests.UpdateDoctorStatus{Status: constvars.DoctorStatusApproved}
		result, err := usecase.UpdateDoctorStatus(context.Background(), "507f1f77bcf86cd799439099", request)

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
