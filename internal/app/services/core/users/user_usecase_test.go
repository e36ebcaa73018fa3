package users

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestUserUsecase_RegisterUser(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Successful registration", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		usecase := NewUserUsecase(mockRepo, nil, logger)

		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("507f1f77bcf86cd799439011", nil)

		request := &requests.RegisterUser{
			Fullname: "New User",
			Email:    "new@example.com",
			Password: "Sup3rSecret!",
		}

		result, err := usecase.RegisterUser(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", result.ID)
		assert.Equal(t, "new@example.com", result.Email)
		assert.Equal(t, constvars.UserRoleDefault, result.Role, "every registration gets the default role")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Client-supplied role is ignored", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		usecase := NewUserUsecase(mockRepo, nil, logger)

		var storedUser *models.User
		mockRepo.On("FindByEmail", mock.Anything, "sneaky@example.com").Return(nil, nil)
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				storedUser = args.Get(1).(*models.User)
			}).
			Return("507f1f77bcf86cd799439013", nil)

		body := []byte(`{"fullname":"Sneaky User","email":"sneaky@example.com","password":"Sup3rSecret!","role":"admin"}`)
		request := new(requests.RegisterUser)
		assert.NoError(t, json.Unmarshal(body, request))

		result, err := usecase.RegisterUser(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.UserRoleDefault, storedUser.Role, "registration must not honor a role from the request body")
		assert.Equal(t, constvars.UserRoleDefault, result.Role)
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		usecase := NewUserUsecase(mockRepo, nil, logger)

		var storedUser *models.User
		mockRepo.On("FindByEmail", mock.Anything, "hash@example.com").Return(nil, nil)
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				storedUser = args.Get(1).(*models.User)
			}).
			Return("507f1f77bcf86cd799439012", nil)

		request := &requests.RegisterUser{
			Fullname: "Hash User",
			Email:    "hash@example.com",
			Password: "Sup3rSecret!",
		}

		_, err := usecase.RegisterUser(context.Background(), request)

		assert.NoError(t, err)
		assert.NotEqual(t, "Sup3rSecret!", storedUser.Password, "plaintext password must not be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte("Sup3rSecret!")))
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		usecase := NewUserUsecase(mockRepo, nil, logger)

		existing := &models.User{
			ID:    primitive.NewObjectID(),
			Email: "taken@example.com",
		}
		mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

		request := &requests.RegisterUser{
			Fullname: "Second User",
			Email:    "taken@example.com",
			Password: "Sup3rSecret!",
		}

		result, err := usecase.RegisterUser(context.Background(), request)

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "duplicate email should be a 400")
		mockRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestUserUsecase_GetUserByID(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Unknown id returns not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		usecase := NewUserUsecase(mockRepo, nil, logger)

		mockRepo.On("FindByID", mock.Anything, "507f1f77bcf86cd799439099").Return(nil, nil)

		result, err := usecase.GetUserByID(context.Background(), "507f1f77bcf86cd799439099")

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Existing user returned", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		usecase := NewUserUsecase(mockRepo, nil, logger)

		objectID := primitive.NewObjectID()
		mockRepo.On("FindByID", mock.Anything, objectID.Hex()).Return(&models.User{
			ID:       objectID,
			Fullname: "Jordan Lee",
			Email:    "jordan@example.com",
			Role:     constvars.UserRoleDefault,
		}, nil)

		result, err := usecase.GetUserByID(context.Background(), objectID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, objectID.Hex(), result.ID)
		assert.Equal(t, "jordan@example.com", result.Email)
	})
}
