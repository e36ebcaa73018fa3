package users

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
)

type UserUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error)
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
	GetUserByEmail(ctx context.Context, email string) (*responses.User, error)
	GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
