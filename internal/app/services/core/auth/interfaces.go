package auth

import (
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
}
