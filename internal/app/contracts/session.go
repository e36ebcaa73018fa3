package contracts

import (
	"clinicare-service/internal/app/models"
	"context"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) (token string, err error)
	GetSessionData(ctx context.Context, token string) (sessionData string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
