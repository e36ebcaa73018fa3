package session

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// CreateSession stores the session document in Redis keyed by a fresh session
// id and returns a signed JWT wrapping that id.
func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	session.SessionID = utils.GenerateSessionID()

	expiry := time.Duration(s.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	if err := s.RedisRepository.Set(ctx, session.SessionID, session, expiry); err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, token string) (string, error) {
	sessionID, err := utils.ParseSessionJWT(token, s.InternalConfig.JWT.Secret)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	sessionData, err := s.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrSessionDataMalformed(err)
	}
	return &session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionID)
}
