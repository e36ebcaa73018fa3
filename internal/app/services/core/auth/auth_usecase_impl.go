package auth

import (
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/core/users"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository users.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(userRepository users.UserRepository, sessionService contracts.SessionService, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if err := utils.ComparePassword(user.Password, request.Password); err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	token, err := uc.SessionService.CreateSession(ctx, &models.Session{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", user.ID.Hex()),
	)

	return &responses.Login{
		Token: token,
		User: &responses.User{
			ID:        user.ID.Hex(),
			Fullname:  user.Fullname,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
