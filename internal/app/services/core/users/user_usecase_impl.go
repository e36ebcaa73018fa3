package users

import (
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewUserUsecase(userRepository UserRepository, sessionService contracts.SessionService, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *userUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	// Registration never takes a role from the client. Admin access is
	// granted through the admin token, not a user account.
	now := time.Now()
	userModel := &models.User{
		Fullname: request.Fullname,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     constvars.UserRoleDefault,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	return &responses.User{
		ID:        userID,
		Fullname:  userModel.Fullname,
		Email:     userModel.Email,
		Role:      userModel.Role,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return buildUserResponse(user), nil
}

func (uc *userUsecase) GetUserByEmail(ctx context.Context, email string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return buildUserResponse(user), nil
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return buildUserResponse(user), nil
}

func buildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:        user.ID.Hex(),
		Fullname:  user.Fullname,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
