package auth

import (
	"context"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"
	"avalia-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:       uuid.New().String(),
		Username: request.Username,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     questionnaire_dto.Role(request.Role),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionTTL := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID:      utils.GenerateSessionID(),
		UserID:         user.ID,
		Role:           user.Role,
		PatientID:      user.PatientID,
		PractitionerID: user.PractitionerID,
		ExpiresAt:      time.Now().UTC().Add(sessionTTL),
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyPrefixSession+session.SessionID, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.LoginUser{Token: token}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, constvars.RedisKeyPrefixSession+sessionID)
}
