package usecase

import (
	"errors"
	"time"

	"github.com/fadilmartias/job-wingman/internal/auth"
	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/fadilmartias/job-wingman/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials deliberately does not say whether the username
	// or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthUsecase struct {
	userRepo  repository.UserRepositoryInterface
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthUsecase(userRepo repository.UserRepositoryInterface, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (uc *AuthUsecase) Register(username, password string) (*model.User, error) {
	existing, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{Username: username, PasswordHash: hash}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("username", username))
	return user, nil
}

type LoginResult struct {
	Token           string
	UserID          uuid.UUID
	JobRequirements *model.JobRequirements
}

func (uc *AuthUsecase) Login(username, password string) (*LoginResult, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.logger.Info("login attempt for unknown user", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		uc.logger.Info("login attempt with wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(uc.jwtSecret, user.ID, uc.tokenTTL)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{Token: token, UserID: user.ID}
	if user.JobRequirements != nil {
		requirements := user.JobRequirements.Data()
		result.JobRequirements = &requirements
	}

	uc.logger.Info("login successful", zap.String("username", username))
	return result, nil
}
