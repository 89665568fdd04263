package usecase

import (
	"context"
	"strings"

	"abq-api/pkg/jwt"
	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*entity.AdminUser, string, error)
}

type authUseCase struct {
	adminRepo  persistent.AdminRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(adminRepo persistent.AdminRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.AdminUser, string, error) {
	user, err := uc.adminRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", entity.ErrAccountDisabled
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}
