package auth

import (
	"context"
	"errors"
	"strings"

	"alienic/internal/pkg/jwt"
	"alienic/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	admins *repository.AdminUserRepository
	tokens *jwt.Service
}

func NewService(admins *repository.AdminUserRepository, tokens *jwt.Service) *Service {
	return &Service{admins: admins, tokens: tokens}
}

// Login verifies credentials and issues a bearer token. A missing account
// and a wrong password report the same error so the response does not leak
// which emails exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token: token,
		Admin: AdminProfile{ID: admin.ID, Email: admin.Email},
	}, nil
}

// Profile returns the admin behind a valid token.
func (s *Service) Profile(ctx context.Context, adminID string) (*AdminProfile, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &AdminProfile{ID: admin.ID, Email: admin.Email}, nil
}
