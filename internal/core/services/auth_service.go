package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/platform/config"
	"github.com/SscSPs/cylinder_holdings/internal/utils"
)

// systemUserID records rows created by the process itself.
const systemUserID = "system"

// authService implements the AuthSvcFacade for password logins and JWT issue.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login", slog.String("username", username))
		return nil, "", time.Time{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.DeletedAt != nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Rejected login", slog.String("username", username))
		return nil, "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, user.IsAdmin, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, expiresAt, nil
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}
	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         username,
		IsAdmin:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     systemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: systemUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	s.LogInfo(ctx, "Bootstrap admin created", slog.String("username", username))
	return nil
}
