package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin rejects actors without elevated privilege.
func (s *BaseService) RequireAdmin(ctx context.Context, actor domain.Actor, action string) error {
	if actor.IsAdmin {
		return nil
	}
	s.LogWarn(ctx, "Admin privilege required", slog.String("user_id", actor.UserID), slog.String("action", action))
	return fmt.Errorf("%w: only administrators can %s", apperrors.ErrForbidden, action)
}

// resolveAccountNumber trims and validates an account number supplied by a caller.
func resolveAccountNumber(accountNumber string) (string, error) {
	normalized := domain.NormalizeAccountNumber(accountNumber)
	if err := domain.ValidateAccountNumber(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
