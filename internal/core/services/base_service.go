package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/middleware"
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
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks that the principal's roles grant the capability.
func (s *BaseService) Authorize(ctx context.Context, principal domain.Principal, cap domain.Capability) error {
	if principal.Can(cap) {
		return nil
	}
	s.LogDebug(ctx, "capability denied",
		slog.String("user_id", principal.UserID),
		slog.String("capability", string(cap)))
	return fmt.Errorf("%w: missing capability %s", apperrors.ErrForbidden, cap)
}
