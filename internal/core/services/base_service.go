package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// storeError logs a repository failure and converts it to a store error unless it already is a
// typed application error.
func (s *BaseService) storeError(ctx context.Context, err error, msg string, keyvals ...any) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && !errors.Is(err, apperrors.ErrStore) {
		return err
	}
	s.LogError(ctx, err, msg, keyvals...)
	if errors.Is(err, apperrors.ErrStore) {
		return err
	}
	return apperrors.NewStoreError(msg, err)
}
