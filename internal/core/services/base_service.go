package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
	"github.com/SscSPs/accounts_backoffice/internal/platform/metrics"
)

// BaseService provides common functionality for all services.
type BaseService struct {
	Metrics *metrics.Metrics
	clock   func() time.Time
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

func (s *BaseService) applyOptions(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// Now returns the current UTC time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now().UTC()
}

// GetLogger gets the request-scoped logger from context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs an expected domain failure.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// resultFor classifies a posting failure for the postings counter.
func resultFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrMissingConfiguration):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
