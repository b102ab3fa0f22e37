package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
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

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// VerifyTenantOwnership re-checks, before any update or delete, that the
// target record belongs to the caller's tenant. The check reads the stored
// tenant reference through an unfiltered probe, so it holds even if the
// read-side row filter were bypassed. A mismatch is logged as a security
// event and surfaces as ErrCrossTenantAccess; handlers translate it to the
// same response as a missing record so record identifiers cannot be probed
// across tenants.
func (s *BaseService) VerifyTenantOwnership(ctx context.Context, prober portsrepo.ScopedOwnershipProber, recordID string) error {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return err
	}

	ownerTenantID, err := prober.OwnerTenantID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if ownerTenantID != tenantID {
		s.LogWarn(ctx, "Cross-tenant write attempt denied",
			slog.String("record_id", recordID),
			slog.String("tenant_id", tenantID))
		return apperrors.ErrCrossTenantAccess
	}
	return nil
}
