// internal/audit/logger.go
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Decision records one gate evaluation for the audit trail.
type Decision struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	RequiredRoles  []string
	MinPlan        string
	Allowed        bool
	// DenialKind carries the failure classification when Allowed is false.
	DenialKind string
}

// Logger receives every gate decision. Implementations must be safe for
// concurrent use and must never fail the request they observe.
type Logger interface {
	LogAccessDecision(ctx context.Context, d Decision)
}

// NoOpLogger discards decisions.
type NoOpLogger struct{}

func (NoOpLogger) LogAccessDecision(ctx context.Context, d Decision) {}

// SlogLogger writes decisions as structured log lines.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) LogAccessDecision(ctx context.Context, d Decision) {
	attrs := []any{
		"user_id", d.UserID,
		"org_id", d.OrganizationID,
		"allowed", d.Allowed,
	}
	if len(d.RequiredRoles) > 0 {
		attrs = append(attrs, "required_roles", d.RequiredRoles)
	}
	if d.MinPlan != "" {
		attrs = append(attrs, "min_plan", d.MinPlan)
	}
	if !d.Allowed {
		attrs = append(attrs, "denial_kind", d.DenialKind)
	}
	l.logger.InfoContext(ctx, "access decision", attrs...)
}
