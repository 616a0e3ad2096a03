// internal/audit/recorder.go
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/model"
	"github.com/opshrm/hrms/internal/repository"
)

// Recorder appends audit trail entries for principal actions. Recording is
// best-effort: implementations must never propagate a failure to the caller,
// so a broken log store cannot abort the business operation that triggered
// the entry.
type Recorder interface {
	Record(ctx context.Context, userID, organizationID uuid.UUID, action string, details model.JSONMap)
}

// LogRecorder writes audit entries through the log repository.
type LogRecorder struct {
	logs repository.LogRepositoryIface
}

func NewLogRecorder(logs repository.LogRepositoryIface) *LogRecorder {
	return &LogRecorder{logs: logs}
}

// Record appends a Log row. Failures go to the operational log and are
// otherwise swallowed.
func (r *LogRecorder) Record(ctx context.Context, userID, organizationID uuid.UUID, action string, details model.JSONMap) {
	entry := &model.Log{
		UserID:         userID,
		OrganizationID: organizationID,
		Action:         action,
		Details:        details,
	}

	if err := r.logs.Create(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to record audit log",
			"error", err,
			"action", action,
			"userID", userID,
			"organizationID", organizationID,
		)
	}
}

// NoopRecorder is a recorder that does nothing
type NoopRecorder struct{}

// Record implements Recorder.Record
func (NoopRecorder) Record(ctx context.Context, userID, organizationID uuid.UUID, action string, details model.JSONMap) {
}
