// internal/audit/recorder_test.go
package audit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/mocks"
	"github.com/opshrm/hrms/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogRepositoryIface(ctrl)
	recorder := NewLogRecorder(logs)

	userID := uuid.New()
	organizationID := uuid.New()

	logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *model.Log) error {
			assert.Equal(t, userID, entry.UserID)
			assert.Equal(t, organizationID, entry.OrganizationID)
			assert.Equal(t, "User registered", entry.Action)
			assert.Equal(t, "Acme Corp", entry.Details["organization"])
			return nil
		})

	recorder.Record(context.Background(), userID, organizationID, "User registered",
		model.JSONMap{"organization": "Acme Corp"})
}

func TestLogRecorder_RecordSwallowsStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogRepositoryIface(ctrl)
	recorder := NewLogRecorder(logs)

	logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)

	// Must not panic or surface the error in any way.
	recorder.Record(context.Background(), uuid.New(), uuid.New(), "User registered", nil)
}
