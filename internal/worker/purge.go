package worker

import (
	"context"
	"fmt"
	"newsroom/internal/session"
	"newsroom/pkg/logger"
	"newsroom/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SessionPurgeWorker deletes sessions whose expiry has passed. Expired sessions
// are already ignored on load; purging only keeps the table small.
type SessionPurgeWorker struct {
	river.WorkerDefaults[session.PurgeJobArgs]

	store storage.SessionStorage
	now   func() time.Time
}

func NewSessionPurgeWorker(store storage.SessionStorage) *SessionPurgeWorker {
	return &SessionPurgeWorker{store: store, now: time.Now}
}

func (w *SessionPurgeWorker) Work(ctx context.Context, job *river.Job[session.PurgeJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.store.DeleteExpiredSessions(ctx, w.now().UTC())
	if err != nil {
		logger.Error(ctx, "could not purge expired sessions", zap.Error(err))

		return fmt.Errorf("could not purge expired sessions: %w", err)
	}

	logger.Info(ctx, "purged expired sessions", zap.Int64("count", n))

	return nil
}

func (w *SessionPurgeWorker) Timeout(*river.Job[session.PurgeJobArgs]) time.Duration {
	return time.Minute
}
