package worker_test

import (
	"context"
	"errors"
	"testing"

	"newsroom/internal/session"
	"newsroom/internal/worker"
	"newsroom/pkg/logger"
	mockstorage "newsroom/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func makeJob(id int64) *river.Job[session.PurgeJobArgs] {
	return &river.Job[session.PurgeJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   session.PurgeJobArgs{},
	}
}

func TestSessionPurgeWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockSessionStorage(ctrl)
	store.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	w := worker.NewSessionPurgeWorker(store)
	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestSessionPurgeWorker_WorkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockSessionStorage(ctrl)
	boom := errors.New("db down")
	store.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	w := worker.NewSessionPurgeWorker(store)
	err := w.Work(context.Background(), makeJob(2))
	require.ErrorIs(t, err, boom)
}

func TestPurgeJobArgs(t *testing.T) {
	args := session.PurgeJobArgs{}
	require.Equal(t, "PurgeExpiredSessions", args.Kind())
	require.True(t, args.InsertOpts().UniqueOpts.ByArgs)
}
