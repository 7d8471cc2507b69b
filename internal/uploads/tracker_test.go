package uploads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTracker_Lifecycle(t *testing.T) {
	tr := NewTracker(time.Minute)

	s := tr.Create("a.png")
	require.Equal(t, StatePending, s.State)
	require.NotEmpty(t, s.ID)

	tr.Progress(s.ID, 40)
	got, ok := tr.Get(s.ID)
	require.True(t, ok)
	require.Equal(t, StateUploading, got.State)
	require.Equal(t, 40, got.Percent)

	tr.Complete(s.ID, "https://cdn/a.png")
	got, _ = tr.Get(s.ID)
	require.Equal(t, StateDone, got.State)
	require.Equal(t, 100, got.Percent)
	require.Equal(t, "https://cdn/a.png", got.URL)

	tr.Fail(s.ID, "late failure")
	got, _ = tr.Get(s.ID)
	require.Equal(t, StateDone, got.State, "finished uploads do not change")
}

func TestTracker_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(time.Minute)
	tr.now = func() time.Time { return now }

	s := tr.Create("a.png")
	tr.Fail(s.ID, "boom")

	now = now.Add(2 * time.Minute)
	_, ok := tr.Get(s.ID)
	require.False(t, ok)
	require.Equal(t, 1, tr.Sweep())
	require.Equal(t, 0, tr.Sweep())
}

func TestTracker_UnknownID(t *testing.T) {
	tr := NewTracker(time.Minute)
	tr.Progress("nope", 10)

	_, ok := tr.Get("nope")
	require.False(t, ok)
}
