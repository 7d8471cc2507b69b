package session

import (
	"time"

	"github.com/riverqueue/river"
)

// PurgeJobArgs are the arguments of the periodic job deleting expired sessions.
type PurgeJobArgs struct{}

func (PurgeJobArgs) Kind() string { return "PurgeExpiredSessions" }

// InsertOpts keeps a single purge job pending at a time.
func (PurgeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: time.Minute,
		},
	}
}
