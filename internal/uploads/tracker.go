package uploads

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StatePending   State = "pending"
	StateUploading State = "uploading"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// Finished reports whether the upload reached a final state.
func (s State) Finished() bool { return s == StateDone || s == StateFailed }

// Status is a snapshot of one tracked upload.
type Status struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	State     State     `json:"state"`
	Percent   int       `json:"percent"`
	URL       string    `json:"url,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tracker is an in-memory registry of uploads. Entries are dropped once they
// have not changed for ttl.
type Tracker struct {
	mu      sync.Mutex
	entries map[string]*Status
	ttl     time.Duration
	now     func() time.Time
}

func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{entries: make(map[string]*Status), ttl: ttl, now: time.Now}
}

// Create registers a pending upload and returns its snapshot.
func (t *Tracker) Create(fileName string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweepLocked()
	s := &Status{ID: uuid.NewString(), FileName: fileName, State: StatePending, UpdatedAt: t.now()}
	t.entries[s.ID] = s

	return *s
}

// Progress records the transferred share of an upload.
func (t *Tracker) Progress(id string, percent int) {
	t.update(id, func(s *Status) {
		s.State = StateUploading
		s.Percent = percent
	})
}

func (t *Tracker) Complete(id, url string) {
	t.update(id, func(s *Status) {
		s.State = StateDone
		s.Percent = 100
		s.URL = url
	})
}

func (t *Tracker) Fail(id, message string) {
	t.update(id, func(s *Status) {
		s.State = StateFailed
		s.Error = message
	})
}

func (t *Tracker) update(id string, fn func(s *Status)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.entries[id]
	if !ok || s.State.Finished() {
		return
	}
	fn(s)
	s.UpdatedAt = t.now()
}

// Get returns a snapshot of the upload.
func (t *Tracker) Get(id string) (Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.entries[id]
	if !ok || t.expiredLocked(s) {
		return Status{}, false
	}

	return *s, true
}

// Sweep drops expired entries and returns how many were removed.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sweepLocked()
}

func (t *Tracker) sweepLocked() int {
	n := 0
	for id, s := range t.entries {
		if t.expiredLocked(s) {
			delete(t.entries, id)
			n++
		}
	}

	return n
}

func (t *Tracker) expiredLocked(s *Status) bool {
	return t.ttl > 0 && t.now().Sub(s.UpdatedAt) > t.ttl
}
