package history

import "time"

// Entry represents one recorded script run.
type Entry struct {
	ID        int64
	Script    string // script key
	Path      string
	StartedAt time.Time
	Duration  time.Duration
	OK        bool
	Error     string
}
