package session

import (
	"time"
)

// WorkSession is the transient state of one actor's running work session.
// At most one exists per actor at any time; it is created by Start, mutated
// by Pause/Resume and destroyed by Stop.
type WorkSession struct {
	ActorID   string
	ProjectID string
	// RecordID links the session to its open record in the durable store.
	RecordID  string
	StartTime time.Time
	// PauseAccum is the total time already spent paused, accumulated
	// across completed pause/resume cycles.
	PauseAccum time.Duration
	// PauseStartedAt is set while the session is paused.
	PauseStartedAt *time.Time
}

// IsPaused returns true while a pause interval is open.
func (s *WorkSession) IsPaused() bool {
	return s.PauseStartedAt != nil
}

// PausedTotal returns the total paused time as of now, including the
// currently open pause interval if any. Negative clock-skew deltas count
// as zero.
func (s *WorkSession) PausedTotal(now time.Time) time.Duration {
	total := s.PauseAccum
	if s.PauseStartedAt != nil {
		open := now.Sub(*s.PauseStartedAt)
		if open > 0 {
			total += open
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// Elapsed returns the worked time as of now: wall-clock time since start
// minus all paused time. Pure display computation, no lunch deduction.
func (s *WorkSession) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(s.StartTime) - s.PausedTotal(now)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *WorkSession) clone() *WorkSession {
	copied := *s
	if s.PauseStartedAt != nil {
		at := *s.PauseStartedAt
		copied.PauseStartedAt = &at
	}
	return &copied
}
