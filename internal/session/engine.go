// Package session owns the start/pause/resume/stop lifecycle of work
// sessions, converts wall-clock intervals into billable minutes and keeps
// a running session recoverable across process restarts.
package session

import (
	"context"
	"sync"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/snapshot"

	"github.com/charmbracelet/log"
)

// StopReason distinguishes a user-initiated stop from the automatic cutoff.
type StopReason string

const (
	StopReasonManual          StopReason = "manual"
	StopReasonAutomaticCutoff StopReason = "automatic_cutoff"
)

// RecordStore is the durable record store the engine writes finalized time
// records to. Failures are recoverable; the engine leaves its in-memory
// state unchanged and the caller may retry.
type RecordStore interface {
	// CreateOpenRecord creates an open record (no end time, zero duration)
	// and returns its id.
	CreateOpenRecord(ctx context.Context, actorID, projectID string, startTime time.Time) (string, error)

	// FinalizeRecord sets the end time and the computed billable result.
	FinalizeRecord(ctx context.Context, recordID string, endTime time.Time, durationMinutes int, lunchDeducted bool) error

	// FindOpenRecord returns the actor's open record, or nil if none exists.
	FindOpenRecord(ctx context.Context, actorID string) (*domain.TimeRecord, error)
}

// ProjectDirectory resolves project ids at session start.
type ProjectDirectory interface {
	ProjectExists(ctx context.Context, projectID string) (bool, error)
}

// Engine manages work sessions for all actors. A single mutex serializes
// all session mutation so concurrent commands and the cutoff monitor never
// observe a half-applied transition.
type Engine struct {
	mu        sync.Mutex
	records   RecordStore
	projects  ProjectDirectory
	snapshots snapshot.Store
	clock     Clock
	policy    Policy
	sessions  map[string]*WorkSession
}

// NewEngine creates a session engine with the given collaborators.
func NewEngine(records RecordStore, projects ProjectDirectory, snapshots snapshot.Store, clock Clock, policy Policy) *Engine {
	return &Engine{
		records:   records,
		projects:  projects,
		snapshots: snapshots,
		clock:     clock,
		policy:    policy,
		sessions:  make(map[string]*WorkSession),
	}
}

// Start opens a new work session for the actor on the given project.
// The open record must be acknowledged by the durable store before the
// in-memory session is created; the snapshot is written right after as a
// crash-recovery hint.
func (e *Engine) Start(ctx context.Context, actorID, projectID string) (*WorkSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if projectID == "" {
		return nil, errors.NewNoProjectSelectedError()
	}
	if _, open := e.sessions[actorID]; open {
		return nil, errors.NewSessionAlreadyRunningError(actorID)
	}

	exists, err := e.projects.ProjectExists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("project", projectID)
	}

	now := e.clock.Now()
	recordID, err := e.records.CreateOpenRecord(ctx, actorID, projectID, now)
	if err != nil {
		return nil, err
	}

	s := &WorkSession{
		ActorID:   actorID,
		ProjectID: projectID,
		RecordID:  recordID,
		StartTime: now,
	}
	e.saveSnapshot(s)
	e.sessions[actorID] = s

	log.Info("work session started", "actor_id", actorID, "project_id", projectID, "record_id", recordID)
	return s.clone(), nil
}

// Pause opens a pause interval on the actor's running session. Pausing an
// already paused session is a recoverable no-op error.
func (e *Engine) Pause(ctx context.Context, actorID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, open := e.sessions[actorID]
	if !open {
		return errors.NewNoActiveSessionError(actorID)
	}
	if s.IsPaused() {
		return errors.NewInvalidStateTransitionError(actorID, "pause", "session is already paused")
	}

	now := e.clock.Now()
	s.PauseStartedAt = &now
	e.saveSnapshot(s)
	return nil
}

// Resume closes the open pause interval and adds it to the accumulated
// pause time. Resuming a session that is not paused is a recoverable
// no-op error.
func (e *Engine) Resume(ctx context.Context, actorID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, open := e.sessions[actorID]
	if !open {
		return errors.NewNoActiveSessionError(actorID)
	}
	if !s.IsPaused() {
		return errors.NewInvalidStateTransitionError(actorID, "resume", "session is not paused")
	}

	e.closePause(s, e.clock.Now())
	e.saveSnapshot(s)
	return nil
}

// Stop finalizes the actor's running session. An automatic-cutoff stop uses
// the fixed cutoff timestamp as the end time, so billable time never exceeds
// the policy limit; a session started after its cutoff ends at the current
// time instead. The durable store must acknowledge the finalized record
// before the in-memory session and snapshot are discarded.
func (e *Engine) Stop(ctx context.Context, actorID string, reason StopReason) (*domain.TimeRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, open := e.sessions[actorID]
	if !open {
		return nil, errors.NewNoActiveSessionError(actorID)
	}
	return e.stopLocked(ctx, s, reason)
}

// Current returns a copy of the actor's running session, or nil if none.
func (e *Engine) Current(actorID string) *WorkSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, open := e.sessions[actorID]
	if !open {
		return nil
	}
	return s.clone()
}

// Elapsed returns the worked time of the actor's running session as of the
// current clock reading. Pure display computation for the once-per-second
// UI tick; no state is mutated.
func (e *Engine) Elapsed(actorID string) (time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, open := e.sessions[actorID]
	if !open {
		return 0, errors.NewNoActiveSessionError(actorID)
	}
	return s.Elapsed(e.clock.Now()), nil
}

// EnforceCutoff stops every session whose cutoff has passed. Safe to call
// repeatedly: once a session is stopped, later calls find nothing open.
func (e *Engine) EnforceCutoff(ctx context.Context) []*domain.TimeRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	var finalized []*domain.TimeRecord
	for _, s := range e.sessions {
		if now.Before(e.policy.CutoffTime(s.StartTime)) && sameCalendarDay(s.StartTime, now) {
			continue
		}
		record, err := e.stopLocked(ctx, s, StopReasonAutomaticCutoff)
		if err != nil {
			log.Error("automatic cutoff stop failed", "actor_id", s.ActorID, "err", err)
			continue
		}
		finalized = append(finalized, record)
	}
	return finalized
}

// Restore reconstructs the actor's in-progress session after a restart.
// The durable store is authoritative; the local snapshot only contributes
// the pause bookkeeping and is discarded when the two disagree. A session
// started on a prior calendar day, or already past its cutoff, is finalized
// immediately instead of resuming a live timer.
func (e *Engine) Restore(ctx context.Context, actorID string) (*WorkSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, open := e.sessions[actorID]; open {
		return s.clone(), nil
	}

	open, err := e.records.FindOpenRecord(ctx, actorID)
	if err != nil {
		return nil, err
	}

	snap, err := e.snapshots.Load(actorID)
	if err != nil {
		log.Warn("failed to load session snapshot", "actor_id", actorID, "err", err)
		snap = nil
	}

	if open == nil {
		// Durable store says nothing is running; a leftover snapshot means
		// another client already finalized the record.
		if snap != nil {
			log.Info("discarding snapshot for already finalized session", "actor_id", actorID, "record_id", snap.RecordID)
			e.clearSnapshot(actorID)
		}
		return nil, nil
	}

	s := &WorkSession{
		ActorID:   actorID,
		ProjectID: open.ProjectID,
		RecordID:  open.ID,
		StartTime: open.StartTime,
	}

	if snap != nil {
		if snap.RecordID == open.ID {
			s.PauseAccum = snap.PauseAccum
			if snap.PauseStartedAt != nil && !snap.PauseStartedAt.Before(s.StartTime) {
				at := *snap.PauseStartedAt
				s.PauseStartedAt = &at
			}
		} else {
			log.Warn("session snapshot disagrees with durable record, preferring durable store",
				"actor_id", actorID, "snapshot_record_id", snap.RecordID, "record_id", open.ID)
			e.clearSnapshot(actorID)
		}
	}

	now := e.clock.Now()
	if !sameCalendarDay(s.StartTime, now) || !now.Before(e.policy.CutoffTime(s.StartTime)) {
		e.sessions[actorID] = s
		if _, err := e.stopLocked(ctx, s, StopReasonAutomaticCutoff); err != nil {
			delete(e.sessions, actorID)
			return nil, err
		}
		log.Info("finalized stale session on restore", "actor_id", actorID, "record_id", s.RecordID)
		return nil, nil
	}

	e.sessions[actorID] = s
	e.saveSnapshot(s)
	log.Info("work session restored", "actor_id", actorID, "record_id", s.RecordID)
	return s.clone(), nil
}

// stopLocked finalizes a session. Callers must hold the engine mutex.
func (e *Engine) stopLocked(ctx context.Context, s *WorkSession, reason StopReason) (*domain.TimeRecord, error) {
	now := e.clock.Now()
	end := now
	if reason == StopReasonAutomaticCutoff {
		// A session started after the cutoff has no usable cutoff instant;
		// clamping would place the end before the start. Such a session
		// ends at the current time instead.
		cutoff := e.policy.CutoffTime(s.StartTime)
		if cutoff.Before(end) && !cutoff.Before(s.StartTime) {
			end = cutoff
		}
	}

	paused := s.PausedTotal(end)
	minutes, lunchDeducted := e.policy.Billable(s.StartTime, end, paused)

	if err := e.records.FinalizeRecord(ctx, s.RecordID, end, minutes, lunchDeducted); err != nil {
		return nil, err
	}

	e.clearSnapshot(s.ActorID)
	delete(e.sessions, s.ActorID)

	log.Info("work session stopped",
		"actor_id", s.ActorID, "record_id", s.RecordID, "reason", reason,
		"minutes", minutes, "lunch_deducted", lunchDeducted)

	return &domain.TimeRecord{
		ID:              s.RecordID,
		EmployeeID:      s.ActorID,
		ProjectID:       s.ProjectID,
		StartTime:       s.StartTime,
		EndTime:         &end,
		DurationMinutes: minutes,
		LunchDeducted:   lunchDeducted,
	}, nil
}

// saveSnapshot persists the crash-recovery hint. A failed write is logged
// and otherwise ignored; the durable store remains authoritative.
func (e *Engine) saveSnapshot(s *WorkSession) {
	snap := snapshot.Snapshot{
		RecordID:       s.RecordID,
		ActorID:        s.ActorID,
		ProjectID:      s.ProjectID,
		StartTime:      s.StartTime,
		PauseAccum:     s.PauseAccum,
		PauseStartedAt: s.PauseStartedAt,
	}
	if err := e.snapshots.Save(s.ActorID, snap); err != nil {
		log.Warn("failed to save session snapshot", "actor_id", s.ActorID, "err", err)
	}
}

func (e *Engine) clearSnapshot(actorID string) {
	if err := e.snapshots.Clear(actorID); err != nil {
		log.Warn("failed to clear session snapshot", "actor_id", actorID, "err", err)
	}
}

// closePause folds the open pause interval into the accumulated total,
// flooring negative clock-skew deltas at zero.
func (e *Engine) closePause(s *WorkSession, now time.Time) {
	delta := now.Sub(*s.PauseStartedAt)
	if delta < 0 {
		delta = 0
	}
	s.PauseAccum += delta
	s.PauseStartedAt = nil
}
