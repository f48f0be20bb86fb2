// Package snapshot persists in-progress work session state to local disk
// so a running timer survives a process restart. The snapshot is only a
// crash-recovery hint; the durable record store stays authoritative.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Snapshot captures the fields needed to reconstruct a WorkSession.
type Snapshot struct {
	RecordID       string        `json:"record_id"`
	ActorID        string        `json:"actor_id"`
	ProjectID      string        `json:"project_id"`
	StartTime      time.Time     `json:"start_time"`
	PauseAccum     time.Duration `json:"pause_accum"`
	PauseStartedAt *time.Time    `json:"pause_started_at,omitempty"`
}

// Store defines the key-value persistence used for crash recovery.
type Store interface {
	Save(actorID string, snap Snapshot) error
	Load(actorID string) (*Snapshot, error)
	Clear(actorID string) error
}

// FileStore implements Store with one JSON file per actor.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed snapshot store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(actorID string) string {
	return filepath.Join(s.dir, actorID+".json")
}

// Save writes the snapshot for the actor, replacing any previous one.
func (s *FileStore) Save(actorID string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	// Write-then-rename keeps a crash from leaving a half-written file.
	tmp := s.path(actorID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(actorID))
}

// Load reads the snapshot for the actor. A missing or unreadable snapshot
// returns nil; it is only a hint and never an error worth failing on.
func (s *FileStore) Load(actorID string) (*Snapshot, error) {
	data, err := os.ReadFile(s.path(actorID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn("discarding corrupt session snapshot", "actor_id", actorID, "err", err)
		return nil, nil
	}
	return &snap, nil
}

// Clear removes the snapshot for the actor, if present.
func (s *FileStore) Clear(actorID string) error {
	err := os.Remove(s.path(actorID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
