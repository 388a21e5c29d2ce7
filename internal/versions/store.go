// Package versions tags snapshots of a project's harmonic state so a
// reharmonization can be applied without losing the progression it
// replaced. Persistence stays on this side of the engine boundary:
// analysis packages never touch the store.
package versions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/songcraft-labs/songcraft-api/internal/logger"
	"github.com/songcraft-labs/songcraft-api/internal/models"
)

// Version is a tagged snapshot of a project's key and chord track.
type Version struct {
	ID        string              `json:"id"`
	ProjectID string              `json:"projectId"`
	Label     string              `json:"label"`
	Key       string              `json:"key"`
	Chords    []models.ChordEvent `json:"chords"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Store persists tagged versions for later recall.
type Store interface {
	Save(ctx context.Context, version Version) (Version, error)
	List(ctx context.Context, projectID string) ([]Version, error)
}

// MemoryStore keeps versions in process memory, grouped by project.
// Restarting the server drops all tags.
type MemoryStore struct {
	mu        sync.Mutex
	byProject map[string][]Version
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byProject: make(map[string][]Version)}
}

// Save stores a version, assigning an ID and timestamp when absent.
func (s *MemoryStore) Save(_ context.Context, version Version) (Version, error) {
	if version.ID == "" {
		version.ID = uuid.New().String()
	}
	if version.CreatedAt.IsZero() {
		version.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.byProject[version.ProjectID] = append(s.byProject[version.ProjectID], version)
	s.mu.Unlock()

	logger.Info("Tagged project version", logger.Fields{
		"version_id": version.ID,
		"project_id": version.ProjectID,
		"label":      version.Label,
		"chords":     len(version.Chords),
	})

	return version, nil
}

// List returns the versions tagged for a project in save order.
func (s *MemoryStore) List(_ context.Context, projectID string) ([]Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.byProject[projectID]
	out := make([]Version, len(stored))
	copy(out, stored)
	return out, nil
}
