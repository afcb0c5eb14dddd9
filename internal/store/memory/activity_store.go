package memory

import (
	"context"
	"sync"

	"github.com/nazmedical/portal/internal/models"
)

// ActivityLogStore implements store.ActivityLogStore using an in-memory slice.
// Entries are kept in append order.
type ActivityLogStore struct {
	mu      sync.RWMutex
	entries []*models.ActivityLog
}

// NewActivityLogStore creates a new in-memory activity log.
func NewActivityLogStore() *ActivityLogStore {
	return &ActivityLogStore{}
}

func (s *ActivityLogStore) Append(ctx context.Context, entry *models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *entry
	clone.ActorUserID = clonePtr(entry.ActorUserID)
	s.entries = append(s.entries, &clone)
	return nil
}

// Latest returns the newest entries first.
func (s *ActivityLogStore) Latest(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return []*models.ActivityLog{}, nil
	}

	result := make([]*models.ActivityLog, 0, min(limit, len(s.entries)))
	for i := len(s.entries) - 1; i >= 0 && len(result) < limit; i-- {
		clone := *s.entries[i]
		result = append(result, &clone)
	}
	return result, nil
}
