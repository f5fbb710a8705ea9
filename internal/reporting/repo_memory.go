package reporting

import (
	"context"
	"errors"
	"sync"

	"voiceagent-bridge/internal/normalize"
)

// MemoryRepo is a simple in-memory call-log source for tests and early development.
// It enforces workspace isolation on reads.
type MemoryRepo struct {
	mu      sync.Mutex
	entries map[string][]normalize.CallLogEntry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: map[string][]normalize.CallLogEntry{}}
}

func (r *MemoryRepo) Add(workspaceID string, entries ...normalize.CallLogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[workspaceID] = append(r.entries[workspaceID], entries...)
}

func (r *MemoryRepo) ListCallLogs(ctx context.Context, workspaceID string, rng TimeRange) ([]normalize.CallLogEntry, error) {
	if workspaceID == "" {
		return nil, errors.New("workspace_id required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]normalize.CallLogEntry, 0)
	for _, e := range r.entries[workspaceID] {
		if e.Timestamp != nil && !rng.Contains(*e.Timestamp) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
