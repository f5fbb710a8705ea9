package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"voiceagent-bridge/internal/normalize"
)

// Repository is the persistence contract for audit events.
//
// It MUST be append-only.
type Repository interface {
	Append(ctx context.Context, e Event) error
}

// Service records rejected payloads.
//
// IMPORTANT:
// - Audit is internal-only. Do not expose these records to tenant users by default.
// - Callers should treat audit logging as best-effort.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("audit: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.WorkspaceID == "" || e.Type == "" || e.Kind == "" {
		return ErrInvalidEvent
	}
	if len(e.Failures) == 0 && e.Detail == "" {
		return ErrInvalidEvent
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// Rejection describes who sent a payload that failed validation.
type Rejection struct {
	WorkspaceID string
	ClientID    string
	RequestID   string
	Source      Source
}

// RecordOutcomes appends one event per failed outcome. It returns the number
// of events written and the first error seen; later outcomes are still tried.
func RecordOutcomes[T any](ctx context.Context, s *Service, r Rejection, kind normalize.Kind, items []any, outcomes []normalize.Outcome[T]) (int, error) {
	var (
		n        int
		firstErr error
	)
	for _, o := range outcomes {
		if o.OK() {
			continue
		}
		e := Event{
			WorkspaceID: r.WorkspaceID,
			Type:        EventTypeRejected,
			Kind:        kind,
			Source:      r.Source,
			Index:       o.Index,
			ClientID:    r.ClientID,
			RequestID:   r.RequestID,
			Failures:    o.Failures(),
		}
		if e.Failures == nil {
			e.Detail = o.Err.Error()
		}
		if o.Index < len(items) {
			e.EntityID = normalize.PayloadID(items[o.Index])
		}
		if err := s.Append(ctx, e); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		n++
	}
	return n, firstErr
}
