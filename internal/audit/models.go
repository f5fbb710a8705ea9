package audit

import (
	"time"

	"voiceagent-bridge/internal/normalize"
)

// Event is an immutable, append-only record of a rejected payload.
//
// Invariants:
// - Events are never updated or deleted.
// - workspace_id is required for tenancy isolation.
// - The raw payload is never stored; only the failure paths and reasons.
//
// Storage (Postgres): see Schema.
type Event struct {
	ID          string `json:"id" db:"id"`
	WorkspaceID string `json:"workspace_id" db:"workspace_id"`

	Type   EventType      `json:"type" db:"type"`
	Kind   normalize.Kind `json:"kind" db:"kind"`
	Source Source         `json:"source" db:"source"`

	// EntityID is the payload's identifier when it could be read.
	EntityID string `json:"entity_id,omitempty" db:"entity_id"`

	// Index is the item position within the request body; a single payload is 0.
	Index int `json:"index" db:"item_index"`

	ClientID  string `json:"client_id,omitempty" db:"client_id"`
	RequestID string `json:"request_id,omitempty" db:"request_id"`

	Failures normalize.Failures `json:"failures"`

	// Detail carries contract errors that are not field failures (non-object items).
	Detail string `json:"detail,omitempty" db:"detail"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type EventType string

const (
	EventTypeRejected EventType = "payload_rejected"
)

// Source names where a rejected payload came from.
type Source string

const (
	SourceIngest   Source = "ingest"
	SourceUpstream Source = "upstream"
)
