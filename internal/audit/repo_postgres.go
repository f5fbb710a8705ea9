package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"voiceagent-bridge/internal/normalize"
	"voiceagent-bridge/pkg/utils"
)

// Schema creates the audit tables. Both tables are INSERT-only.
const Schema = `
CREATE TABLE IF NOT EXISTS rejected_payloads (
	id           UUID PRIMARY KEY,
	workspace_id TEXT NOT NULL,
	type         TEXT NOT NULL,
	kind         TEXT NOT NULL,
	source       TEXT NOT NULL,
	entity_id    TEXT,
	item_index   INTEGER NOT NULL,
	client_id    TEXT,
	request_id   TEXT,
	detail       TEXT,
	created_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS rejected_payloads_ws_created ON rejected_payloads (workspace_id, created_at);

CREATE TABLE IF NOT EXISTS rejected_payload_failures (
	event_id UUID NOT NULL REFERENCES rejected_payloads (id),
	position INTEGER NOT NULL,
	reason   TEXT NOT NULL,
	paths    TEXT NOT NULL,
	detail   TEXT,
	PRIMARY KEY (event_id, position)
);
`

// PostgresRepo persists events through database/sql (pgx stdlib driver).
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

// Migrate applies Schema. It is idempotent.
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	return utils.ApplySchema(ctx, r.db, Schema)
}

func (r *PostgresRepo) Append(ctx context.Context, e Event) error {
	return utils.WithTx(ctx, r.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO rejected_payloads (id, workspace_id, type, kind, source, entity_id, item_index, client_id, request_id, detail, created_at)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11)`,
			e.ID, e.WorkspaceID, string(e.Type), string(e.Kind), string(e.Source), e.EntityID, e.Index,
			e.ClientID, e.RequestID, e.Detail, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert rejected payload: %w", err)
		}
		for _, row := range failureRows(e.Failures) {
			_, err := tx.ExecContext(ctx, `
INSERT INTO rejected_payload_failures (event_id, position, reason, paths, detail)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
				e.ID, row.position, row.reason, row.paths, row.detail)
			if err != nil {
				return fmt.Errorf("insert failure %d: %w", row.position, err)
			}
		}
		return nil
	})
}

type failureRow struct {
	position int
	reason   string
	paths    string
	detail   string
}

// failureRows flattens failures; paths are stored comma-joined in report order.
func failureRows(fs normalize.Failures) []failureRow {
	out := make([]failureRow, 0, len(fs))
	for i, f := range fs {
		out = append(out, failureRow{
			position: i,
			reason:   string(f.Reason),
			paths:    strings.Join(f.Paths, ","),
			detail:   f.Detail,
		})
	}
	return out
}
