package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap creates the schema if it does not exist yet. Uniqueness of the
// mobile number is enforced here, at the storage layer, over live rows only:
// a soft-deleted registrant frees its mobile for re-registration. The
// is_checked/checked_in_time pairing invariant is a CHECK so no code path
// can store a checked-in row without its timestamp.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS registrant (
			id              BIGSERIAL PRIMARY KEY,
			name            TEXT NOT NULL,
			mobile          TEXT NOT NULL,
			department      TEXT NOT NULL,
			company         TEXT NOT NULL,
			family_employee INT DEFAULT 1 CHECK (family_employee >= 0),
			family_infant   INT CHECK (family_infant >= 0),
			family_child    INT CHECK (family_child >= 0),
			family_adult    INT CHECK (family_adult >= 0),
			family_elderly  INT CHECK (family_elderly >= 0),
			"group"         TEXT,
			is_checked      BOOLEAN NOT NULL DEFAULT FALSE,
			checked_in_time TIMESTAMPTZ,
			is_deleted      BOOLEAN NOT NULL DEFAULT FALSE,
			CHECK (is_checked = (checked_in_time IS NOT NULL))
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS registrant_live_mobile_idx
			ON registrant (mobile) WHERE NOT is_deleted`,
		`CREATE INDEX IF NOT EXISTS registrant_group_idx
			ON registrant ("group") WHERE NOT is_deleted`,
		`CREATE TABLE IF NOT EXISTS notification (
			id         BIGSERIAL PRIMARY KEY,
			title      TEXT NOT NULL,
			message    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
