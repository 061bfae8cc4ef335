package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`DO $$ BEGIN CREATE TYPE dispatch_reason AS ENUM ('deadline', 'trigger'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS sync_dispatches (
		id UUID PRIMARY KEY,
		channel_id TEXT NOT NULL,
		originator TEXT NOT NULL,
		participants TEXT[] NOT NULL DEFAULT '{}',
		roster TEXT[] NOT NULL DEFAULT '{}',
		reason dispatch_reason NOT NULL,
		call_to_action TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		opened_at TIMESTAMPTZ NOT NULL,
		dispatched_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_dispatches_channel ON sync_dispatches (channel_id, dispatched_at DESC)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
