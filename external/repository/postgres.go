package repository

import (
	"context"
	"fmt"

	"github.com/foxseedlab/syncbot/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) InsertDispatch(ctx context.Context, input repository.InsertDispatchInput) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sync_dispatches
		 (id, channel_id, originator, participants, roster, reason, call_to_action, completed, opened_at, dispatched_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		input.ID, input.ChannelID, input.Originator, input.Participants, input.Roster,
		input.Reason, input.CallToAction, input.Completed, input.OpenedAt, input.DispatchedAt)
	if err != nil {
		return fmt.Errorf("insert dispatch %s: %w", input.ID, err)
	}
	return nil
}

func (r *PostgresRepository) ListRecentDispatchesByChannel(ctx context.Context, channelID string, limit int) ([]repository.DispatchRecord, error) {
	if limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, channel_id, originator, participants, roster, reason, call_to_action, completed,
		        opened_at, dispatched_at, created_at
		 FROM sync_dispatches WHERE channel_id = $1
		 ORDER BY dispatched_at DESC LIMIT $2`,
		channelID, limit)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, scanDispatch)
	if err != nil {
		return nil, fmt.Errorf("list dispatches for %s: %w", channelID, err)
	}
	return list, nil
}

func (r *PostgresRepository) Shutdown() {
	r.pool.Close()
}

func scanDispatch(row pgx.CollectableRow) (repository.DispatchRecord, error) {
	var d repository.DispatchRecord
	err := row.Scan(&d.ID, &d.ChannelID, &d.Originator, &d.Participants, &d.Roster, &d.Reason,
		&d.CallToAction, &d.Completed, &d.OpenedAt, &d.DispatchedAt, &d.CreatedAt)
	return d, err
}
