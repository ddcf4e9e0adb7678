package sqlite

import (
	"context"

	"github.com/credgate/credgate/internal/gate/domain"
)

type eventsRepo struct {
	db dbtx
}

func (r *eventsRepo) Append(ctx context.Context, e domain.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, app_id, type, actor, subject, token_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.AppID, e.Type, e.Actor, e.Subject, e.TokenID, e.CreatedAt,
	)
	return mapConflict(err)
}

func (r *eventsRepo) ListByApp(ctx context.Context, appID string, limit int) ([]domain.Event, error) {
	query := `
		SELECT id, app_id, type, actor, subject, token_id, created_at
		FROM events WHERE app_id = ? ORDER BY id`
	args := []any{appID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.AppID, &e.Type, &e.Actor, &e.Subject, &e.TokenID, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteOlderThan removes events whose ULID sorts before cutoffID. ULIDs
// order by timestamp, so callers derive the cutoff from the retention
// window.
func (r *eventsRepo) DeleteOlderThan(ctx context.Context, cutoffID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM events WHERE id < ?`, cutoffID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
