package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type membersRepo struct {
	db dbtx
}

func (r *membersRepo) Register(ctx context.Context, appID, identity string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_members (app_id, identity, registered, invites_left, created_at, updated_at)
		VALUES (?, ?, 1, 0, ?, ?)
		ON CONFLICT (app_id, identity) DO UPDATE SET registered = 1, updated_at = excluded.updated_at`,
		appID, identity, now, now,
	)
	return err
}

func (r *membersRepo) IsRegistered(ctx context.Context, appID, identity string) (bool, error) {
	var registered bool
	err := r.db.QueryRowContext(ctx,
		`SELECT registered FROM app_members WHERE app_id = ? AND identity = ?`,
		appID, identity,
	).Scan(&registered)
	if errors.Is(err, sql.ErrNoRows) {
		// No row means never registered.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return registered, nil
}

func (r *membersRepo) InvitesLeft(ctx context.Context, appID, identity string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT invites_left FROM app_members WHERE app_id = ? AND identity = ?`,
		appID, identity,
	).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *membersRepo) SetInvitesLeft(ctx context.Context, appID, identity string, n int) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_members (app_id, identity, registered, invites_left, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?, ?)
		ON CONFLICT (app_id, identity) DO UPDATE SET invites_left = excluded.invites_left, updated_at = excluded.updated_at`,
		appID, identity, n, now, now,
	)
	return err
}
