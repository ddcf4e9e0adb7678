package sqlite

import (
	"context"
	"time"

	"github.com/credgate/credgate/internal/gate/domain"
)

type appsRepo struct {
	db dbtx
}

func (r *appsRepo) CreateApp(ctx context.Context, a domain.App) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO apps (id, owner, invites_per_new_user, transferrable, base_uri, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Owner, a.InvitesPerNewUser, a.Transferrable, a.BaseURI, a.CreatedAt, a.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *appsRepo) GetApp(ctx context.Context, appID string) (domain.App, error) {
	var a domain.App
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner, invites_per_new_user, transferrable, base_uri, created_at, updated_at
		FROM apps WHERE id = ?`, appID,
	).Scan(&a.ID, &a.Owner, &a.InvitesPerNewUser, &a.Transferrable, &a.BaseURI, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.App{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appsRepo) UpdateOwner(ctx context.Context, appID, newOwner string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE apps SET owner = ?, updated_at = ? WHERE id = ?`,
		newOwner, time.Now().UTC(), appID,
	)
	return err
}

func (r *appsRepo) SetTransferrable(ctx context.Context, appID string, transferrable bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE apps SET transferrable = ?, updated_at = ? WHERE id = ?`,
		transferrable, time.Now().UTC(), appID,
	)
	return err
}

func (r *appsRepo) SetInvitesPerNewUser(ctx context.Context, appID string, n int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE apps SET invites_per_new_user = ?, updated_at = ? WHERE id = ?`,
		n, time.Now().UTC(), appID,
	)
	return err
}

func (r *appsRepo) SetBaseURI(ctx context.Context, appID, baseURI string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE apps SET base_uri = ?, updated_at = ? WHERE id = ?`,
		baseURI, time.Now().UTC(), appID,
	)
	return err
}

func (r *appsRepo) AddAdmin(ctx context.Context, appID, identity string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_admins (app_id, identity, created_at) VALUES (?, ?, ?)
		ON CONFLICT (app_id, identity) DO NOTHING`,
		appID, identity, time.Now().UTC(),
	)
	return err
}

func (r *appsRepo) RemoveAdmin(ctx context.Context, appID, identity string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM app_admins WHERE app_id = ? AND identity = ?`,
		appID, identity,
	)
	return err
}

func (r *appsRepo) IsAdmin(ctx context.Context, appID, identity string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM app_admins WHERE app_id = ? AND identity = ?`,
		appID, identity,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *appsRepo) ListAdmins(ctx context.Context, appID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT identity FROM app_admins WHERE app_id = ? ORDER BY created_at, identity`,
		appID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []string
	for rows.Next() {
		var identity string
		if err := rows.Scan(&identity); err != nil {
			return nil, err
		}
		admins = append(admins, identity)
	}
	return admins, rows.Err()
}
