package sqlite

import (
	"context"
	"errors"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/store"
)

type tokensRepo struct {
	db dbtx
}

// NextID bumps the single-row counter and returns the new value. The
// counter only moves forward, so ids are never reused even after a burn.
// A wrapped counter would come back non-positive; fail closed rather than
// hand out a colliding id.
func (r *tokensRepo) NextID(ctx context.Context) (uint64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE token_counter SET next_id = next_id + 1 WHERE id = 1 RETURNING next_id`,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("sqlite: token id counter overflow")
	}
	return uint64(id), nil
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (id, app_id, type, inviter, locked, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.AppID, string(t.Type), t.Inviter, t.Locked, t.CreatedAt,
	)
	return mapConflict(err)
}

func (r *tokensRepo) GetToken(ctx context.Context, tokenID uint64) (domain.Token, error) {
	var (
		t   domain.Token
		typ string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, app_id, type, inviter, locked, created_at
		FROM tokens WHERE id = ?`, tokenID,
	).Scan(&t.ID, &t.AppID, &typ, &t.Inviter, &t.Locked, &t.CreatedAt)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	t.Type = domain.TokenType(typ)
	return t, nil
}

func (r *tokensRepo) SetLocked(ctx context.Context, tokenID uint64, locked bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tokens SET locked = ? WHERE id = ?`,
		locked, tokenID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *tokensRepo) DeleteToken(ctx context.Context, tokenID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tokens WHERE id = ?`, tokenID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
