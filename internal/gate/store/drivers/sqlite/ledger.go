package sqlite

import (
	"context"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/store"
)

type ledgerRepo struct {
	db dbtx
}

func (r *ledgerRepo) Mint(ctx context.Context, owner string, tokenID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ledger (token_id, owner) VALUES (?, ?)`,
		tokenID, owner,
	)
	return mapConflict(err)
}

func (r *ledgerRepo) Burn(ctx context.Context, tokenID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM ledger WHERE token_id = ?`, tokenID,
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

func (r *ledgerRepo) UpdateOwner(ctx context.Context, tokenID uint64, newOwner string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ledger SET owner = ? WHERE token_id = ?`,
		newOwner, tokenID,
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

func (r *ledgerRepo) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	var owner string
	err := r.db.QueryRowContext(ctx,
		`SELECT owner FROM ledger WHERE token_id = ?`, tokenID,
	).Scan(&owner)
	if err != nil {
		return "", mapNotFound(err)
	}
	return owner, nil
}

func (r *ledgerRepo) BalanceOf(ctx context.Context, owner string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM ledger WHERE owner = ?`, owner,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ledgerRepo) TokenOfOwnerByIndex(ctx context.Context, owner string, i int) (uint64, error) {
	if i < 0 {
		return 0, store.ErrNotFound
	}
	var id uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT token_id FROM ledger WHERE owner = ? ORDER BY token_id LIMIT 1 OFFSET ?`,
		owner, i,
	).Scan(&id)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return id, nil
}

func (r *ledgerRepo) TokensByOwnerAppType(
	ctx context.Context,
	owner, appID string,
	typ domain.TokenType,
) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.token_id
		FROM ledger l JOIN tokens t ON t.id = l.token_id
		WHERE l.owner = ? AND t.app_id = ? AND t.type = ?
		ORDER BY l.token_id`,
		owner, appID, string(typ),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
