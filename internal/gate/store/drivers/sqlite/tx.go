package sqlite

import (
	"context"
	"database/sql"

	"github.com/credgate/credgate/internal/gate/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Apps() store.Apps       { return &appsRepo{db: t.tx} }
func (t *txStore) Members() store.Members { return &membersRepo{db: t.tx} }
func (t *txStore) Ledger() store.Ledger   { return &ledgerRepo{db: t.tx} }
func (t *txStore) Tokens() store.Tokens   { return &tokensRepo{db: t.tx} }
func (t *txStore) Events() store.Events   { return &eventsRepo{db: t.tx} }
