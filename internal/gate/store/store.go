package store

import (
	"context"
	"errors"

	"github.com/credgate/credgate/internal/gate/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy; every multi-step
// mutation in the service layer goes through WithTx so a failed precondition
// rolls the whole call back.
type Store interface {
	Apps() Apps
	Members() Members
	Ledger() Ledger
	Tokens() Tokens
	Events() Events

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rollback if fn errors,
	// commit otherwise. This is the recommended entry point.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Apps interface {
	// CreateApp inserts a new app record. Returns ErrAlreadyExists if the
	// id is taken; app ids are immutable once created.
	CreateApp(ctx context.Context, a domain.App) error

	// GetApp fetches an app by id.
	GetApp(ctx context.Context, appID string) (domain.App, error)

	// UpdateOwner reassigns the app owner and bumps updated_at.
	UpdateOwner(ctx context.Context, appID, newOwner string) error

	// SetTransferrable flips whether membership tokens may be transferred.
	SetTransferrable(ctx context.Context, appID string, transferrable bool) error

	// SetInvitesPerNewUser updates the budget granted on acceptance.
	SetInvitesPerNewUser(ctx context.Context, appID string, n int) error

	// SetBaseURI updates the metadata base string.
	SetBaseURI(ctx context.Context, appID, baseURI string) error

	// AddAdmin inserts an identity into the admin set (idempotent).
	AddAdmin(ctx context.Context, appID, identity string) error

	// RemoveAdmin deletes an identity from the admin set (idempotent).
	RemoveAdmin(ctx context.Context, appID, identity string) error

	// IsAdmin reports admin-set membership. It does NOT consider ownership;
	// callers that want "owner or admin" check the app record too.
	IsAdmin(ctx context.Context, appID, identity string) (bool, error)

	// ListAdmins returns the admin set ordered by insertion.
	ListAdmins(ctx context.Context, appID string) ([]string, error)
}

type Members interface {
	// Register marks an identity as a member of an app (idempotent).
	// Registration is monotonic; there is no unregister.
	Register(ctx context.Context, appID, identity string) error

	// IsRegistered reports membership-set inclusion.
	IsRegistered(ctx context.Context, appID, identity string) (bool, error)

	// InvitesLeft returns the remaining invite budget; zero when the
	// identity has no row.
	InvitesLeft(ctx context.Context, appID, identity string) (int, error)

	// SetInvitesLeft overwrites the remaining invite budget.
	SetInvitesLeft(ctx context.Context, appID, identity string, n int) error
}

// Ledger owns the owner<->token relation and nothing else.
type Ledger interface {
	// Mint creates the ownership record. Returns ErrAlreadyExists if the
	// token id is already in use.
	Mint(ctx context.Context, owner string, tokenID uint64) error

	// Burn removes the ownership record. Returns ErrNotFound if absent.
	Burn(ctx context.Context, tokenID uint64) error

	// UpdateOwner moves a token between owners. The policy check and the
	// current-owner check belong to the service layer.
	UpdateOwner(ctx context.Context, tokenID uint64, newOwner string) error

	// OwnerOf returns the current holder. ErrNotFound for burned or
	// never-minted ids.
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)

	// BalanceOf counts tokens held by an identity.
	BalanceOf(ctx context.Context, owner string) (int, error)

	// TokenOfOwnerByIndex returns the i-th token id held by owner, in
	// ascending token-id order. ErrNotFound when i is out of range.
	TokenOfOwnerByIndex(ctx context.Context, owner string, i int) (uint64, error)

	// TokensByOwnerAppType returns the ids of owner's tokens filtered to
	// one app and credential type, ascending. Served by a composite index
	// so access checks don't scan the full balance.
	TokensByOwnerAppType(ctx context.Context, owner, appID string, typ domain.TokenType) ([]uint64, error)
}

type Tokens interface {
	// NextID allocates the next token id from the process-wide monotonic
	// counter. Ids are never reused, even after burn.
	NextID(ctx context.Context) (uint64, error)

	// CreateToken inserts the attribute record for a freshly minted token.
	CreateToken(ctx context.Context, t domain.Token) error

	// GetToken fetches the attribute record.
	GetToken(ctx context.Context, tokenID uint64) (domain.Token, error)

	// SetLocked flips the lock flag on a membership token.
	SetLocked(ctx context.Context, tokenID uint64, locked bool) error

	// DeleteToken removes the attribute record when a token is burned.
	DeleteToken(ctx context.Context, tokenID uint64) error
}

type Events interface {
	// Append records an event. Called inside the same transaction as the
	// mutation it describes.
	Append(ctx context.Context, e domain.Event) error

	// ListByApp returns an app's events ordered oldest first, capped at
	// limit (all events if limit <= 0).
	ListByApp(ctx context.Context, appID string, limit int) ([]domain.Event, error)

	// DeleteOlderThan prunes events for housekeeping. Returns rows removed.
	DeleteOlderThan(ctx context.Context, cutoffID string) (int64, error)
}
