// Package service implements the credential and membership rules on top of
// the store. Every mutating operation runs inside a single transaction so a
// failed precondition leaves no partial state behind.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/store"
	"github.com/credgate/credgate/pkg/idx"
)

// Sentinel errors shared across services.
var (
	ErrAppNotFound   = errors.New("app not found")
	ErrTokenNotFound = errors.New("token not found")
	ErrNilIdentity   = errors.New("identity must not be empty")
	ErrNotTokenOwner = errors.New("caller does not own the token")
)

// isAuthorizedAdmin reports whether identity is the app owner or a member
// of its admin set.
func isAuthorizedAdmin(ctx context.Context, tx store.Tx, app domain.App, identity string) (bool, error) {
	if identity == app.Owner {
		return true, nil
	}
	return tx.Apps().IsAdmin(ctx, app.ID, identity)
}

// appendEvent records an observable event in the same transaction as the
// mutation that caused it.
func appendEvent(ctx context.Context, tx store.Tx, e domain.Event) error {
	if e.ID == "" {
		e.ID = idx.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return tx.Events().Append(ctx, e)
}

// getApp fetches an app inside a transaction, mapping the store sentinel to
// the service-level one.
func getApp(ctx context.Context, tx store.Tx, appID string) (domain.App, error) {
	app, err := tx.Apps().GetApp(ctx, appID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.App{}, ErrAppNotFound
		}
		return domain.App{}, err
	}
	return app, nil
}
