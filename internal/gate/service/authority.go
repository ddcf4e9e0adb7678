package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/store"
	"github.com/credgate/credgate/pkg/slogx"
)

var (
	ErrNotAppOwner       = errors.New("caller is not the app owner")
	ErrCannotRemoveOwner = errors.New("owner cannot be removed from the admin set")
)

// AuthorityService governs ownership transfer and the admin set. Owner-only
// operations live here; admin-gated configuration lives on AppService.
type AuthorityService struct {
	Store store.Store
}

// TransferOwnership reassigns the app owner. The new owner gains admin
// status; the previous owner keeps theirs.
func (s *AuthorityService) TransferOwnership(ctx context.Context, caller, appID, newOwner string) error {
	log := slogx.FromContext(ctx)

	if newOwner == "" {
		return ErrNilIdentity
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if app.Owner != caller {
			return ErrNotAppOwner
		}

		if err := tx.Apps().UpdateOwner(ctx, appID, newOwner); err != nil {
			return err
		}
		if err := tx.Apps().AddAdmin(ctx, appID, newOwner); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID:   appID,
			Type:    domain.EventOwnershipTransferred,
			Actor:   caller,
			Subject: newOwner,
		})
	})
	if err != nil {
		return err
	}

	log.Info("app ownership transferred",
		slog.String("app_id", appID),
		slog.String("previous_owner", caller),
		slog.String("new_owner", newOwner),
	)
	return nil
}

// AddAdmin inserts an identity into the admin set. Owner-only.
func (s *AuthorityService) AddAdmin(ctx context.Context, caller, appID, identity string) error {
	if identity == "" {
		return ErrNilIdentity
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if app.Owner != caller {
			return ErrNotAppOwner
		}

		if err := tx.Apps().AddAdmin(ctx, appID, identity); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID:   appID,
			Type:    domain.EventAdminAdded,
			Actor:   caller,
			Subject: identity,
		})
	})
}

// RemoveAdmin deletes an identity from the admin set. Owner-only; the
// owner's own admin status is structurally protected.
func (s *AuthorityService) RemoveAdmin(ctx context.Context, caller, appID, identity string) error {
	if identity == "" {
		return ErrNilIdentity
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if app.Owner != caller {
			return ErrNotAppOwner
		}
		if identity == app.Owner {
			return ErrCannotRemoveOwner
		}

		if err := tx.Apps().RemoveAdmin(ctx, appID, identity); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID:   appID,
			Type:    domain.EventAdminRemoved,
			Actor:   caller,
			Subject: identity,
		})
	})
}

// IsAuthorizedAdmin reports whether identity may perform administrative
// actions on the app (owner or admin-set member).
func (s *AuthorityService) IsAuthorizedAdmin(ctx context.Context, appID, identity string) (bool, error) {
	app, err := s.Store.Apps().GetApp(ctx, appID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrAppNotFound
		}
		return false, err
	}
	if identity == app.Owner {
		return true, nil
	}
	return s.Store.Apps().IsAdmin(ctx, appID, identity)
}
