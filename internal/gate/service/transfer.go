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
	ErrNotTransferrable = errors.New("app does not allow membership transfers")
	ErrTokenLocked      = errors.New("token is locked")
)

// TransferService moves tokens between identities, applying the per-app
// transfer policy: invitations move freely, memberships only when the app
// allows transfers and the token isn't locked. The recipient of a
// membership token is registered as a side effect.
type TransferService struct {
	Store store.Store
}

// Transfer moves tokenID from `from` to `to` on behalf of caller. The
// caller must be the current owner; there is no delegation.
func (s *TransferService) Transfer(ctx context.Context, caller, from, to string, tokenID uint64) error {
	log := slogx.FromContext(ctx)

	if to == "" {
		return ErrNilIdentity
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Ownership check: `from` must hold the token and the caller
		// must be `from`.
		owner, err := tx.Ledger().OwnerOf(ctx, tokenID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		if owner != from || caller != from {
			return ErrNotTokenOwner
		}

		// 2. Policy check by credential type. Invitations are freely
		// re-giftable; memberships respect app policy and the lock flag.
		tok, err := tx.Tokens().GetToken(ctx, tokenID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		if tok.Type == domain.TokenMembership {
			app, err := getApp(ctx, tx, tok.AppID)
			if err != nil {
				return err
			}
			if !app.Transferrable {
				return ErrNotTransferrable
			}
			if tok.Locked {
				return ErrTokenLocked
			}
		}

		// 3. Move the token.
		if err := tx.Ledger().UpdateOwner(ctx, tokenID, to); err != nil {
			return err
		}

		// 4. A membership token always implies registration for its new
		// holder, however it was acquired. The sender stays registered;
		// registration is monotonic.
		if tok.Type == domain.TokenMembership {
			if err := tx.Members().Register(ctx, tok.AppID, to); err != nil {
				return err
			}
		}

		return appendEvent(ctx, tx, domain.Event{
			AppID:   tok.AppID,
			Type:    domain.EventTokenTransferred,
			Actor:   caller,
			Subject: to,
			TokenID: tokenID,
		})
	})
	if err != nil {
		return err
	}

	log.Debug("token transferred",
		slog.Uint64("token_id", tokenID),
		slog.String("from", from),
		slog.String("to", to),
	)
	return nil
}
