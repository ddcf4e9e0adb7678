package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/store"
	"github.com/credgate/credgate/pkg/slogx"
)

var (
	ErrAppExists              = errors.New("app id already exists")
	ErrInvalidAppID           = errors.New("app id must not be empty")
	ErrInitialInvitesTooLarge = errors.New("initial invite budget out of range")
	ErrInvitesPerUserTooLarge = errors.New("invites per new user out of range")
	ErrNotAppAdmin            = errors.New("caller is not an app admin")
	ErrNotMembershipToken     = errors.New("token is not a membership token")
	ErrInvalidGrant           = errors.New("invite grant must be positive")
)

// AppService creates apps and applies admin-gated configuration changes.
type AppService struct {
	Store store.Store

	// MintCreatorToken controls whether CreateApp also mints a membership
	// token to the creator, in addition to registering them directly.
	MintCreatorToken bool
}

// CreateApp registers a new app with the caller as owner, admin and first
// member. App ids are first-come and immutable once taken.
func (s *AppService) CreateApp(
	ctx context.Context,
	caller string,
	appID string,
	initialInvites int,
	invitesPerNewUser int,
) (domain.App, error) {
	log := slogx.FromContext(ctx)

	if caller == "" {
		return domain.App{}, ErrNilIdentity
	}
	if appID == "" {
		return domain.App{}, ErrInvalidAppID
	}
	if initialInvites < 0 || initialInvites > domain.MaxInitialInvites {
		return domain.App{}, ErrInitialInvitesTooLarge
	}
	if invitesPerNewUser < 0 || invitesPerNewUser > domain.MaxInvitesPerNewUser {
		return domain.App{}, ErrInvitesPerUserTooLarge
	}

	now := time.Now().UTC()
	app := domain.App{
		ID:                appID,
		Owner:             caller,
		InvitesPerNewUser: invitesPerNewUser,
		Transferrable:     true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Apps().CreateApp(ctx, app); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAppExists
			}
			return err
		}

		if err := tx.Apps().AddAdmin(ctx, appID, caller); err != nil {
			return err
		}
		if err := tx.Members().Register(ctx, appID, caller); err != nil {
			return err
		}
		if err := tx.Members().SetInvitesLeft(ctx, appID, caller, initialInvites); err != nil {
			return err
		}

		var creatorTokenID uint64
		if s.MintCreatorToken {
			id, err := tx.Tokens().NextID(ctx)
			if err != nil {
				return err
			}
			if err := tx.Tokens().CreateToken(ctx, domain.Token{
				ID:        id,
				AppID:     appID,
				Type:      domain.TokenMembership,
				Inviter:   caller,
				CreatedAt: now,
			}); err != nil {
				return err
			}
			if err := tx.Ledger().Mint(ctx, caller, id); err != nil {
				return err
			}
			creatorTokenID = id
		}

		return appendEvent(ctx, tx, domain.Event{
			AppID:   appID,
			Type:    domain.EventAppCreated,
			Actor:   caller,
			TokenID: creatorTokenID,
		})
	})
	if err != nil {
		return domain.App{}, err
	}

	log.Info("app created",
		slog.String("app_id", appID),
		slog.String("owner", caller),
		slog.Int("initial_invites", initialInvites),
		slog.Int("invites_per_new_user", invitesPerNewUser),
	)

	return app, nil
}

// GetApp returns the app record.
func (s *AppService) GetApp(ctx context.Context, appID string) (domain.App, error) {
	app, err := s.Store.Apps().GetApp(ctx, appID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.App{}, ErrAppNotFound
		}
		return domain.App{}, err
	}
	return app, nil
}

// Admins returns the app's admin set.
func (s *AppService) Admins(ctx context.Context, appID string) ([]string, error) {
	if _, err := s.GetApp(ctx, appID); err != nil {
		return nil, err
	}
	return s.Store.Apps().ListAdmins(ctx, appID)
}

// SetTransferrable flips whether membership tokens of the app may change
// hands. Admin-gated.
func (s *AppService) SetTransferrable(ctx context.Context, caller, appID string, transferrable bool) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, tx, app, caller); err != nil {
			return err
		}

		if err := tx.Apps().SetTransferrable(ctx, appID, transferrable); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID: appID,
			Type:  domain.EventTransferrableSet,
			Actor: caller,
		})
	})
	if err != nil {
		return err
	}

	log.Debug("app transferrable updated",
		slog.String("app_id", appID),
		slog.Bool("transferrable", transferrable),
	)
	return nil
}

// SetInvitesPerNewUser updates the invite budget handed to each newly
// accepted member. Admin-gated, bounded.
func (s *AppService) SetInvitesPerNewUser(ctx context.Context, caller, appID string, n int) error {
	if n < 0 || n > domain.MaxInvitesPerNewUser {
		return ErrInvitesPerUserTooLarge
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, tx, app, caller); err != nil {
			return err
		}
		return tx.Apps().SetInvitesPerNewUser(ctx, appID, n)
	})
}

// GrantInvites increments an identity's remaining invite budget.
// Admin-gated.
func (s *AppService) GrantInvites(ctx context.Context, caller, appID, identity string, n int) error {
	log := slogx.FromContext(ctx)

	if identity == "" {
		return ErrNilIdentity
	}
	if n <= 0 {
		return ErrInvalidGrant
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, tx, app, caller); err != nil {
			return err
		}

		left, err := tx.Members().InvitesLeft(ctx, appID, identity)
		if err != nil {
			return err
		}
		if err := tx.Members().SetInvitesLeft(ctx, appID, identity, left+n); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID:   appID,
			Type:    domain.EventInvitesGranted,
			Actor:   caller,
			Subject: identity,
		})
	})
	if err != nil {
		return err
	}

	log.Debug("invites granted",
		slog.String("app_id", appID),
		slog.String("identity", identity),
		slog.Int("count", n),
	)
	return nil
}

// SetBaseURI updates the metadata base string. Admin-gated.
func (s *AppService) SetBaseURI(ctx context.Context, caller, appID, baseURI string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		app, err := getApp(ctx, tx, appID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, tx, app, caller); err != nil {
			return err
		}

		if err := tx.Apps().SetBaseURI(ctx, appID, baseURI); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID: appID,
			Type:  domain.EventBaseURISet,
			Actor: caller,
		})
	})
}

// SetTokenLocked flips the lock flag on a membership token, blocking
// transfers while set. Admin-gated on the token's app.
func (s *AppService) SetTokenLocked(ctx context.Context, caller string, tokenID uint64, locked bool) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		tok, err := tx.Tokens().GetToken(ctx, tokenID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		if tok.Type != domain.TokenMembership {
			return ErrNotMembershipToken
		}

		app, err := getApp(ctx, tx, tok.AppID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, tx, app, caller); err != nil {
			return err
		}

		if err := tx.Tokens().SetLocked(ctx, tokenID, locked); err != nil {
			return err
		}
		return appendEvent(ctx, tx, domain.Event{
			AppID:   tok.AppID,
			Type:    domain.EventTokenLocked,
			Actor:   caller,
			TokenID: tokenID,
		})
	})
	if err != nil {
		return err
	}

	log.Debug("token lock updated",
		slog.Uint64("token_id", tokenID),
		slog.Bool("locked", locked),
	)
	return nil
}

func (s *AppService) requireAdmin(ctx context.Context, tx store.Tx, app domain.App, caller string) error {
	ok, err := isAuthorizedAdmin(ctx, tx, app, caller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAppAdmin
	}
	return nil
}
