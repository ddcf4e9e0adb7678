package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/store"
)

// DefaultURIPrefix is used by TokenURI when the app has no base URI set.
const DefaultURIPrefix = "https://meta.credgate.dev/"

// QueryService answers read-only composite questions over the ledger, the
// token attributes and the membership sets.
type QueryService struct {
	Store store.Store

	// DefaultBaseURI overrides DefaultURIPrefix as the fallback for apps
	// without a base URI of their own. Empty means use the default.
	DefaultBaseURI string
}

// HasAccess reports whether identity is a member of the app: either
// registered directly, or currently holding a membership token for it. The
// registered set is a sticky superset (transfer-away never clears it), so
// the token path only matters for holders who acquired a membership by
// transfer before any registration existed for them; both paths are kept.
func (s *QueryService) HasAccess(ctx context.Context, appID, identity string) (bool, error) {
	registered, err := s.Store.Members().IsRegistered(ctx, appID, identity)
	if err != nil {
		return false, err
	}
	if registered {
		return true, nil
	}

	ids, err := s.Store.Ledger().TokensByOwnerAppType(ctx, identity, appID, domain.TokenMembership)
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// HasInvitation reports whether identity currently holds at least one
// invitation token for the app.
func (s *QueryService) HasInvitation(ctx context.Context, appID, identity string) (bool, error) {
	ids, err := s.Store.Ledger().TokensByOwnerAppType(ctx, identity, appID, domain.TokenInvitation)
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// InvitationTokens returns the ids of all invitation tokens identity holds
// for the app, ascending.
func (s *QueryService) InvitationTokens(ctx context.Context, appID, identity string) ([]uint64, error) {
	return s.Store.Ledger().TokensByOwnerAppType(ctx, identity, appID, domain.TokenInvitation)
}

// GetToken returns a token's attributes and current owner.
func (s *QueryService) GetToken(ctx context.Context, tokenID uint64) (domain.Token, string, error) {
	tok, err := s.Store.Tokens().GetToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Token{}, "", ErrTokenNotFound
		}
		return domain.Token{}, "", err
	}
	owner, err := s.Store.Ledger().OwnerOf(ctx, tokenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Token{}, "", ErrTokenNotFound
		}
		return domain.Token{}, "", err
	}
	return tok, owner, nil
}

// TokenURI composes the metadata URI for a token: the app's base URI (or
// the default prefix when unset), the credential type tag and the id.
func (s *QueryService) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	tok, err := s.Store.Tokens().GetToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		return "", err
	}

	app, err := s.Store.Apps().GetApp(ctx, tok.AppID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAppNotFound
		}
		return "", err
	}

	base := app.BaseURI
	if base == "" {
		base = s.DefaultBaseURI
	}
	if base == "" {
		base = DefaultURIPrefix
	}
	return fmt.Sprintf("%s%s/%d", base, tok.Type, tok.ID), nil
}

// Events returns the app's event log, oldest first.
func (s *QueryService) Events(ctx context.Context, appID string, limit int) ([]domain.Event, error) {
	if _, err := s.Store.Apps().GetApp(ctx, appID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAppNotFound
		}
		return nil, err
	}
	return s.Store.Events().ListByApp(ctx, appID, limit)
}

// InvitesLeft returns the remaining invite budget for an identity.
func (s *QueryService) InvitesLeft(ctx context.Context, appID, identity string) (int, error) {
	if _, err := s.Store.Apps().GetApp(ctx, appID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrAppNotFound
		}
		return 0, err
	}
	return s.Store.Members().InvitesLeft(ctx, appID, identity)
}

// Balance returns the number of tokens identity holds across all apps.
func (s *QueryService) Balance(ctx context.Context, identity string) (int, error) {
	return s.Store.Ledger().BalanceOf(ctx, identity)
}
