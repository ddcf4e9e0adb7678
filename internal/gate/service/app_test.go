package service

import (
	"context"
	"testing"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateApp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, _, _, queries := newServices(st)

	t.Run("creates owner as admin and member", func(t *testing.T) {
		app, err := apps.CreateApp(ctx, "alice", "tenant-t", 5, 2)
		require.NoError(t, err)
		require.Equal(t, "alice", app.Owner)
		require.True(t, app.Transferrable)

		admins, err := apps.Admins(ctx, "tenant-t")
		require.NoError(t, err)
		require.Contains(t, admins, "alice")

		has, err := queries.HasAccess(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.True(t, has)

		left, err := queries.InvitesLeft(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.Equal(t, 5, left)
	})

	t.Run("mints creator membership token when enabled", func(t *testing.T) {
		ids, err := st.Ledger().TokensByOwnerAppType(ctx, "alice", "tenant-t", domain.TokenMembership)
		require.NoError(t, err)
		require.Len(t, ids, 1)
	})

	t.Run("registration only when minting disabled", func(t *testing.T) {
		plain := &AppService{Store: st, MintCreatorToken: false}
		_, err := plain.CreateApp(ctx, "bob", "tenant-u", 1, 1)
		require.NoError(t, err)

		ids, err := st.Ledger().TokensByOwnerAppType(ctx, "bob", "tenant-u", domain.TokenMembership)
		require.NoError(t, err)
		require.Empty(t, ids)

		has, err := queries.HasAccess(ctx, "tenant-u", "bob")
		require.NoError(t, err)
		require.True(t, has) // registered directly
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		_, err := apps.CreateApp(ctx, "mallory", "tenant-t", 5, 2)
		require.ErrorIs(t, err, ErrAppExists)

		// The original record is untouched.
		app, err := apps.GetApp(ctx, "tenant-t")
		require.NoError(t, err)
		require.Equal(t, "alice", app.Owner)
	})

	t.Run("validates bounds", func(t *testing.T) {
		_, err := apps.CreateApp(ctx, "alice", "tenant-v", domain.MaxInitialInvites+1, 2)
		require.ErrorIs(t, err, ErrInitialInvitesTooLarge)

		_, err = apps.CreateApp(ctx, "alice", "tenant-v", 5, domain.MaxInvitesPerNewUser+1)
		require.ErrorIs(t, err, ErrInvitesPerUserTooLarge)

		_, err = apps.CreateApp(ctx, "alice", "", 5, 2)
		require.ErrorIs(t, err, ErrInvalidAppID)

		_, err = apps.CreateApp(ctx, "", "tenant-v", 5, 2)
		require.ErrorIs(t, err, ErrNilIdentity)
	})
}

func TestAdminGatedSettings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, authority, _, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)
	require.NoError(t, authority.AddAdmin(ctx, "alice", "tenant-t", "adam"))

	t.Run("admin may flip transferrable", func(t *testing.T) {
		require.NoError(t, apps.SetTransferrable(ctx, "adam", "tenant-t", false))

		app, err := apps.GetApp(ctx, "tenant-t")
		require.NoError(t, err)
		require.False(t, app.Transferrable)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		require.ErrorIs(t, apps.SetTransferrable(ctx, "mallory", "tenant-t", true), ErrNotAppAdmin)
		require.ErrorIs(t, apps.SetBaseURI(ctx, "mallory", "tenant-t", "x"), ErrNotAppAdmin)
		require.ErrorIs(t, apps.GrantInvites(ctx, "mallory", "tenant-t", "bob", 1), ErrNotAppAdmin)
		require.ErrorIs(t, apps.SetInvitesPerNewUser(ctx, "mallory", "tenant-t", 1), ErrNotAppAdmin)
	})

	t.Run("invites per new user is bounded", func(t *testing.T) {
		err := apps.SetInvitesPerNewUser(ctx, "alice", "tenant-t", domain.MaxInvitesPerNewUser+1)
		require.ErrorIs(t, err, ErrInvitesPerUserTooLarge)

		require.NoError(t, apps.SetInvitesPerNewUser(ctx, "alice", "tenant-t", 7))
		app, err := apps.GetApp(ctx, "tenant-t")
		require.NoError(t, err)
		require.Equal(t, 7, app.InvitesPerNewUser)
	})

	t.Run("grants accumulate", func(t *testing.T) {
		require.NoError(t, apps.GrantInvites(ctx, "alice", "tenant-t", "bob", 3))
		require.NoError(t, apps.GrantInvites(ctx, "adam", "tenant-t", "bob", 2))

		left, err := st.Members().InvitesLeft(ctx, "tenant-t", "bob")
		require.NoError(t, err)
		require.Equal(t, 5, left)

		require.ErrorIs(t, apps.GrantInvites(ctx, "alice", "tenant-t", "bob", 0), ErrInvalidGrant)
	})

	t.Run("base URI", func(t *testing.T) {
		require.NoError(t, apps.SetBaseURI(ctx, "alice", "tenant-t", "https://example.com/t/"))
		app, err := apps.GetApp(ctx, "tenant-t")
		require.NoError(t, err)
		require.Equal(t, "https://example.com/t/", app.BaseURI)
	})
}

func TestSetTokenLocked(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	inv, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
	require.NoError(t, err)
	membership, err := invites.AcceptInvite(ctx, "bob", inv.ID)
	require.NoError(t, err)

	t.Run("locks a membership token", func(t *testing.T) {
		require.NoError(t, apps.SetTokenLocked(ctx, "alice", membership.ID, true))

		tok, err := st.Tokens().GetToken(ctx, membership.ID)
		require.NoError(t, err)
		require.True(t, tok.Locked)
	})

	t.Run("rejects invitation tokens", func(t *testing.T) {
		inv2, err := invites.Invite(ctx, "alice", "tenant-t", "carol")
		require.NoError(t, err)

		err = apps.SetTokenLocked(ctx, "alice", inv2.ID, true)
		require.ErrorIs(t, err, ErrNotMembershipToken)
	})

	t.Run("admin-gated on the token's app", func(t *testing.T) {
		err := apps.SetTokenLocked(ctx, "mallory", membership.ID, false)
		require.ErrorIs(t, err, ErrNotAppAdmin)
	})

	t.Run("unknown token", func(t *testing.T) {
		err := apps.SetTokenLocked(ctx, "alice", 99999, true)
		require.ErrorIs(t, err, ErrTokenNotFound)
	})
}
