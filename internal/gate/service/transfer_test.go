package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransferInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, transfers, queries := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	// Invitations move freely even when membership transfers are off.
	require.NoError(t, apps.SetTransferrable(ctx, "alice", "tenant-t", false))

	inv, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
	require.NoError(t, err)

	t.Run("only the holder may send it onward", func(t *testing.T) {
		err := transfers.Transfer(ctx, "alice", "alice", "carol", inv.ID)
		require.ErrorIs(t, err, ErrNotTokenOwner)

		err = transfers.Transfer(ctx, "carol", "bob", "carol", inv.ID)
		require.ErrorIs(t, err, ErrNotTokenOwner)
	})

	t.Run("moves regardless of app policy", func(t *testing.T) {
		require.NoError(t, transfers.Transfer(ctx, "bob", "bob", "carol", inv.ID))

		has, err := queries.HasInvitation(ctx, "tenant-t", "carol")
		require.NoError(t, err)
		require.True(t, has)

		has, err = queries.HasInvitation(ctx, "tenant-t", "bob")
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("does not register the recipient", func(t *testing.T) {
		has, err := queries.HasAccess(ctx, "tenant-t", "carol")
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("rejects empty recipient and unknown token", func(t *testing.T) {
		require.ErrorIs(t, transfers.Transfer(ctx, "carol", "carol", "", inv.ID), ErrNilIdentity)
		require.ErrorIs(t, transfers.Transfer(ctx, "carol", "carol", "dave", 99999), ErrTokenNotFound)
	})
}

func TestTransferMembership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, transfers, queries := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	inv, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
	require.NoError(t, err)
	membership, err := invites.AcceptInvite(ctx, "bob", inv.ID)
	require.NoError(t, err)

	t.Run("blocked when the app disallows transfers", func(t *testing.T) {
		require.NoError(t, apps.SetTransferrable(ctx, "alice", "tenant-t", false))

		err := transfers.Transfer(ctx, "bob", "bob", "carol", membership.ID)
		require.ErrorIs(t, err, ErrNotTransferrable)
	})

	t.Run("blocked while locked", func(t *testing.T) {
		require.NoError(t, apps.SetTransferrable(ctx, "alice", "tenant-t", true))
		require.NoError(t, apps.SetTokenLocked(ctx, "alice", membership.ID, true))

		err := transfers.Transfer(ctx, "bob", "bob", "carol", membership.ID)
		require.ErrorIs(t, err, ErrTokenLocked)
	})

	t.Run("registers the recipient", func(t *testing.T) {
		require.NoError(t, apps.SetTokenLocked(ctx, "alice", membership.ID, false))
		require.NoError(t, transfers.Transfer(ctx, "bob", "bob", "carol", membership.ID))

		has, err := queries.HasAccess(ctx, "tenant-t", "carol")
		require.NoError(t, err)
		require.True(t, has)
	})

	t.Run("sender registration is sticky", func(t *testing.T) {
		has, err := queries.HasAccess(ctx, "tenant-t", "bob")
		require.NoError(t, err)
		require.True(t, has)
	})
}
