package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransferOwnership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, authority, _, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	t.Run("only the owner may transfer", func(t *testing.T) {
		require.ErrorIs(t, authority.TransferOwnership(ctx, "mallory", "tenant-t", "mallory"), ErrNotAppOwner)
	})

	t.Run("new owner becomes admin and old owner stays admin", func(t *testing.T) {
		require.NoError(t, authority.TransferOwnership(ctx, "alice", "tenant-t", "bob"))

		app, err := apps.GetApp(ctx, "tenant-t")
		require.NoError(t, err)
		require.Equal(t, "bob", app.Owner)

		admins, err := apps.Admins(ctx, "tenant-t")
		require.NoError(t, err)
		require.Contains(t, admins, "bob")
		require.Contains(t, admins, "alice")
	})

	t.Run("old owner lost owner-only rights", func(t *testing.T) {
		require.ErrorIs(t, authority.TransferOwnership(ctx, "alice", "tenant-t", "alice"), ErrNotAppOwner)
	})

	t.Run("validates input", func(t *testing.T) {
		require.ErrorIs(t, authority.TransferOwnership(ctx, "bob", "tenant-t", ""), ErrNilIdentity)
		require.ErrorIs(t, authority.TransferOwnership(ctx, "bob", "tenant-x", "carol"), ErrAppNotFound)
	})
}

func TestAdminSet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, authority, _, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	t.Run("owner adds and removes admins", func(t *testing.T) {
		require.NoError(t, authority.AddAdmin(ctx, "alice", "tenant-t", "adam"))

		ok, err := authority.IsAuthorizedAdmin(ctx, "tenant-t", "adam")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, authority.RemoveAdmin(ctx, "alice", "tenant-t", "adam"))

		ok, err = authority.IsAuthorizedAdmin(ctx, "tenant-t", "adam")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("admins cannot manage the admin set", func(t *testing.T) {
		require.NoError(t, authority.AddAdmin(ctx, "alice", "tenant-t", "adam"))

		require.ErrorIs(t, authority.AddAdmin(ctx, "adam", "tenant-t", "eve"), ErrNotAppOwner)
		require.ErrorIs(t, authority.RemoveAdmin(ctx, "adam", "tenant-t", "adam"), ErrNotAppOwner)
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		require.ErrorIs(t, authority.RemoveAdmin(ctx, "alice", "tenant-t", "alice"), ErrCannotRemoveOwner)
	})

	t.Run("the owner is always authorized", func(t *testing.T) {
		ok, err := authority.IsAuthorizedAdmin(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.True(t, ok)
	})
}
