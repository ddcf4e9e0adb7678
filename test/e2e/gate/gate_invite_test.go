package gate_test

import (
	"net/http"
	"testing"

	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/stretchr/testify/require"
)

// TestInviteLifecycle walks the whole membership flow over the wire:
// create an app, invite a user, accept the invite, check access and
// budgets, then pass the remaining invite along.
func TestInviteLifecycle(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	alice := sdkFor(t, baseURL, "alice")
	bob := sdkFor(t, baseURL, "bob")

	// Alice creates an app with 5 invites for herself, 2 per new user.
	app, err := alice.CreateApp(ctx, gatesdk.CreateAppRequest{
		AppID:             "tenant-t",
		InitialInvites:    5,
		InvitesPerNewUser: 2,
	})
	require.NoError(t, err)
	require.Equal(t, "alice", app.Owner)
	require.True(t, app.Transferrable)

	// Alice invites Bob.
	inv, err := alice.Invite(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.Equal(t, "invitation", inv.Type)
	require.Equal(t, "bob", inv.Owner)
	require.Equal(t, "alice", inv.Inviter)

	left, err := alice.GetInvitesLeft(ctx, "tenant-t", "alice")
	require.NoError(t, err)
	require.Equal(t, 4, left)

	// Bob sees the pending invitation but has no access yet.
	pending, err := bob.GetInvitations(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.True(t, pending.Invited)
	require.Equal(t, []uint64{inv.TokenID}, pending.TokenIDs)

	access, err := bob.HasAccess(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.False(t, access)

	// Bob accepts: the invitation burns, a membership mints.
	membership, err := bob.AcceptInvite(ctx, inv.TokenID)
	require.NoError(t, err)
	require.Equal(t, "membership", membership.Type)
	require.Equal(t, "alice", membership.Inviter)
	require.NotEqual(t, inv.TokenID, membership.TokenID)

	access, err = bob.HasAccess(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.True(t, access)

	left, err = bob.GetInvitesLeft(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.Equal(t, 2, left)

	// The burned invitation is gone.
	_, err = bob.GetToken(ctx, inv.TokenID)
	requireAPIError(t, err, http.StatusNotFound, gatesdk.ErrorCodeNotFound)

	// Bob passes one of his invites to Carol.
	_, err = bob.Invite(ctx, "tenant-t", "carol")
	require.NoError(t, err)

	left, err = bob.GetInvitesLeft(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.Equal(t, 1, left)

	// The event log recorded the whole story.
	events, err := alice.GetEvents(ctx, "tenant-t", 0)
	require.NoError(t, err)

	var types []string
	for _, e := range events.Events {
		types = append(types, e.Type)
	}
	require.Contains(t, types, "app.created")
	require.Contains(t, types, "invite.sent")
	require.Contains(t, types, "invite.accepted")
}

func TestBatchInvite(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	alice := sdkFor(t, baseURL, "alice")

	_, err := alice.CreateApp(ctx, gatesdk.CreateAppRequest{
		AppID:             "tenant-t",
		InitialInvites:    3,
		InvitesPerNewUser: 0,
	})
	require.NoError(t, err)

	// Batch larger than the budget is rejected atomically.
	_, err = alice.BatchInvite(ctx, "tenant-t", []string{"u1", "u2", "u3", "u4"})
	requireAPIError(t, err, http.StatusConflict, gatesdk.ErrorCodeInsufficientInvites)

	left, err := alice.GetInvitesLeft(ctx, "tenant-t", "alice")
	require.NoError(t, err)
	require.Equal(t, 3, left)

	// A batch within budget mints one token per recipient, in order.
	batch, err := alice.BatchInvite(ctx, "tenant-t", []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	require.Len(t, batch.Tokens, 3)
	for i, recipient := range []string{"u1", "u2", "u3"} {
		require.Equal(t, recipient, batch.Tokens[i].Owner)
		require.Equal(t, "invitation", batch.Tokens[i].Type)
	}

	left, err = alice.GetInvitesLeft(ctx, "tenant-t", "alice")
	require.NoError(t, err)
	require.Equal(t, 0, left)
}

func TestInviteErrors(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	alice := sdkFor(t, baseURL, "alice")
	mallory := sdkFor(t, baseURL, "mallory")

	_, err := alice.CreateApp(ctx, gatesdk.CreateAppRequest{
		AppID:             "tenant-t",
		InitialInvites:    1,
		InvitesPerNewUser: 1,
	})
	require.NoError(t, err)

	t.Run("duplicate app id", func(t *testing.T) {
		_, err := mallory.CreateApp(ctx, gatesdk.CreateAppRequest{AppID: "tenant-t"})
		requireAPIError(t, err, http.StatusConflict, gatesdk.ErrorCodeConflict)
	})

	t.Run("non-member cannot invite", func(t *testing.T) {
		_, err := mallory.Invite(ctx, "tenant-t", "friend")
		requireAPIError(t, err, http.StatusForbidden, gatesdk.ErrorCodeForbidden)
	})

	t.Run("unknown app", func(t *testing.T) {
		_, err := alice.Invite(ctx, "tenant-x", "bob")
		requireAPIError(t, err, http.StatusNotFound, gatesdk.ErrorCodeNotFound)
	})

	t.Run("unauthenticated request", func(t *testing.T) {
		anon := sdkFor(t, baseURL, "anon")
		anon.Token = ""

		_, err := anon.Invite(ctx, "tenant-t", "bob")
		requireAPIError(t, err, http.StatusUnauthorized, "invalid_token")
	})

	t.Run("accepting someone else's invite", func(t *testing.T) {
		inv, err := alice.Invite(ctx, "tenant-t", "bob")
		require.NoError(t, err)

		_, err = mallory.AcceptInvite(ctx, inv.TokenID)
		requireAPIError(t, err, http.StatusForbidden, gatesdk.ErrorCodeForbidden)
	})
}
