package gate_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/stretchr/testify/require"
)

func TestAdminAndOwnershipFlow(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	alice := sdkFor(t, baseURL, "alice")
	adam := sdkFor(t, baseURL, "adam")
	mallory := sdkFor(t, baseURL, "mallory")

	_, err := alice.CreateApp(ctx, gatesdk.CreateAppRequest{
		AppID:             "tenant-t",
		InitialInvites:    5,
		InvitesPerNewUser: 2,
	})
	require.NoError(t, err)

	// Only the owner manages the admin set.
	err = mallory.AddAdmin(ctx, "tenant-t", "mallory")
	requireAPIError(t, err, http.StatusForbidden, gatesdk.ErrorCodeForbidden)

	require.NoError(t, alice.AddAdmin(ctx, "tenant-t", "adam"))

	app, err := alice.GetApp(ctx, "tenant-t")
	require.NoError(t, err)
	require.Contains(t, app.Admins, "adam")

	// Admins may adjust policy knobs.
	require.NoError(t, adam.SetTransferrable(ctx, "tenant-t", false))
	require.NoError(t, adam.SetInvitesPerNewUser(ctx, "tenant-t", 7))
	require.NoError(t, adam.GrantInvites(ctx, "tenant-t", "alice", 3))
	require.NoError(t, adam.SetBaseURI(ctx, "tenant-t", "https://example.com/t/"))

	app, err = alice.GetApp(ctx, "tenant-t")
	require.NoError(t, err)
	require.False(t, app.Transferrable)
	require.Equal(t, 7, app.InvitesPerNewUser)
	require.Equal(t, "https://example.com/t/", app.BaseURI)

	left, err := alice.GetInvitesLeft(ctx, "tenant-t", "alice")
	require.NoError(t, err)
	require.Equal(t, 8, left)

	// Admins are not owners.
	err = adam.TransferOwnership(ctx, "tenant-t", "adam")
	requireAPIError(t, err, http.StatusForbidden, gatesdk.ErrorCodeForbidden)

	// Ownership handover: Adam becomes owner, Alice keeps admin rights.
	require.NoError(t, alice.TransferOwnership(ctx, "tenant-t", "adam"))

	app, err = alice.GetApp(ctx, "tenant-t")
	require.NoError(t, err)
	require.Equal(t, "adam", app.Owner)
	require.Contains(t, app.Admins, "alice")

	require.NoError(t, alice.SetTransferrable(ctx, "tenant-t", true))

	// The new owner cannot be removed from the admin set.
	err = adam.RemoveAdmin(ctx, "tenant-t", "adam")
	requireAPIError(t, err, http.StatusForbidden, gatesdk.ErrorCodeForbidden)

	require.NoError(t, adam.RemoveAdmin(ctx, "tenant-t", "alice"))
	err = alice.SetTransferrable(ctx, "tenant-t", true)
	requireAPIError(t, err, http.StatusForbidden, gatesdk.ErrorCodeForbidden)
}

func TestTransferAndLockFlow(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	alice := sdkFor(t, baseURL, "alice")
	bob := sdkFor(t, baseURL, "bob")
	carol := sdkFor(t, baseURL, "carol")

	_, err := alice.CreateApp(ctx, gatesdk.CreateAppRequest{
		AppID:             "tenant-t",
		InitialInvites:    5,
		InvitesPerNewUser: 2,
	})
	require.NoError(t, err)

	inv, err := alice.Invite(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	membership, err := bob.AcceptInvite(ctx, inv.TokenID)
	require.NoError(t, err)

	// Lock blocks membership transfer until cleared.
	require.NoError(t, alice.SetTokenLocked(ctx, membership.TokenID, true))

	err = bob.Transfer(ctx, membership.TokenID, "carol")
	requireAPIError(t, err, http.StatusConflict, gatesdk.ErrorCodePolicyViolation)

	require.NoError(t, alice.SetTokenLocked(ctx, membership.TokenID, false))
	require.NoError(t, bob.Transfer(ctx, membership.TokenID, "carol"))

	// Receiving the membership registered Carol; Bob stays registered.
	for _, identity := range []string{"bob", "carol"} {
		access, err := carol.HasAccess(ctx, "tenant-t", identity)
		require.NoError(t, err)
		require.True(t, access, identity)
	}

	tok, err := carol.GetToken(ctx, membership.TokenID)
	require.NoError(t, err)
	require.Equal(t, "carol", tok.Owner)

	// With transfers disabled, memberships stop moving but invitations don't.
	require.NoError(t, alice.SetTransferrable(ctx, "tenant-t", false))

	err = carol.Transfer(ctx, membership.TokenID, "dave")
	requireAPIError(t, err, http.StatusConflict, gatesdk.ErrorCodePolicyViolation)

	inv2, err := alice.Invite(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.NoError(t, bob.Transfer(ctx, inv2.TokenID, "dave"))
}

func TestTokenURIComposition(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	alice := sdkFor(t, baseURL, "alice")

	_, err := alice.CreateApp(ctx, gatesdk.CreateAppRequest{
		AppID:             "tenant-t",
		InitialInvites:    1,
		InvitesPerNewUser: 0,
	})
	require.NoError(t, err)

	inv, err := alice.Invite(ctx, "tenant-t", "bob")
	require.NoError(t, err)

	// Default prefix before a base URI is configured.
	uri, err := alice.GetTokenURI(ctx, inv.TokenID)
	require.NoError(t, err)
	require.Contains(t, uri, "invitation/")

	require.NoError(t, alice.SetBaseURI(ctx, "tenant-t", "https://example.com/t/"))

	uri, err = alice.GetTokenURI(ctx, inv.TokenID)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/t/invitation/"+strconv.FormatUint(inv.TokenID, 10), uri)
}
