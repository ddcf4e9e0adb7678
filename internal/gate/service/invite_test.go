package service

import (
	"context"
	"testing"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/stretchr/testify/require"
)

func TestInviteLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, transfers, queries := newServices(st)

	// A creates tenant T with 5 initial invites, 2 per new user.
	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	// A invites B: B holds one invitation, A's budget drops to 4.
	inviteTok, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
	require.NoError(t, err)
	require.Equal(t, domain.TokenInvitation, inviteTok.Type)
	require.Equal(t, "alice", inviteTok.Inviter)

	left, err := queries.InvitesLeft(ctx, "tenant-t", "alice")
	require.NoError(t, err)
	require.Equal(t, 4, left)

	hasInv, err := queries.HasInvitation(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.True(t, hasInv)

	// B accepts: B is registered with a fresh budget of 2, holds a
	// membership, and the invitation is gone.
	membership, err := invites.AcceptInvite(ctx, "bob", inviteTok.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TokenMembership, membership.Type)
	require.Equal(t, "alice", membership.Inviter)

	_, err = st.Ledger().OwnerOf(ctx, inviteTok.ID)
	require.Error(t, err) // burned

	left, err = queries.InvitesLeft(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.Equal(t, 2, left)

	// B invites C; C re-gifts the invitation to D; D accepts.
	invC, err := invites.Invite(ctx, "bob", "tenant-t", "carol")
	require.NoError(t, err)

	require.NoError(t, transfers.Transfer(ctx, "carol", "carol", "dave", invC.ID))

	// The transfer registered nobody: invitations never touch membership.
	hasAccess, err := queries.HasAccess(ctx, "tenant-t", "carol")
	require.NoError(t, err)
	require.False(t, hasAccess)
	hasAccess, err = queries.HasAccess(ctx, "tenant-t", "dave")
	require.NoError(t, err)
	require.False(t, hasAccess)

	_, err = invites.AcceptInvite(ctx, "dave", invC.ID)
	require.NoError(t, err)

	// Final state: A, B, D have access; C does not.
	for identity, want := range map[string]bool{
		"alice": true,
		"bob":   true,
		"dave":  true,
		"carol": false,
	} {
		got, err := queries.HasAccess(ctx, "tenant-t", identity)
		require.NoError(t, err)
		require.Equal(t, want, got, identity)
	}

	left, err = queries.InvitesLeft(ctx, "tenant-t", "dave")
	require.NoError(t, err)
	require.Equal(t, 2, left)
	left, err = queries.InvitesLeft(ctx, "tenant-t", "carol")
	require.NoError(t, err)
	require.Equal(t, 0, left)
}

func TestInvitePreconditions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 1, 2)

	t.Run("unknown app", func(t *testing.T) {
		_, err := invites.Invite(ctx, "alice", "no-such-app", "bob")
		require.ErrorIs(t, err, ErrAppNotFound)
	})

	t.Run("empty recipient", func(t *testing.T) {
		_, err := invites.Invite(ctx, "alice", "tenant-t", "")
		require.ErrorIs(t, err, ErrNilIdentity)
	})

	t.Run("non-member cannot invite", func(t *testing.T) {
		_, err := invites.Invite(ctx, "mallory", "tenant-t", "bob")
		require.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("budget exhausted fails without mutation", func(t *testing.T) {
		_, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
		require.NoError(t, err)

		_, err = invites.Invite(ctx, "alice", "tenant-t", "carol")
		require.ErrorIs(t, err, ErrNoInvitesLeft)

		left, err := st.Members().InvitesLeft(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.Equal(t, 0, left) // never negative
	})

	t.Run("same recipient may hold several invitations", func(t *testing.T) {
		apps2 := &AppService{Store: st}
		_, err := apps2.CreateApp(ctx, "oscar", "tenant-u", 3, 1)
		require.NoError(t, err)

		first, err := invites.Invite(ctx, "oscar", "tenant-u", "peggy")
		require.NoError(t, err)
		second, err := invites.Invite(ctx, "oscar", "tenant-u", "peggy")
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		ids, err := st.Ledger().TokensByOwnerAppType(ctx, "peggy", "tenant-u", domain.TokenInvitation)
		require.NoError(t, err)
		require.Len(t, ids, 2)
	})
}

func TestBatchInviteAtomicity(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, _, queries := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 10, 2)

	t.Run("invalid recipient aborts the whole batch", func(t *testing.T) {
		_, err := invites.BatchInvite(ctx, "alice", "tenant-t", []string{"bob", "", "carol"})
		require.ErrorIs(t, err, ErrNilIdentity)

		left, err := queries.InvitesLeft(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.Equal(t, 10, left)

		for _, identity := range []string{"bob", "carol"} {
			has, err := queries.HasInvitation(ctx, "tenant-t", identity)
			require.NoError(t, err)
			require.False(t, has)
		}
	})

	t.Run("batch larger than budget mints nothing", func(t *testing.T) {
		recipients := make([]string, 11)
		for i := range recipients {
			recipients[i] = "guest"
		}
		_, err := invites.BatchInvite(ctx, "alice", "tenant-t", recipients)
		require.ErrorIs(t, err, ErrNoInvitesLeft)

		left, err := queries.InvitesLeft(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.Equal(t, 10, left)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		_, err := invites.BatchInvite(ctx, "alice", "tenant-t", nil)
		require.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("budget decremented once for the whole batch", func(t *testing.T) {
		tokens, err := invites.BatchInvite(ctx, "alice", "tenant-t", []string{"bob", "carol", "dave"})
		require.NoError(t, err)
		require.Len(t, tokens, 3)

		left, err := queries.InvitesLeft(ctx, "tenant-t", "alice")
		require.NoError(t, err)
		require.Equal(t, 7, left)
	})
}

func TestAcceptInvitePreconditions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	t.Run("never-minted id", func(t *testing.T) {
		_, err := invites.AcceptInvite(ctx, "bob", 424242)
		require.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("someone else's invitation", func(t *testing.T) {
		tok, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
		require.NoError(t, err)

		_, err = invites.AcceptInvite(ctx, "mallory", tok.ID)
		require.ErrorIs(t, err, ErrNotTokenOwner)
	})

	t.Run("membership token cannot be accepted", func(t *testing.T) {
		// alice holds the creator membership token (id from the ledger).
		ids, err := st.Ledger().TokensByOwnerAppType(ctx, "alice", "tenant-t", domain.TokenMembership)
		require.NoError(t, err)
		require.NotEmpty(t, ids)

		_, err = invites.AcceptInvite(ctx, "alice", ids[0])
		require.ErrorIs(t, err, ErrNotInvitationToken)
	})

	t.Run("double registration rejected", func(t *testing.T) {
		tok, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
		require.NoError(t, err)
		_, err = invites.AcceptInvite(ctx, "bob", tok.ID)
		require.NoError(t, err)

		// A second invitation to the now-registered bob can be minted but
		// not accepted.
		tok2, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
		require.NoError(t, err)
		_, err = invites.AcceptInvite(ctx, "bob", tok2.ID)
		require.ErrorIs(t, err, ErrAlreadyMember)

		// The failed accept burned nothing.
		owner, err := st.Ledger().OwnerOf(ctx, tok2.ID)
		require.NoError(t, err)
		require.Equal(t, "bob", owner)
	})

	t.Run("accept is single-use", func(t *testing.T) {
		tok, err := invites.Invite(ctx, "alice", "tenant-t", "carol")
		require.NoError(t, err)
		_, err = invites.AcceptInvite(ctx, "carol", tok.ID)
		require.NoError(t, err)

		_, err = invites.AcceptInvite(ctx, "carol", tok.ID)
		require.ErrorIs(t, err, ErrTokenNotFound)
	})
}

func TestAcceptOverwritesResidualBudget(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, _, queries := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	// An admin grant before joining leaves a residual budget; acceptance
	// overwrites it rather than adding to it.
	require.NoError(t, apps.GrantInvites(ctx, "alice", "tenant-t", "bob", 50))

	tok, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
	require.NoError(t, err)
	_, err = invites.AcceptInvite(ctx, "bob", tok.ID)
	require.NoError(t, err)

	left, err := queries.InvitesLeft(ctx, "tenant-t", "bob")
	require.NoError(t, err)
	require.Equal(t, 2, left)
}

func TestTokenIDsAreMonotonicAndNeverReused(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	apps, _, invites, _, _ := newServices(st)

	mustCreateApp(t, apps, "alice", "tenant-t", 5, 2)

	tok, err := invites.Invite(ctx, "alice", "tenant-t", "bob")
	require.NoError(t, err)

	membership, err := invites.AcceptInvite(ctx, "bob", tok.ID)
	require.NoError(t, err)

	// The membership minted by the accept has a fresh id even though the
	// invitation's id just became free.
	require.Greater(t, membership.ID, tok.ID)

	next, err := invites.Invite(ctx, "bob", "tenant-t", "carol")
	require.NoError(t, err)
	require.Greater(t, next.ID, membership.ID)
}
