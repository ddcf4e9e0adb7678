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
	ErrNotMember          = errors.New("caller is not a registered member")
	ErrNoInvitesLeft      = errors.New("invite budget exhausted")
	ErrAlreadyMember      = errors.New("identity is already a registered member")
	ErrNotInvitationToken = errors.New("token is not an invitation token")
	ErrEmptyBatch         = errors.New("batch must contain at least one recipient")
)

// InviteService mints invitation tokens and converts them into memberships.
// It is the only service that mints or burns tokens and the only writer of
// invite budgets apart from admin grants.
type InviteService struct {
	Store store.Store
}

// Invite mints a new invitation token owned by recipient and decrements the
// caller's invite budget by one. The recipient may already hold other
// invitations; invitations are ordinary transferable tokens, not a per-pair
// flag.
func (s *InviteService) Invite(ctx context.Context, caller, appID, recipient string) (domain.Token, error) {
	log := slogx.FromContext(ctx)

	if recipient == "" {
		return domain.Token{}, ErrNilIdentity
	}

	var tok domain.Token
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. App must exist and the caller must be a registered member.
		if _, err := getApp(ctx, tx, appID); err != nil {
			return err
		}
		registered, err := tx.Members().IsRegistered(ctx, appID, caller)
		if err != nil {
			return err
		}
		if !registered {
			log.Warn("invite attempted by non-member",
				slog.String("app_id", appID),
				slog.String("caller", caller),
			)
			return ErrNotMember
		}

		// 2. Budget check; the counter never goes negative.
		left, err := tx.Members().InvitesLeft(ctx, appID, caller)
		if err != nil {
			return err
		}
		if left < 1 {
			return ErrNoInvitesLeft
		}

		// 3. Mint the invitation to the recipient, tagged with the caller
		// as inviter.
		tok, err = mintToken(ctx, tx, appID, domain.TokenInvitation, caller, recipient)
		if err != nil {
			return err
		}

		// 4. Spend the invite.
		if err := tx.Members().SetInvitesLeft(ctx, appID, caller, left-1); err != nil {
			return err
		}

		return appendEvent(ctx, tx, domain.Event{
			AppID:   appID,
			Type:    domain.EventInviteSent,
			Actor:   caller,
			Subject: recipient,
			TokenID: tok.ID,
		})
	})
	if err != nil {
		return domain.Token{}, err
	}

	log.Info("invitation sent",
		slog.String("app_id", appID),
		slog.String("inviter", caller),
		slog.String("recipient", recipient),
		slog.Uint64("token_id", tok.ID),
	)
	return tok, nil
}

// BatchInvite mints one invitation per recipient and decrements the
// caller's budget by the batch size exactly once. The batch is atomic: one
// invalid recipient aborts the whole call with no tokens minted and the
// budget untouched.
func (s *InviteService) BatchInvite(ctx context.Context, caller, appID string, recipients []string) ([]domain.Token, error) {
	log := slogx.FromContext(ctx)

	if len(recipients) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, recipient := range recipients {
		if recipient == "" {
			return nil, ErrNilIdentity
		}
	}

	var tokens []domain.Token
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Same membership precondition as a single invite.
		if _, err := getApp(ctx, tx, appID); err != nil {
			return err
		}
		registered, err := tx.Members().IsRegistered(ctx, appID, caller)
		if err != nil {
			return err
		}
		if !registered {
			return ErrNotMember
		}

		// 2. The whole batch must fit the remaining budget.
		left, err := tx.Members().InvitesLeft(ctx, appID, caller)
		if err != nil {
			return err
		}
		if left < len(recipients) {
			log.Warn("batch invite exceeds budget",
				slog.String("app_id", appID),
				slog.String("caller", caller),
				slog.Int("batch_size", len(recipients)),
				slog.Int("invites_left", left),
			)
			return ErrNoInvitesLeft
		}

		// 3. Mint every invitation, then spend the budget once.
		for _, recipient := range recipients {
			tok, err := mintToken(ctx, tx, appID, domain.TokenInvitation, caller, recipient)
			if err != nil {
				return err
			}
			if err := appendEvent(ctx, tx, domain.Event{
				AppID:   appID,
				Type:    domain.EventInviteSent,
				Actor:   caller,
				Subject: recipient,
				TokenID: tok.ID,
			}); err != nil {
				return err
			}
			tokens = append(tokens, tok)
		}

		return tx.Members().SetInvitesLeft(ctx, appID, caller, left-len(recipients))
	})
	if err != nil {
		return nil, err
	}

	log.Info("batch invitations sent",
		slog.String("app_id", appID),
		slog.String("inviter", caller),
		slog.Int("count", len(tokens)),
	)
	return tokens, nil
}

// AcceptInvite consumes an invitation token owned by the caller: the
// invitation is burned and a membership token is minted in its place,
// carrying the same app and inviter. The caller becomes registered and
// their invite budget is set (not added) to the app's invitesPerNewUser.
func (s *InviteService) AcceptInvite(ctx context.Context, caller string, invitationTokenID uint64) (domain.Token, error) {
	log := slogx.FromContext(ctx)

	var membership domain.Token
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The token must exist and belong to the caller.
		owner, err := tx.Ledger().OwnerOf(ctx, invitationTokenID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		if owner != caller {
			log.Warn("accept attempted on another identity's invitation",
				slog.Uint64("token_id", invitationTokenID),
				slog.String("caller", caller),
			)
			return ErrNotTokenOwner
		}

		// 2. Only invitation-typed tokens can be accepted.
		invitation, err := tx.Tokens().GetToken(ctx, invitationTokenID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		if invitation.Type != domain.TokenInvitation {
			return ErrNotInvitationToken
		}

		// 3. Joining can only happen once per app.
		registered, err := tx.Members().IsRegistered(ctx, invitation.AppID, caller)
		if err != nil {
			return err
		}
		if registered {
			return ErrAlreadyMember
		}

		app, err := getApp(ctx, tx, invitation.AppID)
		if err != nil {
			return err
		}

		// 4. Burn the invitation; it is consumed exactly once.
		if err := tx.Ledger().Burn(ctx, invitationTokenID); err != nil {
			return err
		}
		if err := tx.Tokens().DeleteToken(ctx, invitationTokenID); err != nil {
			return err
		}

		// 5. Register the caller and mint the replacement membership,
		// carrying the inviter from the invitation.
		if err := tx.Members().Register(ctx, invitation.AppID, caller); err != nil {
			return err
		}
		membership, err = mintToken(ctx, tx, invitation.AppID, domain.TokenMembership, invitation.Inviter, caller)
		if err != nil {
			return err
		}

		// 6. Fresh invite budget; an assignment, so residual invites from
		// grants before joining don't accumulate.
		if err := tx.Members().SetInvitesLeft(ctx, invitation.AppID, caller, app.InvitesPerNewUser); err != nil {
			return err
		}

		return appendEvent(ctx, tx, domain.Event{
			AppID:   invitation.AppID,
			Type:    domain.EventInviteAccepted,
			Actor:   caller,
			Subject: invitation.Inviter,
			TokenID: membership.ID,
		})
	})
	if err != nil {
		return domain.Token{}, err
	}

	log.Info("invitation accepted",
		slog.String("app_id", membership.AppID),
		slog.String("member", caller),
		slog.String("inviter", membership.Inviter),
		slog.Uint64("invitation_token_id", invitationTokenID),
		slog.Uint64("membership_token_id", membership.ID),
	)
	return membership, nil
}

// mintToken allocates the next token id, writes the attribute record and
// the ownership record.
func mintToken(
	ctx context.Context,
	tx store.Tx,
	appID string,
	typ domain.TokenType,
	inviter string,
	owner string,
) (domain.Token, error) {
	id, err := tx.Tokens().NextID(ctx)
	if err != nil {
		return domain.Token{}, err
	}

	tok := domain.Token{
		ID:        id,
		AppID:     appID,
		Type:      typ,
		Inviter:   inviter,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.Tokens().CreateToken(ctx, tok); err != nil {
		return domain.Token{}, err
	}
	if err := tx.Ledger().Mint(ctx, owner, id); err != nil {
		return domain.Token{}, err
	}
	return tok, nil
}
