package gatesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Invite sends one invitation token to a recipient, spending one invite
// from the caller's budget.
func (c *SDKClient) Invite(ctx context.Context, appID, recipient string) (*TokenResponse, error) {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/invites", url.PathEscape(appID)),
		InviteRequest{Recipient: recipient},
	)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusCreated); err != nil {
		return nil, err
	}
	return &tok, nil
}

// BatchInvite sends one invitation token to each recipient. The whole
// batch succeeds or fails together; the caller's budget must cover every
// recipient.
func (c *SDKClient) BatchInvite(ctx context.Context, appID string, recipients []string) (*BatchInviteResponse, error) {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/invites/batch", url.PathEscape(appID)),
		BatchInviteRequest{Recipients: recipients},
	)
	if err != nil {
		return nil, err
	}

	var batch BatchInviteResponse
	if err := decodeJSON(resp, &batch, http.StatusCreated); err != nil {
		return nil, err
	}
	return &batch, nil
}

// AcceptInvite burns the invitation token and returns the membership
// token minted in its place. The caller must hold the invitation.
func (c *SDKClient) AcceptInvite(ctx context.Context, tokenID uint64) (*TokenResponse, error) {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/tokens/%d/accept", tokenID), nil,
	)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusCreated); err != nil {
		return nil, err
	}
	return &tok, nil
}
