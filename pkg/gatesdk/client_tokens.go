package gatesdk

import (
	"context"
	"fmt"
	"net/http"
)

// Transfer moves a token the caller holds to a new owner. Invitations
// move freely; memberships only when the app allows transfers and the
// token isn't locked.
func (c *SDKClient) Transfer(ctx context.Context, tokenID uint64, to string) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/tokens/%d/transfer", tokenID),
		TransferRequest{To: to},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetTokenLocked sets or clears the transfer lock on a membership
// token. Admin-only on the token's app.
func (c *SDKClient) SetTokenLocked(ctx context.Context, tokenID uint64, locked bool) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/tokens/%d/lock", tokenID),
		LockRequest{Locked: locked},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetToken fetches a token's attributes and current holder.
func (c *SDKClient) GetToken(ctx context.Context, tokenID uint64) (*TokenResponse, error) {
	resp, err := c.doGet(ctx, fmt.Sprintf("/v1/tokens/%d", tokenID))
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// GetTokenURI fetches the metadata URI for a token.
func (c *SDKClient) GetTokenURI(ctx context.Context, tokenID uint64) (string, error) {
	resp, err := c.doGet(ctx, fmt.Sprintf("/v1/tokens/%d/uri", tokenID))
	if err != nil {
		return "", err
	}

	var out TokenURIResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.URI, nil
}
