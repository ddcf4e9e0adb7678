package gatesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// HasAccess reports whether an identity is a registered member of an app.
func (c *SDKClient) HasAccess(ctx context.Context, appID, identity string) (bool, error) {
	resp, err := c.doGet(ctx,
		fmt.Sprintf("/v1/apps/%s/access/%s", url.PathEscape(appID), url.PathEscape(identity)))
	if err != nil {
		return false, err
	}

	var out AccessResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Access, nil
}

// GetInvitations lists the invitation tokens an identity holds for an app.
func (c *SDKClient) GetInvitations(ctx context.Context, appID, identity string) (*InvitationsResponse, error) {
	resp, err := c.doGet(ctx,
		fmt.Sprintf("/v1/apps/%s/invitations/%s", url.PathEscape(appID), url.PathEscape(identity)))
	if err != nil {
		return nil, err
	}

	var out InvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvitesLeft reports an identity's remaining invite budget for an app.
func (c *SDKClient) GetInvitesLeft(ctx context.Context, appID, identity string) (int, error) {
	resp, err := c.doGet(ctx,
		fmt.Sprintf("/v1/apps/%s/invites-left/%s", url.PathEscape(appID), url.PathEscape(identity)))
	if err != nil {
		return 0, err
	}

	var out InvitesLeftResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.InvitesLeft, nil
}

// GetEvents returns an app's event log, oldest first. A limit of 0 means
// no limit.
func (c *SDKClient) GetEvents(ctx context.Context, appID string, limit int) (*EventsResponse, error) {
	path := fmt.Sprintf("/v1/apps/%s/events", url.PathEscape(appID))
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	resp, err := c.doGet(ctx, path)
	if err != nil {
		return nil, err
	}

	var out EventsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doGet(ctx, "/livez")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doGet(ctx, "/readyz")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
