package gatesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateApp registers a new app owned by the authenticated identity.
func (c *SDKClient) CreateApp(ctx context.Context, req CreateAppRequest) (*AppResponse, error) {
	resp, err := c.doAuthJSON(ctx, http.MethodPost, "/v1/apps", req)
	if err != nil {
		return nil, err
	}

	var app AppResponse
	if err := decodeJSON(resp, &app, http.StatusCreated); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetApp fetches an app record, including its admin set.
func (c *SDKClient) GetApp(ctx context.Context, appID string) (*AppResponse, error) {
	resp, err := c.doGet(ctx, "/v1/apps/"+url.PathEscape(appID))
	if err != nil {
		return nil, err
	}

	var app AppResponse
	if err := decodeJSON(resp, &app, http.StatusOK); err != nil {
		return nil, err
	}
	return &app, nil
}

// SetTransferrable toggles membership transfers. Admin-only.
func (c *SDKClient) SetTransferrable(ctx context.Context, appID string, transferrable bool) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/transferrable", url.PathEscape(appID)),
		SetTransferrableRequest{Transferrable: transferrable},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetInvitesPerNewUser changes the budget granted to future invitees. Admin-only.
func (c *SDKClient) SetInvitesPerNewUser(ctx context.Context, appID string, n int) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/invites-per-user", url.PathEscape(appID)),
		SetInvitesPerUserRequest{InvitesPerNewUser: n},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GrantInvites adds to an identity's invite budget. Admin-only.
func (c *SDKClient) GrantInvites(ctx context.Context, appID, identity string, count int) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/grants", url.PathEscape(appID)),
		GrantInvitesRequest{Identity: identity, Count: count},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetBaseURI sets the app's credential metadata base URI. Admin-only.
func (c *SDKClient) SetBaseURI(ctx context.Context, appID, baseURI string) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/base-uri", url.PathEscape(appID)),
		SetBaseURIRequest{BaseURI: baseURI},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// TransferOwnership hands the app to a new owner. Owner-only.
func (c *SDKClient) TransferOwnership(ctx context.Context, appID, newOwner string) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/ownership", url.PathEscape(appID)),
		TransferOwnershipRequest{NewOwner: newOwner},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// AddAdmin adds an identity to the app's admin set. Owner-only.
func (c *SDKClient) AddAdmin(ctx context.Context, appID, identity string) error {
	resp, err := c.doAuthJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/apps/%s/admins", url.PathEscape(appID)),
		AdminRequest{Identity: identity},
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RemoveAdmin removes an identity from the app's admin set. Owner-only;
// the owner itself cannot be removed.
func (c *SDKClient) RemoveAdmin(ctx context.Context, appID, identity string) error {
	resp, err := c.doAuthJSON(ctx, http.MethodDelete,
		fmt.Sprintf("/v1/apps/%s/admins/%s", url.PathEscape(appID), url.PathEscape(identity)),
		nil,
	)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
