package gatesdk

// ErrorResponse is the standard error body returned by every endpoint.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// App Types
// ============================================================================

// CreateAppRequest registers a new app (tenant) owned by the caller.
type CreateAppRequest struct {
	// AppID is the caller-chosen unique identifier for the app
	AppID string `json:"app_id"`

	// InitialInvites is the invite budget granted to the creator (0-1000)
	InitialInvites int `json:"initial_invites"`

	// InvitesPerNewUser is the budget each accepted invitee receives (0-100)
	InvitesPerNewUser int `json:"invites_per_new_user"`
}

// AppResponse describes an app record.
type AppResponse struct {
	AppID             string   `json:"app_id"`
	Owner             string   `json:"owner"`
	Admins            []string `json:"admins,omitempty"`
	InvitesPerNewUser int      `json:"invites_per_new_user"`
	Transferrable     bool     `json:"transferrable"`
	BaseURI           string   `json:"base_uri,omitempty"`
	CreatedAt         int64    `json:"created_at"`
}

// SetTransferrableRequest toggles membership transfers for an app.
type SetTransferrableRequest struct {
	Transferrable bool `json:"transferrable"`
}

// SetInvitesPerUserRequest changes the budget granted to future invitees.
type SetInvitesPerUserRequest struct {
	InvitesPerNewUser int `json:"invites_per_new_user"`
}

// GrantInvitesRequest tops up an identity's invite budget.
type GrantInvitesRequest struct {
	// Identity receiving the extra invites
	Identity string `json:"identity"`

	// Count is the number of invites to add (must be positive)
	Count int `json:"count"`
}

// SetBaseURIRequest sets the app's credential metadata base URI.
type SetBaseURIRequest struct {
	BaseURI string `json:"base_uri"`
}

// TransferOwnershipRequest hands the app to a new owner.
type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

// AdminRequest names an identity to add to the admin set.
type AdminRequest struct {
	Identity string `json:"identity"`
}

// ============================================================================
// Invite Types
// ============================================================================

// InviteRequest sends one invitation token to a recipient.
type InviteRequest struct {
	Recipient string `json:"recipient"`
}

// BatchInviteRequest sends one invitation token to each recipient. The
// whole batch succeeds or fails together.
type BatchInviteRequest struct {
	Recipients []string `json:"recipients"`
}

// TokenResponse describes a credential token and its current holder.
type TokenResponse struct {
	TokenID uint64 `json:"token_id"`

	// Type is "membership" or "invitation"
	Type string `json:"type"`

	AppID   string `json:"app_id"`
	Owner   string `json:"owner,omitempty"`
	Inviter string `json:"inviter,omitempty"`
	Locked  bool   `json:"locked"`
}

// BatchInviteResponse lists the minted invitation tokens in recipient order.
type BatchInviteResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// ============================================================================
// Token Operation Types
// ============================================================================

// TransferRequest moves a token the caller holds to a new owner.
type TransferRequest struct {
	To string `json:"to"`
}

// LockRequest sets or clears the transfer lock on a membership token.
type LockRequest struct {
	Locked bool `json:"locked"`
}

// TokenURIResponse carries the metadata URI for a token.
type TokenURIResponse struct {
	TokenID uint64 `json:"token_id"`
	URI     string `json:"uri"`
}

// ============================================================================
// Query Types
// ============================================================================

// AccessResponse answers whether an identity is a registered member.
type AccessResponse struct {
	AppID    string `json:"app_id"`
	Identity string `json:"identity"`
	Access   bool   `json:"access"`
}

// InvitationsResponse lists the invitation tokens an identity holds for
// an app.
type InvitationsResponse struct {
	AppID    string   `json:"app_id"`
	Identity string   `json:"identity"`
	Invited  bool     `json:"invited"`
	TokenIDs []uint64 `json:"token_ids"`
}

// InvitesLeftResponse reports an identity's remaining invite budget.
type InvitesLeftResponse struct {
	AppID       string `json:"app_id"`
	Identity    string `json:"identity"`
	InvitesLeft int    `json:"invites_left"`
}

// EventRecord is one entry in an app's event log.
type EventRecord struct {
	// ID is a ULID; events sort chronologically by ID
	ID string `json:"id"`

	Type      string `json:"type"`
	Actor     string `json:"actor,omitempty"`
	Subject   string `json:"subject,omitempty"`
	TokenID   uint64 `json:"token_id,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// EventsResponse is the app event log, oldest first.
type EventsResponse struct {
	AppID  string        `json:"app_id"`
	Events []EventRecord `json:"events"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports per-dependency status for the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
