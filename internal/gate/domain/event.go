package domain

import "time"

// Event types emitted by mutating operations. One row is appended per
// triggering call, in the same transaction as the mutation itself.
const (
	EventAppCreated           = "app.created"
	EventInviteSent           = "invite.sent"
	EventInviteAccepted       = "invite.accepted"
	EventTransferrableSet     = "app.transferrable_set"
	EventOwnershipTransferred = "app.ownership_transferred"
	EventAdminAdded           = "app.admin_added"
	EventAdminRemoved         = "app.admin_removed"
	EventTokenLocked          = "token.locked"
	EventTokenTransferred     = "token.transferred"
	EventInvitesGranted       = "app.invites_granted"
	EventBaseURISet           = "app.base_uri_set"
)

type Event struct {
	ID        string // ULID, orders events within an app
	AppID     string
	Type      string
	Actor     string // caller identity that triggered the event
	Subject   string // identity the event is about, if any
	TokenID   uint64 // 0 when the event concerns no token
	CreatedAt time.Time
}
