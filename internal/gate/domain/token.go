package domain

import "time"

// TokenType distinguishes the two credential kinds. A token's type is fixed
// at mint; there is no retyping operation.
type TokenType string

const (
	TokenMembership TokenType = "membership"
	TokenInvitation TokenType = "invitation"
)

// Valid reports whether t is one of the known credential types.
func (t TokenType) Valid() bool {
	return t == TokenMembership || t == TokenInvitation
}

// Token is a credential token's attribute record. Current ownership is
// tracked by the ledger, not here.
type Token struct {
	ID        uint64
	AppID     string
	Type      TokenType
	Inviter   string // identity that issued the originating invitation
	Locked    bool   // membership tokens only; blocks transfer when set
	CreatedAt time.Time
}
