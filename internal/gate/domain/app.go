package domain

import "time"

const (
	// MaxInitialInvites caps the invite budget an app creator can grant
	// themselves at creation time.
	MaxInitialInvites = 1000

	// MaxInvitesPerNewUser caps the invite budget handed to each newly
	// accepted member.
	MaxInvitesPerNewUser = 100
)

// App is a tenant: an independent membership domain with its own owner,
// admin set, registered-user set and invite budgets.
type App struct {
	ID                string
	Owner             string
	InvitesPerNewUser int
	Transferrable     bool // whether membership tokens may change hands
	BaseURI           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
