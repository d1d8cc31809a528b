// Package session answers the thin read-only questions navigation asks
// about the current user: is somebody signed in, and what does their role
// let them reach.
package session

import (
	apperrors "github.com/obralink/obralink/internal/errors"
	"github.com/obralink/obralink/internal/marketplace/domain"
	"github.com/obralink/obralink/internal/marketplace/state"
)

// ErrInvalidCredentials indicates no seeded user matches the given email and
// password.
var ErrInvalidCredentials = apperrors.New(apperrors.CodeUserNotFound, "no user matches the given credentials")

// Gate exposes role checks over a snapshot's current user.
type Gate struct {
	user *domain.User
}

// NewGate creates a gate for the snapshot's current user.
func NewGate(snapshot state.Snapshot) Gate {
	return Gate{user: snapshot.CurrentUser}
}

// SignedIn reports whether a user is signed in.
func (g Gate) SignedIn() bool {
	return g.user != nil
}

// Role returns the current user's role, empty when nobody is signed in.
func (g Gate) Role() domain.Role {
	if g.user == nil {
		return ""
	}
	return g.user.Role
}

// Is reports whether the current user holds the given role.
func (g Gate) Is(role domain.Role) bool {
	return g.user != nil && g.user.Role == role
}

// CanPostServices reports whether the current user may post service jobs.
func (g Gate) CanPostServices() bool {
	return g.Is(domain.RoleRequester)
}

// CanQuote reports whether the current user may submit quotes.
func (g Gate) CanQuote() bool {
	return g.Is(domain.RoleServiceProvider)
}

// CanManageSupplies reports whether the current user may manage a supply
// catalog and packs.
func (g Gate) CanManageSupplies() bool {
	return g.Is(domain.RoleSupplyProvider)
}

// Authenticate looks a user up by email and password with a linear scan over
// the seeded accounts.
func Authenticate(users []domain.User, email, password string) (domain.User, error) {
	for _, user := range users {
		if user.Email == email && user.Password == password {
			return user, nil
		}
	}
	return domain.User{}, ErrInvalidCredentials
}
