package domain

// Role identifies what a user can do in the marketplace.
type Role string

const (
	// RoleRequester posts service jobs and reviews quotes.
	RoleRequester Role = "REQUESTER"
	// RoleServiceProvider browses open jobs and submits quotes.
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	// RoleSupplyProvider maintains a materials catalog and bundles offers.
	RoleSupplyProvider Role = "SUPPLY_PROVIDER"
)

// IsValid reports whether the role is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleRequester, RoleServiceProvider, RoleSupplyProvider:
		return true
	}
	return false
}

// User represents a marketplace account. Users are seeded from fixtures and
// never created or updated through actions.
type User struct {
	ID    string
	Name  string
	Email string
	// Password is stored in plaintext, a known weakness inherited from the
	// fixture data. Credential handling is outside the core.
	Password string
	Role     Role
	// Rating is optional and only present for service providers.
	Rating string
}
