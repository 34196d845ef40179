// Package roles maps the backend's role strings onto the UI capabilities they
// unlock, so templates and handlers check a capability set instead of
// comparing role strings all over.
package roles

// Role names as the backend reports them in the User-Role header.
const (
	RoleAdmin    = "Admin"
	RoleSupplier = "Supplier"
	RoleSupport  = "Support"
)

// Capabilities is the set of product actions available to a role. Viewing is
// never gated.
type Capabilities struct {
	CanView   bool
	CanEdit   bool
	CanDelete bool
}

// ActionsFor computes the capability set for a role. Unknown roles can only
// view. Capabilities are recomputed per render from the current session role,
// never cached.
func ActionsFor(role string) Capabilities {
	return Capabilities{
		CanView:   true,
		CanEdit:   role == RoleAdmin || role == RoleSupplier || role == RoleSupport,
		CanDelete: role == RoleAdmin,
	}
}
