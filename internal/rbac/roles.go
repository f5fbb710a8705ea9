package rbac

// Role names carried in service tokens. Keep these stable; issued tokens embed them.
const (
	RoleOwner       = "owner"
	RoleIntegration = "integration" // pushes payloads for normalization
	RoleAnalyst     = "analyst"     // read-only access to normalized views
)

// Permission is an action a route group guards.
type Permission string

const (
	PermIngest Permission = "ingest" // POST /normalize/*
	PermRead   Permission = "read"   // upstream views and summaries
)

var grants = map[string][]Permission{
	RoleOwner:       {PermIngest, PermRead},
	RoleIntegration: {PermIngest, PermRead},
	RoleAnalyst:     {PermRead},
}

// Roles lists every role a token may carry.
func Roles() []string { return []string{RoleOwner, RoleIntegration, RoleAnalyst} }

func IsKnownRole(role string) bool {
	_, ok := grants[role]
	return ok
}

// Can reports whether role holds p. Unknown roles hold nothing.
func Can(role string, p Permission) bool {
	for _, g := range grants[role] {
		if g == p {
			return true
		}
	}
	return false
}
