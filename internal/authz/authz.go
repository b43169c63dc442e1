package authz

import "strings"

// Role is an authorization level assigned out-of-band to an identity.
// NoRole is the zero value: either the visitor is anonymous or no
// access-control record exists for them.
type Role string

const (
	NoRole        Role = ""
	RoleGeneral   Role = "general"
	RoleFinance   Role = "finance"
	RoleMedia     Role = "media"
	RoleCustodian Role = "custodian"
)

// ParseRole maps a stored role value to the closed set. Anything outside
// the set resolves to NoRole so a corrupted record grants nothing.
func ParseRole(raw string) Role {
	switch Role(strings.TrimSpace(raw)) {
	case RoleGeneral, RoleFinance, RoleMedia, RoleCustodian:
		return Role(strings.TrimSpace(raw))
	default:
		return NoRole
	}
}

// Area classifies a route for access control.
type Area string

const (
	AreaPublic  Area = "public"
	AreaLogin   Area = "login"
	AreaFinance Area = "finance" // member, roster and store management
	AreaMedia   Area = "media"   // activity-post management
)

// permissions is the single source of truth for which roles may enter a
// protected area.
var permissions = map[Area][]Role{
	AreaFinance: {RoleGeneral, RoleFinance, RoleCustodian},
	AreaMedia:   {RoleGeneral, RoleMedia},
}

// CanAccess reports whether a role may enter an area. Public and login
// areas are open to everyone; protected areas require membership in the
// area's permission set, so NoRole is always denied.
func CanAccess(role Role, area Area) bool {
	switch area {
	case AreaPublic, AreaLogin:
		return true
	case AreaFinance, AreaMedia:
		for _, allowed := range permissions[area] {
			if role == allowed {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ClassifyRoute buckets an API path into an area. Paths that are not
// recognized as admin surfaces are public.
func ClassifyRoute(path string) Area {
	switch {
	case strings.HasPrefix(path, "/api/auth/login"),
		strings.HasPrefix(path, "/api/auth/register"):
		return AreaLogin
	case strings.HasPrefix(path, "/api/admin/scouts"),
		strings.HasPrefix(path, "/api/admin/products"),
		strings.HasPrefix(path, "/api/admin/roster"):
		return AreaFinance
	case strings.HasPrefix(path, "/api/admin/posts"):
		return AreaMedia
	default:
		return AreaPublic
	}
}

// DefaultLanding returns the admin area a freshly authenticated role should
// be sent to. Roles with finance access land on member management, media on
// the activities manager, and everyone else back on the public site.
func DefaultLanding(role Role) Area {
	if CanAccess(role, AreaFinance) {
		return AreaFinance
	}
	if CanAccess(role, AreaMedia) {
		return AreaMedia
	}
	return AreaPublic
}
