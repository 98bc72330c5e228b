// Package dashboard holds the fixed role→dashboard routing table and the
// role→permission table the dashboards render. Both are pure lookups; the
// session's role value feeds them but is computed elsewhere.
package dashboard

import "github.com/dmitrijs2005/intuvia/internal/users"

// Route names the dashboard a role lands on after login.
type Route string

const (
	RouteSuperAdmin Route = "superadmin"
	RouteAdmin      Route = "admin"
	RouteViewer     Route = "viewer"
	RouteUser       Route = "user"
)

var routes = map[users.Role]Route{
	users.RoleSuperAdmin: RouteSuperAdmin,
	users.RoleAdmin:      RouteAdmin,
	users.RoleViewer:     RouteViewer,
	users.RoleOrganizer:  RouteUser,
	users.RoleAttendee:   RouteUser,
}

// RouteFor returns the dashboard route for a role. Unknown roles land on the
// plain user dashboard.
func RouteFor(role users.Role) Route {
	if r, ok := routes[role]; ok {
		return r
	}
	return RouteUser
}

var permissions = map[users.Role][]string{
	users.RoleSuperAdmin: {
		"Manage users",
		"Manage events",
		"View analytics",
		"System settings",
	},
	users.RoleAdmin: {
		"Manage events",
		"Approve registrations",
		"View analytics",
	},
	users.RoleViewer: {
		"View events",
		"View reports",
	},
	users.RoleOrganizer: {
		"Create events",
		"Manage my events",
		"View attendee lists",
	},
	users.RoleAttendee: {
		"Browse events",
		"Register for events",
		"View my tickets",
	},
}

// PermissionsFor returns the feature names a role's dashboard shows. Unknown
// roles get the Attendee set, matching the default routing.
func PermissionsFor(role users.Role) []string {
	if p, ok := permissions[role]; ok {
		return p
	}
	return permissions[users.RoleAttendee]
}
