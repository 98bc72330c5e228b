package users

// seedUsers is the fixed demo account list, materialized into the store on
// first run. Order matters: simulated SSO picks the first enterprise record
// matching the requested domain, and the Google fallback picks the first
// normal record.
var seedUsers = []User{
	{
		Email:    "superadmin@intuvia.com",
		Password: "Super@123",
		Role:     RoleSuperAdmin,
		Type:     TypeEnterprise,
		Name:     "Sarah Mitchell",
	},
	{
		Email:    "admin@intuvia.com",
		Password: "Admin@123",
		Role:     RoleAdmin,
		Type:     TypeEnterprise,
		Name:     "David Chen",
	},
	{
		Email:    "viewer@intuvia.com",
		Password: "Viewer@123",
		Role:     RoleViewer,
		Type:     TypeEnterprise,
		Name:     "Priya Nair",
	},
	{
		Email:    "organizer@eventmail.com",
		Password: "Organizer@123",
		Role:     RoleOrganizer,
		Type:     TypeNormal,
		Name:     "Tom Baker",
	},
	{
		Email:    "user@example.com",
		Password: "User@123",
		Role:     RoleAttendee,
		Type:     TypeNormal,
		Name:     "Alex Johnson",
	},
}
