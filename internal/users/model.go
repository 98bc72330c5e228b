// Package users holds the demo user records and the credential store that
// persists them. Passwords are stored in the clear on purpose: the whole
// repository is a client-side demo and must never be used as a template for
// real credential handling.
package users

// Role enumerates the dashboard roles a demo user can hold.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleViewer     Role = "Viewer"
	RoleOrganizer  Role = "Organizer"
	RoleAttendee   Role = "Attendee"
)

// Type distinguishes enterprise accounts (eligible for domain-based SSO
// matching) from normal ones.
type Type string

const (
	TypeEnterprise Type = "enterprise"
	TypeNormal     Type = "normal"
)

// User is the stored credential record. Email is the unique key and is
// matched case-insensitively.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Type     Type   `json:"type"`
	Name     string `json:"name"`
}

// View is the sanitized projection of a User handed to callers after
// authentication. It deliberately has no password field.
type View struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Type  Type   `json:"type"`
	Name  string `json:"name"`
}

// Sanitize returns the password-free view of u.
func (u User) Sanitize() View {
	return View{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Type:  u.Type,
		Name:  u.Name,
	}
}
