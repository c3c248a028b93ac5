package entity

// Role gates admin-only operations and scopes appointment visibility.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserProfile links an Account to an application role. Stored in the users
// collection; at most one per account, enforced only by query-then-create.
type UserProfile struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// IsAdmin checks if the profile carries the admin role
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// AdminEntry is an admin allowlist record, matched by email.
type AdminEntry struct {
	ID    string `json:"$id"`
	Email string `json:"email"`
}
