package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"     // Back-office administrator - full access
	RoleRecruiter Role = "recruiter" // Manages candidates, jobs and invoices
)

type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is a back-office administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
