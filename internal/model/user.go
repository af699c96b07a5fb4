package model

import "fmt"

// Role is the access level of a signed-in user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Validate implements the enum validator contract.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStaff:
		return nil
	default:
		return fmt.Errorf("unknown role: %s", r)
	}
}

// UserProfile is immutable for the lifetime of a session.
type UserProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is what a successful login returns: the bearer token and the
// profile it belongs to. Persisting it is the caller's job.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
