package models

// Role distinguishes the two kinds of marketplace accounts.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleEmployer
}

// User is the authenticated account as returned by /auth/* and /users/me.
type User struct {
	ID     ID     `json:"id"`
	Role   Role   `json:"role,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Joined string `json:"joined,omitempty"`
}

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
	Message     string `json:"message,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
