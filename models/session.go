package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the authenticated user of the current session.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// RegisteredAccount is a locally persisted signup record. The password is
// kept in plaintext; it only backs the mock login check.
type RegisteredAccount struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// AuthResult reports a login or signup. User is the identity a successful
// login signed in; signup never sets it.
type AuthResult struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	User    *Identity `json:"user,omitempty"`
}

// ============================================================================
// SESSION REQUESTS
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type SessionResponse struct {
	User      *Identity `json:"user"`
	IsLoading bool      `json:"is_loading"`
	IsAdmin   bool      `json:"is_admin"`
}
