package models

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Profile is the authenticated caller as seen by the dashboards.
type Profile struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminSession struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
