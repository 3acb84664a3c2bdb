package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// ValidRole indica si role pertenece al conjunto cerrado {user, owner, admin}.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User representa una cuenta del sistema. PasswordHash nunca sale del dominio
// hacia una respuesta HTTP.
type User struct {
	ID           string
	Name         string
	Email        string
	Address      string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, owner, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
