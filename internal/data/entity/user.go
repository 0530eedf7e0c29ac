package entity

// Role is the closed set of platform roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleOwner Role = "OWNER"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	}
	return false
}

type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	Address      string `db:"address"`
	PasswordHash string `db:"password_hash"`
	Role         Role   `db:"role"`
}
