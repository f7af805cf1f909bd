package entity

import "time"

const (
	RoleAdmin    = "admin"
	RoleSubAdmin = "subAdmin"
	RoleEmployee = "emp"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
	IsActive  bool      `json:"isActive"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
