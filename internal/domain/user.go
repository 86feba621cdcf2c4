package domain

import "time"

type UserRole string

const (
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

func ValidUserRoles() []UserRole {
	return []UserRole{RoleStaff, RoleAdmin}
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required,min=3"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
