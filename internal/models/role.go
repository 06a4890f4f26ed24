package models

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the operator's role may not modify employees.
var ErrForbidden = errors.New("operation requires the admin role")

// Role of the operator using the console.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps a configured role name onto a Role. Unknown names fall back to RoleUser.
func ParseRole(name string) Role {
	if strings.EqualFold(strings.TrimSpace(name), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// IsAdmin reports whether the role may create, update and delete employees.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
