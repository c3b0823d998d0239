package domain

import (
	"errors"
	"strings"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. The numeric ID and the password hash are
// internal and never serialized.
type User struct {
	ID           int    `json:"-"`
	UserName     string `json:"username"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"-"`
	Roles        string `json:"-"`
}

// HasRole reports whether the comma-separated role string contains role.
func (u *User) HasRole(role string) bool {
	for _, r := range strings.Split(u.Roles, ",") {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}
