package entity

import (
	"strings"
	"time"
)

// User represents a staff credential for the admin backend
type User struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Username  string    `gorm:"size:255;unique;not null;column:name" json:"username"`
	Email     string    `gorm:"size:255" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Roles     string    `gorm:"size:255" json:"roles"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// RoleList splits the comma-separated roles column into individual role names
func (u *User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	parts := strings.Split(u.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// HasRole checks if the user carries a specific role
func (u *User) HasRole(roleName string) bool {
	for _, r := range u.RoleList() {
		if r == roleName {
			return true
		}
	}
	return false
}
