package user

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleCoder Role = "coder"
)

// User is keyed by email. AssignedJobs keeps the order the admin listed them in.
type User struct {
	Email        string                      `gorm:"primaryKey;size:255" json:"email"`
	PasswordHash string                      `gorm:"size:255;not null" json:"-"`
	AssignedJobs datatypes.JSONSlice[string] `json:"assigned_jobs"`
	Role         Role                        `gorm:"size:16;default:'coder';not null" json:"role"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAssigned reports whether jobID is in the user's assignment list.
func (u User) IsAssigned(jobID string) bool {
	for _, j := range u.AssignedJobs {
		if j == jobID {
			return true
		}
	}
	return false
}

// ParseRole maps free text from the users CSV onto a Role. Empty input is a coder.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case "", RoleCoder:
		return RoleCoder, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}
