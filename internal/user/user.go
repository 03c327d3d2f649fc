package user

import (
	"time"

	"github.com/ceramiqa/quality-management/internal"
	"github.com/ceramiqa/quality-management/internal/auth"
	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
)

// User is the administrative view of an account. The password hash never
// leaves the datamodel layer.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department,omitempty"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

var (
	ErrNotFound    error = internal.ErrUserNotFound
	ErrUnknownRole error = internal.NewValidationError("unknown role", internal.ErrCodeUnknownRole)
)

func (u *User) IsActiveUser() bool {
	return u.IsActive
}

func (u *User) Permissions() auth.PermissionSet {
	return auth.PermissionsForRole(u.Role)
}

func FromDataModel(account *userDatamodel.User) *User {
	return &User{
		ID:         account.ID,
		Email:      account.Email,
		FullName:   account.FullName,
		Department: account.Department,
		Role:       account.Role,
		IsActive:   account.IsActive,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}

func FromDataModelSlice(accounts []*userDatamodel.User) []*User {
	result := make([]*User, len(accounts))
	for i, a := range accounts {
		result[i] = FromDataModel(a)
	}
	return result
}
