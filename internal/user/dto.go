package user

import (
	"github.com/ceramiqa/quality-management/internal"
	"github.com/ceramiqa/quality-management/internal/auth"
)

// UpdateRoleDTO reassigns an account's role. The new permission set takes
// effect on the user's next request.
type UpdateRoleDTO struct {
	Role string `json:"role"`
}

func (d UpdateRoleDTO) Validate() error {
	if d.Role == "" {
		return internal.NewValidationError("role is required", internal.ErrCodeMissingField)
	}
	if !auth.IsValidRole(d.Role) {
		return ErrUnknownRole
	}
	return nil
}
