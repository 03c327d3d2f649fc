package auth

import "github.com/ceramiqa/quality-management/internal"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterDTO accepts account registrations. Role is optional and defaults to
// operator.
type RegisterDTO struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

// RefreshTokenDTO for refresh token requests
type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeMissingField)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeMissingField)
	}
	return nil
}

func (d RegisterDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeMissingField)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeMissingField)
	}
	if d.FullName == "" {
		return internal.NewValidationError("fullName is required", internal.ErrCodeMissingField)
	}
	if d.Role != "" && !IsValidRole(d.Role) {
		return ErrUnknownRole
	}
	return nil
}

func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return internal.NewValidationError("refresh_token is required", internal.ErrCodeMissingField)
	}
	return nil
}
