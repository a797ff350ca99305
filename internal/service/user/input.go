package user

import (
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/validation"
)

// UpdateProfileInput holds parameters for a partial profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username  *string `json:"username"   validate:"omitnil,min=1,max=150,username"`
	FirstName *string `json:"first_name" validate:"omitnil,min=1,max=150"`
	LastName  *string `json:"last_name"  validate:"omitnil,min=1,max=150"`
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	errs := validation.Struct(i)

	if i.Username != nil && strings.EqualFold(*i.Username, domain.ReservedUsername) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "Username \"me\" is reserved."})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetPasswordInput holds parameters for a password change.
type SetPasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required,max=128"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}

// Validate validates the set password input.
func (i SetPasswordInput) Validate() error {
	if errs := validation.Struct(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
