package auth

import (
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/validation"
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email     string `json:"email"      validate:"required,max=254,email"`
	Username  string `json:"username"   validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name"  validate:"required,max=150"`
	Password  string `json:"password"   validate:"required,min=8,max=128"`
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	errs := validation.Struct(i)

	if strings.EqualFold(i.Username, domain.ReservedUsername) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "Username \"me\" is reserved."})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for token login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	if errs := validation.Struct(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
