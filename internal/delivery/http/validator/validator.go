// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "romaneio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo.Echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New is the constructor for echoValidator.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and surfaces failures as a validation AppError
// so the error middleware renders a 400 instead of a generic 500.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
