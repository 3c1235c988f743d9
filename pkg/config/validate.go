package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the struct tags of every section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failing field in a readable form
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required", "required_if":
			return fmt.Errorf("%w: %s is required", ErrInvalid, field)
		case "gt":
			return fmt.Errorf("%w: %s must be greater than %s", ErrInvalid, field, param)
		case "gte", "min":
			return fmt.Errorf("%w: %s must be at least %s", ErrInvalid, field, param)
		case "lte", "max":
			return fmt.Errorf("%w: %s must not exceed %s", ErrInvalid, field, param)
		case "oneof":
			return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalid, field, param, e.Value())
		case "hostname_port":
			return fmt.Errorf("%w: %s must be host:port, got %q", ErrInvalid, field, e.Value())
		default:
			return fmt.Errorf("%w: %s failed %s", ErrInvalid, field, e.Tag())
		}
	}
	return err
}
