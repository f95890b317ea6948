package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-api/pkg/validator"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrProductNotFound = errors.New("product not found")
	ErrUnauthorized    = errors.New("unauthorized")
)

// nowFunc is the service clock; tests replace it.
var nowFunc = func() time.Time { return time.Now().UTC() }

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// validate runs struct validation and folds every failure into one
// ErrValidation naming the offending fields.
func validate(req any) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.String()
	}
	return validationError("%s", strings.Join(msgs, "; "))
}
