// Package models holds the plumbing shared by the per-channel model
// packages: the validation pass, the JSON codec contract and the query
// parameter encoder. It deals only with payload shapes; transport,
// authentication and retries belong to the caller.
package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared engine. Constraints live as struct tags on the
// model types, so one instance serves every package.
var validate = validator.New()

// Validate runs every constraint declared on v, including constraints on
// nested objects and slice elements. It returns nil when v is valid and
// a *ValidationError listing each violated constraint otherwise.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Struct() was handed something that is not a struct.
		return fmt.Errorf("validate: %w", err)
	}

	verr := &ValidationError{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Violations = append(verr.Violations, Violation{
			Field:      fe.Namespace(),
			Constraint: fe.Tag(),
			Param:      fe.Param(),
			Value:      valueSummary(fe.Value()),
		})
	}
	return verr
}
