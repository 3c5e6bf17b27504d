package manager

import (
	"math"
	"strings"

	"github.com/maksimkurb/mobile-manager/src/internal/errors"
)

// Rule identifies which check a form failed.
type Rule string

const (
	RuleRequired       Rule = "required"
	RulePositiveNumber Rule = "positive_number"
	RuleInteger        Rule = "integer"
)

// ValidationError blocks a submission before anything is sent.
type ValidationError struct {
	Field string
	Rule  Rule
}

// Message is the text shown to the user.
func (e *ValidationError) Message() string {
	switch e.Rule {
	case RulePositiveNumber:
		return MsgInvalidPrice
	case RuleInteger:
		return MsgInvalidID
	default:
		return RequiredMessage(e.Field)
	}
}

func (e *ValidationError) Error() string {
	return e.Message()
}

// Unwrap exposes the VALIDATION_ERROR code to errors.HasCode.
func (e *ValidationError) Unwrap() error {
	return errors.NewValidationError(e.Field, nil)
}

// Validate checks a form in three passes: every field in FieldOrder must be
// non-blank, then price must be a finite number > 0, then id must be an
// integer. The first failure is returned; nil means the form can be sent.
func Validate(f Form) *ValidationError {
	for _, field := range FieldOrder {
		if strings.TrimSpace(f.Get(field)) == "" {
			return &ValidationError{Field: field, Rule: RuleRequired}
		}
	}

	price, err := parsePrice(f.Price)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return &ValidationError{Field: FieldPrice, Rule: RulePositiveNumber}
	}

	if _, err := parseID(f.ID); err != nil {
		return &ValidationError{Field: FieldID, Rule: RuleInteger}
	}

	return nil
}
