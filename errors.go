package proptypes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequired is wrapped by errors for required properties that are not defined.
	ErrMissingRequired = errors.New("required property is not defined")

	// ErrNullNotAllowed is wrapped by errors for null values of non-nullable properties.
	ErrNullNotAllowed = errors.New("property is not nullable")

	// ErrInvalidType is wrapped by errors for values of an unexpected type.
	ErrInvalidType = errors.New("invalid property type")

	// ErrInvalidValue is wrapped by errors for values of the right type that fail a constraint.
	ErrInvalidValue = errors.New("invalid property value")

	// ErrUnknownKey is wrapped by errors for keys an exact shape does not declare.
	ErrUnknownKey = errors.New("unknown property key")

	// ErrNilChecker is returned when a field is declared with a nil checker.
	ErrNilChecker = errors.New("nil type checker")

	// ErrDecode is returned when validated props cannot be decoded into the target value.
	ErrDecode = errors.New("failed to decode props")
)

// PropTypeError describes a single invalid property.
// Prop is the property key, Message is human readable and usually names the
// fully qualified property.
type PropTypeError struct {
	Prop    string
	Message string
	Err     error
}

func (e *PropTypeError) Error() string {
	return e.Message
}

func (e *PropTypeError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects property errors produced by Check.
type ValidationErrors []*PropTypeError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Prop, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve *ValidationErrors) Add(err *PropTypeError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(prop string) bool {
	for _, err := range ve {
		if err.Prop == prop {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for prop in insertion order.
func (ve ValidationErrors) Get(prop string) []string {
	var messages []string
	for _, err := range ve {
		if err.Prop == prop {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct property names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Prop] {
			fields = append(fields, err.Prop)
			seen[err.Prop] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Details groups messages by property, the shape used by JSON error responses.
func (ve ValidationErrors) Details() map[string][]string {
	details := make(map[string][]string, len(ve))
	for _, err := range ve {
		details[err.Prop] = append(details[err.Prop], err.Message)
	}
	return details
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
