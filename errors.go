package fixture

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrDraftUnavailable is returned when a contextual value is read before the
	// draft it belongs to has been merged.
	ErrDraftUnavailable = errors.New("draft instance is not yet available")

	// ErrContextualCycle is returned when a contextual value depends on itself.
	ErrContextualCycle = errors.New("contextual value depends on itself")

	ErrPathNotFound    = errors.New("path not found in draft")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidLength   = errors.New("invalid fixture count")
	ErrInvalidRange    = errors.New("invalid array range")
	ErrDecode          = errors.New("cannot decode fixture")
	ErrConfigLoad      = errors.New("cannot load fixture configuration")
	ErrEmptyCollection = errors.New("cannot pick from an empty collection")
)

// SafeTypeAssertion performs a type assertion and reports a mismatch as an
// error wrapping ErrTypeMismatch. A nil value yields the zero value of T.
func SafeTypeAssertion[T any](value any) (T, error) {
	if value == nil {
		var zero T
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrTypeMismatch, "expected %T, got %T (value: %v)", zero, value, value)
	}

	return typed, nil
}
