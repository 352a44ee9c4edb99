// Package validation provides the assignment-time constraint checks used by
// endpoint parameter fields. Two policies implement the same interface: Strict
// enforces constraints through go-playground/validator, Permissive accepts
// everything. The policy is chosen once at configuration time via SetDefault,
// not per call site.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ConstraintError is returned when a value violates a declared constraint.
// Use errors.As(err, &ConstraintError{}) to extract the offending field.
type ConstraintError struct {
	Field  string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Policy checks parameter constraints at assignment time.
type Policy interface {
	// StringLen validates string length; max <= 0 means unbounded.
	StringLen(field, value string, min, max int) error
	// IntRange validates numeric bounds; max <= 0 with min >= 0 means no upper bound.
	IntRange(field string, value, min, max int) error
	// OneOf validates membership in a declared literal set.
	OneOf(field, value string, allowed ...string) error
	// UUID validates RFC 4122 format.
	UUID(field, value string) error
}

// Strict returns a Policy that enforces all constraints.
func Strict() Policy {
	return &strictPolicy{v: validator.New()}
}

// Permissive returns a Policy whose checks always pass. Field assignment and
// reads behave identically to Strict; only automatic constraint enforcement
// is lost. Missing-required-field checks are unaffected (they live in the
// field layer, not here).
func Permissive() Policy {
	return permissivePolicy{}
}

var defaultPolicy Policy = Strict()

// Default returns the process-wide policy used by field constructors.
func Default() Policy {
	return defaultPolicy
}

// SetDefault selects the policy for subsequently constructed fields and
// groups. Call once during program initialization; degrading to Permissive
// is a deliberate choice, never an automatic fallback.
func SetDefault(p Policy) {
	if p != nil {
		defaultPolicy = p
	}
}

type strictPolicy struct {
	v *validator.Validate
}

func (p *strictPolicy) StringLen(field, value string, min, max int) error {
	tag := fmt.Sprintf("min=%d", min)
	if max > 0 {
		tag = fmt.Sprintf("min=%d,max=%d", min, max)
	}
	if err := p.v.Var(value, tag); err != nil {
		reason := fmt.Sprintf("length must be at least %d", min)
		if max > 0 {
			reason = fmt.Sprintf("length must be between %d and %d", min, max)
		}
		return &ConstraintError{Field: field, Reason: reason}
	}
	return nil
}

func (p *strictPolicy) IntRange(field string, value, min, max int) error {
	tag := fmt.Sprintf("gte=%d", min)
	if max > min {
		tag = fmt.Sprintf("gte=%d,lte=%d", min, max)
	}
	if err := p.v.Var(value, tag); err != nil {
		reason := fmt.Sprintf("must be >= %d", min)
		if max > min {
			reason = fmt.Sprintf("must be between %d and %d", min, max)
		}
		return &ConstraintError{Field: field, Reason: reason}
	}
	return nil
}

func (p *strictPolicy) OneOf(field, value string, allowed ...string) error {
	if err := p.v.Var(value, "oneof="+strings.Join(allowed, " ")); err != nil {
		return &ConstraintError{
			Field:  field,
			Reason: fmt.Sprintf("must be one of [%s], got %q", strings.Join(allowed, " "), value),
		}
	}
	return nil
}

func (p *strictPolicy) UUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return &ConstraintError{Field: field, Reason: "must be a valid UUID"}
	}
	return nil
}

type permissivePolicy struct{}

func (permissivePolicy) StringLen(string, string, int, int) error { return nil }
func (permissivePolicy) IntRange(string, int, int, int) error     { return nil }
func (permissivePolicy) OneOf(string, string, ...string) error    { return nil }
func (permissivePolicy) UUID(string, string) error                { return nil }
