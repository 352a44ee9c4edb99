// Package field provides the constrained parameter fields that endpoint
// descriptors compose. Each field knows its wire name and constraints,
// validates on Set through the configured validation policy, and reports a
// MissingFieldError when a descriptor requires it before it has been set.
package field

import (
	"fmt"

	"github.com/banglin/go-nd-endpoints/validation"
)

// MissingFieldError is returned when a required path parameter is read
// before it has been set.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s must be set before accessing path", e.Field)
}

// String is an optional string parameter with length constraints.
// The zero value is unusable; construct through the named constructors.
type String struct {
	name   string
	min    int
	max    int // 0 = unbounded
	policy validation.Policy
	value  *string
}

// NewString returns a string field with the given wire name and length
// bounds, validated through the default policy.
func NewString(name string, min, max int) String {
	return String{name: name, min: min, max: max, policy: validation.Default()}
}

// FabricName is a fabric name path parameter (1..64 characters).
func FabricName() String { return NewString("fabric_name", 1, 64) }

// SwitchSerialNumber is a switch serial number path parameter (non-empty).
func SwitchSerialNumber() String { return NewString("switch_sn", 1, 0) }

// NetworkName is a network name path parameter (1..64 characters).
func NetworkName() String { return NewString("network_name", 1, 64) }

// VrfName is a VRF name path parameter (1..64 characters).
func VrfName() String { return NewString("vrf_name", 1, 64) }

// LoginID is an ND local-user login ID path parameter (non-empty).
func LoginID() String { return NewString("login_id", 1, 0) }

// Name returns the field's declared name.
func (f *String) Name() string { return f.name }

// Set validates v against the field's constraints and stores it.
func (f *String) Set(v string) error {
	if err := f.policy.StringLen(f.name, v, f.min, f.max); err != nil {
		return err
	}
	f.value = &v
	return nil
}

// Get returns the stored value, or "" when unset.
func (f *String) Get() string {
	if f.value == nil {
		return ""
	}
	return *f.value
}

// IsSet reports whether the field has been set.
func (f *String) IsSet() bool { return f.value != nil }

// Clear unsets the field.
func (f *String) Clear() { f.value = nil }

// Require returns the stored value, or a MissingFieldError naming the field.
func (f *String) Require() (string, error) {
	if f.value == nil {
		return "", &MissingFieldError{Field: f.name}
	}
	return *f.value, nil
}

// Int is an optional integer parameter with numeric bounds.
type Int struct {
	name   string
	min    int
	max    int // equal to min or lower = no upper bound
	policy validation.Policy
	value  *int
}

// NewInt returns an integer field with the given wire name and bounds,
// validated through the default policy.
func NewInt(name string, min, max int) Int {
	return Int{name: name, min: min, max: max, policy: validation.Default()}
}

// Name returns the field's declared name.
func (f *Int) Name() string { return f.name }

// Set validates v against the field's bounds and stores it.
func (f *Int) Set(v int) error {
	if err := f.policy.IntRange(f.name, v, f.min, f.max); err != nil {
		return err
	}
	f.value = &v
	return nil
}

// Get returns the stored value, or 0 when unset.
func (f *Int) Get() int {
	if f.value == nil {
		return 0
	}
	return *f.value
}

// IsSet reports whether the field has been set.
func (f *Int) IsSet() bool { return f.value != nil }

// Clear unsets the field.
func (f *Int) Clear() { f.value = nil }

// UUID is an optional RFC 4122 identifier parameter.
type UUID struct {
	name   string
	policy validation.Policy
	value  *string
}

// LinkUUID is a link UUID path parameter.
func LinkUUID() UUID { return UUID{name: "link_uuid", policy: validation.Default()} }

// Name returns the field's declared name.
func (f *UUID) Name() string { return f.name }

// Set validates v as an RFC 4122 UUID and stores it verbatim.
func (f *UUID) Set(v string) error {
	if err := f.policy.UUID(f.name, v); err != nil {
		return err
	}
	f.value = &v
	return nil
}

// Get returns the stored value, or "" when unset.
func (f *UUID) Get() string {
	if f.value == nil {
		return ""
	}
	return *f.value
}

// IsSet reports whether the field has been set.
func (f *UUID) IsSet() bool { return f.value != nil }

// Clear unsets the field.
func (f *UUID) Clear() { f.value = nil }

// Require returns the stored value, or a MissingFieldError naming the field.
func (f *UUID) Require() (string, error) {
	if f.value == nil {
		return "", &MissingFieldError{Field: f.name}
	}
	return *f.value, nil
}
