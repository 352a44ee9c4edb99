package endpoint

import "fmt"

// BoolString is a boolean rendered as the literal strings "true"/"false"
// that ND query parameters expect, distinct from a native bool.
type BoolString string

const (
	BoolStringTrue  BoolString = "true"
	BoolStringFalse BoolString = "false"
)

// BoolStrings returns all declared members in declaration order.
func BoolStrings() []BoolString {
	return []BoolString{BoolStringTrue, BoolStringFalse}
}

// String returns the literal value.
func (b BoolString) String() string { return string(b) }

// Valid reports whether b is a declared member.
func (b BoolString) Valid() bool {
	return b == BoolStringTrue || b == BoolStringFalse
}

// FromBool converts a native bool to its BoolString form.
func FromBool(b bool) BoolString {
	if b {
		return BoolStringTrue
	}
	return BoolStringFalse
}

// ParseBoolString returns the BoolString for a known literal, or an error
// for anything outside the declared set.
func ParseBoolString(s string) (BoolString, error) {
	b := BoolString(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown boolean string %q (want \"true\" or \"false\")", s)
	}
	return b, nil
}
