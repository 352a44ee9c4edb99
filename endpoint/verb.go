package endpoint

import "fmt"

// Verb is an HTTP method accepted by the ND/NDFC API.
type Verb string

const (
	VerbGet    Verb = "GET"
	VerbPost   Verb = "POST"
	VerbPut    Verb = "PUT"
	VerbDelete Verb = "DELETE"
)

// Verbs returns all declared verbs in declaration order.
func Verbs() []Verb {
	return []Verb{VerbGet, VerbPost, VerbPut, VerbDelete}
}

// String returns the verb as the literal the API expects.
func (v Verb) String() string { return string(v) }

// Valid reports whether v is a declared member.
func (v Verb) Valid() bool {
	switch v {
	case VerbGet, VerbPost, VerbPut, VerbDelete:
		return true
	}
	return false
}

// ParseVerb returns the Verb for a known literal, or an error for anything
// outside the declared set.
func ParseVerb(s string) (Verb, error) {
	v := Verb(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown HTTP verb %q", s)
	}
	return v, nil
}
