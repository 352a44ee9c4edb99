package queryparams

import "strings"

// Composite renders an ordered collection of parameter groups as one query
// string. Rendering order is Add order; this is a contract, not an
// accident. Members that render empty contribute nothing and introduce no
// stray separator.
type Composite struct {
	groups []Group
}

// NewComposite returns an empty composite.
func NewComposite() *Composite {
	return &Composite{}
}

// Add appends a group and returns the composite for chaining.
func (c *Composite) Add(g Group) *Composite {
	c.groups = append(c.groups, g)
	return c
}

// ToQueryString concatenates each non-empty member's fragment with "&" in
// Add order. No leading separator, no duplicate separators for empty
// members.
func (c *Composite) ToQueryString() string {
	var parts []string
	for _, g := range c.groups {
		if qs := g.ToQueryString(); qs != "" {
			parts = append(parts, qs)
		}
	}
	return strings.Join(parts, "&")
}

// IsEmpty reports whether every member is empty.
func (c *Composite) IsEmpty() bool {
	for _, g := range c.groups {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// Clear removes all members.
func (c *Composite) Clear() {
	c.groups = nil
}
