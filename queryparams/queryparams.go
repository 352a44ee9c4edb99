// Package queryparams provides the query parameter groups that endpoint
// descriptors expose: endpoint-specific groups with typed optional fields,
// a Lucene-style filter group for search/list endpoints, and a composite
// that renders multiple groups as one query string.
//
// Constraint violations surface when a field is set, never at render time.
// Rendered strings carry no leading "?".
package queryparams

import "strings"

// Group is a query parameter container that renders itself as a query
// string fragment.
type Group interface {
	// ToQueryString renders all set fields as key=value pairs joined by
	// "&", in declaration order, with no leading "?". An empty group
	// renders as "".
	ToQueryString() string
	// IsEmpty reports whether no field has been set.
	IsEmpty() bool
}

// CamelCase converts a snake_case parameter name to the camelCase form the
// ND API expects (force_show_run -> forceShowRun).
func CamelCase(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

type pair struct {
	key   string
	value string
}

// joinPairs renders pairs as key=value joined by "&".
func joinPairs(pairs []pair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+p.value)
	}
	return strings.Join(parts, "&")
}
