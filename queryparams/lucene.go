package queryparams

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/banglin/go-nd-endpoints/field"
	"github.com/banglin/go-nd-endpoints/validation"
)

// Lucene limits per the ND search API.
const (
	LuceneMaxResultsFloor   = 1
	LuceneMaxResultsCeiling = 10000
)

// Lucene holds the generic Lucene-style filtering and paging parameters
// accepted by ND search and list endpoints. Filter expressions support
// field:value terms, AND/OR/NOT combinators, wildcards, ranges
// ([a TO b]), and parentheses; the expression is passed through verbatim.
//
// URLEncode controls whether string values are percent-encoded when the
// group renders (space %20, colon %3A, asterisk %2A). It defaults to on;
// turn it off to inspect the raw expression.
type Lucene struct {
	URLEncode bool

	policy     validation.Policy
	filter     field.String
	maxResults field.Int
	offset     field.Int
	sort       field.String
	fields     field.String
}

// NewLucene returns an empty Lucene parameter group with URL encoding
// enabled.
func NewLucene() *Lucene {
	return &Lucene{
		URLEncode:  true,
		policy:     validation.Default(),
		filter:     field.NewString("filter", 1, 0),
		maxResults: field.NewInt("max", LuceneMaxResultsFloor, LuceneMaxResultsCeiling),
		offset:     field.NewInt("offset", 0, 0),
		sort:       field.NewString("sort", 1, 0),
		fields:     field.NewString("fields", 1, 0),
	}
}

// SetFilter sets the Lucene filter expression,
// e.g. "name:Spine* AND role:spine".
func (l *Lucene) SetFilter(v string) error { return l.filter.Set(v) }

// SetMax sets the maximum number of results (1..10000).
func (l *Lucene) SetMax(v int) error { return l.maxResults.Set(v) }

// SetOffset sets the paging offset (>= 0).
func (l *Lucene) SetOffset(v int) error { return l.offset.Set(v) }

// SetSort sets the sort directive, "key:asc" or "key:desc". The direction
// is validated case-insensitively; the value is stored as given.
func (l *Lucene) SetSort(v string) error {
	i := strings.LastIndex(v, ":")
	if i < 0 {
		return &validation.ConstraintError{Field: "sort", Reason: `must be "key:asc" or "key:desc"`}
	}
	dir := strings.ToLower(v[i+1:])
	if err := l.policy.OneOf("sort", dir, "asc", "desc"); err != nil {
		return &validation.ConstraintError{Field: "sort", Reason: `direction must be "asc" or "desc"`}
	}
	return l.sort.Set(v)
}

// SetFields sets the response field projection, e.g. "name,id,status".
func (l *Lucene) SetFields(v string) error { return l.fields.Set(v) }

// Filter returns the stored filter expression, or "" when unset.
func (l *Lucene) Filter() string { return l.filter.Get() }

// encodeValue percent-encodes a value the way the ND API expects: spaces
// as %20 rather than "+".
func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// ToQueryString renders the set parameters in declaration order: filter,
// max, offset, sort, fields.
func (l *Lucene) ToQueryString() string {
	enc := func(v string) string { return v }
	if l.URLEncode {
		enc = encodeValue
	}
	var pairs []pair
	if l.filter.IsSet() {
		pairs = append(pairs, pair{"filter", enc(l.filter.Get())})
	}
	if l.maxResults.IsSet() {
		pairs = append(pairs, pair{"max", strconv.Itoa(l.maxResults.Get())})
	}
	if l.offset.IsSet() {
		pairs = append(pairs, pair{"offset", strconv.Itoa(l.offset.Get())})
	}
	if l.sort.IsSet() {
		pairs = append(pairs, pair{"sort", enc(l.sort.Get())})
	}
	if l.fields.IsSet() {
		pairs = append(pairs, pair{"fields", enc(l.fields.Get())})
	}
	return joinPairs(pairs)
}

// IsEmpty reports whether no parameter has been set.
func (l *Lucene) IsEmpty() bool {
	return !l.filter.IsSet() && !l.maxResults.IsSet() && !l.offset.IsSet() &&
		!l.sort.IsSet() && !l.fields.IsSet()
}
