// Package endpoint defines the contract shared by all ND/NDFC endpoint
// descriptors: a composed URL path and a fixed HTTP verb. Concrete
// descriptors live in the onemanage and infra subpackages.
package endpoint

// Descriptor represents one API operation. Path fails with a descriptive
// error when a required path parameter has not been set; Verb never fails.
type Descriptor interface {
	Path() (string, error)
	Verb() Verb
}
