// Package onemanage provides endpoint descriptors for the NDFC OneManage
// (multi-cluster) API: fabric lifecycle and config operations, inter-fabric
// links, and top-down network/VRF provisioning.
//
// Descriptors are constructed with defaults, configured field by field, and
// then read. Path returns an error naming the first required path parameter
// that has not been set.
package onemanage

import (
	"github.com/banglin/go-nd-endpoints/queryparams"
)

// withQuery appends a group's query string to a path. Returns the path
// unchanged when the group renders empty.
func withQuery(path string, g queryparams.Group) string {
	if qs := g.ToQueryString(); qs != "" {
		return path + "?" + qs
	}
	return path
}
