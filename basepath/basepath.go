// Package basepath builds URL paths for the ND/NDFC API surface from static
// base segments and caller-supplied dynamic segments. Builders are pure and
// composable; they perform no validation or escaping. Segment content is
// validated earlier, at the field layer.
package basepath

const (
	// NDFCAPI is the root of the legacy NDFC API.
	NDFCAPI = "/appcenter/cisco/ndfc/api"
	// Login is the session login path.
	Login = "/login"
	// OneManagePrefix is the multi-cluster (OneManage) path prefix.
	OneManagePrefix = "/onemanage"

	infraAAA = "/api/v1/infra/aaa"
)

// join appends each segment to base with a single separator. Zero segments
// returns base unchanged, with no trailing slash.
func join(base string, segments ...string) string {
	p := base
	for _, s := range segments {
		p += "/" + s
	}
	return p
}

// API builds a path under the NDFC API root.
// Example: /appcenter/cisco/ndfc/api/custom/endpoint
func API(segments ...string) string {
	return join(NDFCAPI, segments...)
}

// V1 builds a path under the NDFC v1 API.
// Example: /appcenter/cisco/ndfc/api/v1/lan-fabric/rest
func V1(segments ...string) string {
	return API(append([]string{"v1"}, segments...)...)
}

// LANFabric builds a path under the LAN fabric API.
// Example: /appcenter/cisco/ndfc/api/v1/lan-fabric/rest/control
func LANFabric(segments ...string) string {
	return V1(append([]string{"lan-fabric"}, segments...)...)
}

// ControlFabrics builds a path under the LAN fabric control API.
// Example: /appcenter/cisco/ndfc/api/v1/lan-fabric/rest/control/fabrics/{fabric}/config-deploy
func ControlFabrics(segments ...string) string {
	return LANFabric(append([]string{"rest", "control", "fabrics"}, segments...)...)
}

// OneManage builds a path under the multi-cluster OneManage API.
// Example: /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabric}
func OneManage(segments ...string) string {
	return V1(append([]string{"onemanage"}, segments...)...)
}

// OneManageFabrics builds a path under the OneManage fabrics sub-resource.
// Example: /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabric}/config-deploy/{switchSN}
func OneManageFabrics(segments ...string) string {
	return OneManage(append([]string{"fabrics"}, segments...)...)
}

// OneManageLinks builds a path under the OneManage links sub-resource.
// Example: /appcenter/cisco/ndfc/api/v1/onemanage/links/{linkUUID}
func OneManageLinks(segments ...string) string {
	return OneManage(append([]string{"links"}, segments...)...)
}

// OneManageLinksFabrics builds a path for per-fabric link queries.
// Example: /appcenter/cisco/ndfc/api/v1/onemanage/links/fabrics/{fabric}
func OneManageLinksFabrics(segments ...string) string {
	return OneManageLinks(append([]string{"fabrics"}, segments...)...)
}

// OneManageTopDown builds a path under the OneManage top-down API.
// Example: /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabric}
func OneManageTopDown(segments ...string) string {
	return OneManage(append([]string{"top-down"}, segments...)...)
}

// OneManageTopDownFabrics builds a path under the top-down fabrics sub-resource.
// Example: /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabric}/vrfs
func OneManageTopDownFabrics(segments ...string) string {
	return OneManageTopDown(append([]string{"fabrics"}, segments...)...)
}

// InfraAAA builds a path under the ND Infra AAA API.
// Example: /api/v1/infra/aaa/localUsers/{loginID}
func InfraAAA(segments ...string) string {
	return join(infraAAA, segments...)
}
