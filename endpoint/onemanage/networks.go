package onemanage

import (
	"github.com/banglin/go-nd-endpoints/basepath"
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/field"
	"github.com/banglin/go-nd-endpoints/queryparams"
)

// NetworkCreate creates a network in a multi-cluster fabric. The network
// definition goes in the request body.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/networks
type NetworkCreate struct {
	FabricName field.String
}

// NewNetworkCreate returns a descriptor with no fields set.
func NewNetworkCreate() *NetworkCreate {
	return &NetworkCreate{FabricName: field.FabricName()}
}

func (e *NetworkCreate) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageTopDownFabrics(fabric, "networks"), nil
}

func (e *NetworkCreate) Verb() endpoint.Verb { return endpoint.VerbPost }

// NetworkUpdate updates a single network in a multi-cluster fabric.
//
//	PUT /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/networks/{networkName}
type NetworkUpdate struct {
	FabricName  field.String
	NetworkName field.String
}

// NewNetworkUpdate returns a descriptor with no fields set.
func NewNetworkUpdate() *NetworkUpdate {
	return &NetworkUpdate{
		FabricName:  field.FabricName(),
		NetworkName: field.NetworkName(),
	}
}

func (e *NetworkUpdate) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	network, err := e.NetworkName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageTopDownFabrics(fabric, "networks", network), nil
}

func (e *NetworkUpdate) Verb() endpoint.Verb { return endpoint.VerbPut }

// NetworksDelete bulk-deletes networks from a multi-cluster fabric. The
// networks to delete are named in the network-names query parameter.
//
//	DELETE /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/bulk-delete/networks
type NetworksDelete struct {
	FabricName  field.String
	QueryParams *queryparams.NetworkNames
}

// NewNetworksDelete returns a descriptor with no fields set.
func NewNetworksDelete() *NetworksDelete {
	return &NetworksDelete{
		FabricName:  field.FabricName(),
		QueryParams: queryparams.NewNetworkNames(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *NetworksDelete) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageTopDownFabrics(fabric, "bulk-delete", "networks"), e.QueryParams), nil
}

func (e *NetworksDelete) Verb() endpoint.Verb { return endpoint.VerbDelete }

// NetworksGet retrieves all networks of a multi-cluster fabric.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/networks
type NetworksGet struct {
	FabricName field.String
}

// NewNetworksGet returns a descriptor with no fields set.
func NewNetworksGet() *NetworksGet {
	return &NetworksGet{FabricName: field.FabricName()}
}

func (e *NetworksGet) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageTopDownFabrics(fabric, "networks"), nil
}

func (e *NetworksGet) Verb() endpoint.Verb { return endpoint.VerbGet }

var (
	_ endpoint.Descriptor = (*NetworkCreate)(nil)
	_ endpoint.Descriptor = (*NetworkUpdate)(nil)
	_ endpoint.Descriptor = (*NetworksDelete)(nil)
	_ endpoint.Descriptor = (*NetworksGet)(nil)
)
