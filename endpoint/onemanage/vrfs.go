package onemanage

import (
	"github.com/banglin/go-nd-endpoints/basepath"
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/field"
	"github.com/banglin/go-nd-endpoints/queryparams"
)

// VrfCreate creates a VRF in a multi-cluster fabric. The VRF definition
// goes in the request body.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/vrfs
type VrfCreate struct {
	FabricName field.String
}

// NewVrfCreate returns a descriptor with no fields set.
func NewVrfCreate() *VrfCreate {
	return &VrfCreate{FabricName: field.FabricName()}
}

func (e *VrfCreate) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageTopDownFabrics(fabric, "vrfs"), nil
}

func (e *VrfCreate) Verb() endpoint.Verb { return endpoint.VerbPost }

// VrfUpdate updates a single VRF in a multi-cluster fabric.
//
//	PUT /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/vrfs/{vrfName}
type VrfUpdate struct {
	FabricName field.String
	VrfName    field.String
}

// NewVrfUpdate returns a descriptor with no fields set.
func NewVrfUpdate() *VrfUpdate {
	return &VrfUpdate{
		FabricName: field.FabricName(),
		VrfName:    field.VrfName(),
	}
}

func (e *VrfUpdate) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	vrf, err := e.VrfName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageTopDownFabrics(fabric, "vrfs", vrf), nil
}

func (e *VrfUpdate) Verb() endpoint.Verb { return endpoint.VerbPut }

// VrfsDelete bulk-deletes VRFs from a multi-cluster fabric. The VRFs to
// delete are named in the vrf-names query parameter.
//
//	DELETE /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/bulk-delete/vrfs
type VrfsDelete struct {
	FabricName  field.String
	QueryParams *queryparams.VrfNames
}

// NewVrfsDelete returns a descriptor with no fields set.
func NewVrfsDelete() *VrfsDelete {
	return &VrfsDelete{
		FabricName:  field.FabricName(),
		QueryParams: queryparams.NewVrfNames(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *VrfsDelete) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageTopDownFabrics(fabric, "bulk-delete", "vrfs"), e.QueryParams), nil
}

func (e *VrfsDelete) Verb() endpoint.Verb { return endpoint.VerbDelete }

// VrfsGet retrieves all VRFs of a multi-cluster fabric.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/{fabricName}/vrfs
type VrfsGet struct {
	FabricName field.String
}

// NewVrfsGet returns a descriptor with no fields set.
func NewVrfsGet() *VrfsGet {
	return &VrfsGet{FabricName: field.FabricName()}
}

func (e *VrfsGet) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageTopDownFabrics(fabric, "vrfs"), nil
}

func (e *VrfsGet) Verb() endpoint.Verb { return endpoint.VerbGet }

var (
	_ endpoint.Descriptor = (*VrfCreate)(nil)
	_ endpoint.Descriptor = (*VrfUpdate)(nil)
	_ endpoint.Descriptor = (*VrfsDelete)(nil)
	_ endpoint.Descriptor = (*VrfsGet)(nil)
)
