package onemanage

import (
	"github.com/banglin/go-nd-endpoints/basepath"
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/field"
	"github.com/banglin/go-nd-endpoints/queryparams"
)

// FabricConfigDeploy deploys the configuration of a multi-cluster fabric.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/config-deploy
type FabricConfigDeploy struct {
	FabricName  field.String
	QueryParams *queryparams.FabricConfigDeploy
}

// NewFabricConfigDeploy returns a descriptor with no fields set.
func NewFabricConfigDeploy() *FabricConfigDeploy {
	return &FabricConfigDeploy{
		FabricName:  field.FabricName(),
		QueryParams: queryparams.NewFabricConfigDeploy(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *FabricConfigDeploy) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageFabrics(fabric, "config-deploy"), e.QueryParams), nil
}

func (e *FabricConfigDeploy) Verb() endpoint.Verb { return endpoint.VerbPost }

// FabricConfigDeploySwitch deploys the configuration of one switch in a
// multi-cluster fabric.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/config-deploy/{switchSN}
type FabricConfigDeploySwitch struct {
	FabricName  field.String
	SwitchSn    field.String
	QueryParams *queryparams.FabricConfigDeploy
}

// NewFabricConfigDeploySwitch returns a descriptor with no fields set.
func NewFabricConfigDeploySwitch() *FabricConfigDeploySwitch {
	return &FabricConfigDeploySwitch{
		FabricName:  field.FabricName(),
		SwitchSn:    field.SwitchSerialNumber(),
		QueryParams: queryparams.NewFabricConfigDeploy(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *FabricConfigDeploySwitch) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	sn, err := e.SwitchSn.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageFabrics(fabric, "config-deploy", sn), e.QueryParams), nil
}

func (e *FabricConfigDeploySwitch) Verb() endpoint.Verb { return endpoint.VerbPost }

// FabricConfigPreview previews the pending configuration of a multi-cluster
// fabric.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/config-preview
type FabricConfigPreview struct {
	FabricName  field.String
	QueryParams *queryparams.FabricConfigPreview
}

// NewFabricConfigPreview returns a descriptor with no fields set.
func NewFabricConfigPreview() *FabricConfigPreview {
	return &FabricConfigPreview{
		FabricName:  field.FabricName(),
		QueryParams: queryparams.NewFabricConfigPreview(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *FabricConfigPreview) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageFabrics(fabric, "config-preview"), e.QueryParams), nil
}

func (e *FabricConfigPreview) Verb() endpoint.Verb { return endpoint.VerbGet }

// FabricConfigPreviewSwitch previews the pending configuration of one switch
// in a multi-cluster fabric.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/config-preview/{switchSN}
type FabricConfigPreviewSwitch struct {
	FabricName  field.String
	SwitchSn    field.String
	QueryParams *queryparams.FabricConfigPreview
}

// NewFabricConfigPreviewSwitch returns a descriptor with no fields set.
func NewFabricConfigPreviewSwitch() *FabricConfigPreviewSwitch {
	return &FabricConfigPreviewSwitch{
		FabricName:  field.FabricName(),
		SwitchSn:    field.SwitchSerialNumber(),
		QueryParams: queryparams.NewFabricConfigPreview(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *FabricConfigPreviewSwitch) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	sn, err := e.SwitchSn.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageFabrics(fabric, "config-preview", sn), e.QueryParams), nil
}

func (e *FabricConfigPreviewSwitch) Verb() endpoint.Verb { return endpoint.VerbGet }

// FabricConfigSave saves the configuration of a multi-cluster fabric.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/config-save
type FabricConfigSave struct {
	FabricName field.String
}

// NewFabricConfigSave returns a descriptor with no fields set.
func NewFabricConfigSave() *FabricConfigSave {
	return &FabricConfigSave{FabricName: field.FabricName()}
}

func (e *FabricConfigSave) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageFabrics(fabric, "config-save"), nil
}

func (e *FabricConfigSave) Verb() endpoint.Verb { return endpoint.VerbPost }

// FabricCreate creates a multi-cluster fabric. The fabric definition goes in
// the request body.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/fabrics
type FabricCreate struct{}

// NewFabricCreate returns the descriptor.
func NewFabricCreate() *FabricCreate { return &FabricCreate{} }

func (e *FabricCreate) Path() (string, error) { return basepath.OneManageFabrics(), nil }

func (e *FabricCreate) Verb() endpoint.Verb { return endpoint.VerbPost }

// FabricDelete deletes a multi-cluster fabric.
//
//	DELETE /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}
type FabricDelete struct {
	FabricName field.String
}

// NewFabricDelete returns a descriptor with no fields set.
func NewFabricDelete() *FabricDelete {
	return &FabricDelete{FabricName: field.FabricName()}
}

func (e *FabricDelete) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageFabrics(fabric), nil
}

func (e *FabricDelete) Verb() endpoint.Verb { return endpoint.VerbDelete }

// FabricDetails queries the details of a multi-cluster fabric.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}
type FabricDetails struct {
	FabricName field.String
}

// NewFabricDetails returns a descriptor with no fields set.
func NewFabricDetails() *FabricDetails {
	return &FabricDetails{FabricName: field.FabricName()}
}

func (e *FabricDetails) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageFabrics(fabric), nil
}

func (e *FabricDetails) Verb() endpoint.Verb { return endpoint.VerbGet }

// FabricGroupMembersGet retrieves the members of a multi-cluster fabric
// group.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/members
type FabricGroupMembersGet struct {
	FabricName field.String
}

// NewFabricGroupMembersGet returns a descriptor with no fields set.
func NewFabricGroupMembersGet() *FabricGroupMembersGet {
	return &FabricGroupMembersGet{FabricName: field.FabricName()}
}

func (e *FabricGroupMembersGet) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageFabrics(fabric, "members"), nil
}

func (e *FabricGroupMembersGet) Verb() endpoint.Verb { return endpoint.VerbGet }

// FabricGroupMembersUpdate adds members to or removes members from a
// multi-cluster fabric group. The clusterName/fabricName/operation triple
// goes in the request body.
//
//	PUT /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}/members
type FabricGroupMembersUpdate struct {
	FabricName field.String
}

// NewFabricGroupMembersUpdate returns a descriptor with no fields set.
func NewFabricGroupMembersUpdate() *FabricGroupMembersUpdate {
	return &FabricGroupMembersUpdate{FabricName: field.FabricName()}
}

func (e *FabricGroupMembersUpdate) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageFabrics(fabric, "members"), nil
}

func (e *FabricGroupMembersUpdate) Verb() endpoint.Verb { return endpoint.VerbPut }

// FabricGroupUpdate updates a multi-cluster fabric group. The fabric
// definition and nvPairs go in the request body.
//
//	PUT /appcenter/cisco/ndfc/api/v1/onemanage/fabrics/{fabricName}
type FabricGroupUpdate struct {
	FabricName field.String
}

// NewFabricGroupUpdate returns a descriptor with no fields set.
func NewFabricGroupUpdate() *FabricGroupUpdate {
	return &FabricGroupUpdate{FabricName: field.FabricName()}
}

func (e *FabricGroupUpdate) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageFabrics(fabric), nil
}

func (e *FabricGroupUpdate) Verb() endpoint.Verb { return endpoint.VerbPut }

// FabricsGet retrieves all multi-cluster fabrics.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/fabrics
type FabricsGet struct{}

// NewFabricsGet returns the descriptor.
func NewFabricsGet() *FabricsGet { return &FabricsGet{} }

func (e *FabricsGet) Path() (string, error) { return basepath.OneManageFabrics(), nil }

func (e *FabricsGet) Verb() endpoint.Verb { return endpoint.VerbGet }

var (
	_ endpoint.Descriptor = (*FabricConfigDeploy)(nil)
	_ endpoint.Descriptor = (*FabricConfigDeploySwitch)(nil)
	_ endpoint.Descriptor = (*FabricConfigPreview)(nil)
	_ endpoint.Descriptor = (*FabricConfigPreviewSwitch)(nil)
	_ endpoint.Descriptor = (*FabricConfigSave)(nil)
	_ endpoint.Descriptor = (*FabricCreate)(nil)
	_ endpoint.Descriptor = (*FabricDelete)(nil)
	_ endpoint.Descriptor = (*FabricDetails)(nil)
	_ endpoint.Descriptor = (*FabricGroupMembersGet)(nil)
	_ endpoint.Descriptor = (*FabricGroupMembersUpdate)(nil)
	_ endpoint.Descriptor = (*FabricGroupUpdate)(nil)
	_ endpoint.Descriptor = (*FabricsGet)(nil)
)
