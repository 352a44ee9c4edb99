package onemanage

import (
	"github.com/banglin/go-nd-endpoints/basepath"
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/field"
	"github.com/banglin/go-nd-endpoints/queryparams"
)

// LinkCreate creates a link between fabrics in a multi-cluster setup. The
// link definition (clusters, devices, interfaces, template, nvPairs) goes
// in the request body.
//
//	POST /appcenter/cisco/ndfc/api/v1/onemanage/links
type LinkCreate struct{}

// NewLinkCreate returns the descriptor.
func NewLinkCreate() *LinkCreate { return &LinkCreate{} }

func (e *LinkCreate) Path() (string, error) { return basepath.OneManageLinks(), nil }

func (e *LinkCreate) Verb() endpoint.Verb { return endpoint.VerbPost }

// LinkGetByUUID retrieves a link by its UUID.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/links/{linkUUID}
type LinkGetByUUID struct {
	LinkUUID    field.UUID
	QueryParams *queryparams.LinkByUUID
}

// NewLinkGetByUUID returns a descriptor with no fields set.
func NewLinkGetByUUID() *LinkGetByUUID {
	return &LinkGetByUUID{
		LinkUUID:    field.LinkUUID(),
		QueryParams: queryparams.NewLinkByUUID(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *LinkGetByUUID) Path() (string, error) {
	id, err := e.LinkUUID.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageLinks(id), e.QueryParams), nil
}

func (e *LinkGetByUUID) Verb() endpoint.Verb { return endpoint.VerbGet }

// LinkUpdate updates a link by its UUID. The updated link definition goes
// in the request body.
//
//	PUT /appcenter/cisco/ndfc/api/v1/onemanage/links/{linkUUID}
type LinkUpdate struct {
	LinkUUID    field.UUID
	QueryParams *queryparams.LinkByUUID
}

// NewLinkUpdate returns a descriptor with no fields set.
func NewLinkUpdate() *LinkUpdate {
	return &LinkUpdate{
		LinkUUID:    field.LinkUUID(),
		QueryParams: queryparams.NewLinkByUUID(),
	}
}

// Path composes the endpoint path, including any set query parameters.
func (e *LinkUpdate) Path() (string, error) {
	id, err := e.LinkUUID.Require()
	if err != nil {
		return "", err
	}
	return withQuery(basepath.OneManageLinks(id), e.QueryParams), nil
}

func (e *LinkUpdate) Verb() endpoint.Verb { return endpoint.VerbPut }

// LinksDelete deletes links in a multi-cluster setup. The link UUID and
// cluster names go in the request body, which is why the verb is PUT
// rather than DELETE.
//
//	PUT /appcenter/cisco/ndfc/api/v1/onemanage/links
type LinksDelete struct{}

// NewLinksDelete returns the descriptor.
func NewLinksDelete() *LinksDelete { return &LinksDelete{} }

func (e *LinksDelete) Path() (string, error) { return basepath.OneManageLinks(), nil }

func (e *LinksDelete) Verb() endpoint.Verb { return endpoint.VerbPut }

// LinksGetByFabric retrieves the links of a multi-cluster fabric.
//
//	GET /appcenter/cisco/ndfc/api/v1/onemanage/links/fabrics/{fabricName}
type LinksGetByFabric struct {
	FabricName field.String
}

// NewLinksGetByFabric returns a descriptor with no fields set.
func NewLinksGetByFabric() *LinksGetByFabric {
	return &LinksGetByFabric{FabricName: field.FabricName()}
}

func (e *LinksGetByFabric) Path() (string, error) {
	fabric, err := e.FabricName.Require()
	if err != nil {
		return "", err
	}
	return basepath.OneManageLinksFabrics(fabric), nil
}

func (e *LinksGetByFabric) Verb() endpoint.Verb { return endpoint.VerbGet }

var (
	_ endpoint.Descriptor = (*LinkCreate)(nil)
	_ endpoint.Descriptor = (*LinkGetByUUID)(nil)
	_ endpoint.Descriptor = (*LinkUpdate)(nil)
	_ endpoint.Descriptor = (*LinksDelete)(nil)
	_ endpoint.Descriptor = (*LinksGetByFabric)(nil)
)
