package queryparams

import (
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/field"
	"github.com/banglin/go-nd-endpoints/validation"
)

// setBoolString validates v against the declared boolean literals and
// stores it.
func setBoolString(p validation.Policy, name string, dst **endpoint.BoolString, v endpoint.BoolString) error {
	if err := p.OneOf(name, string(v), string(endpoint.BoolStringTrue), string(endpoint.BoolStringFalse)); err != nil {
		return err
	}
	*dst = &v
	return nil
}

// FabricConfigDeploy holds query parameters for fabric config-deploy
// endpoints.
type FabricConfigDeploy struct {
	policy             validation.Policy
	forceShowRun       *endpoint.BoolString
	inclAllMsdSwitches *endpoint.BoolString
}

// NewFabricConfigDeploy returns an empty config-deploy parameter group.
func NewFabricConfigDeploy() *FabricConfigDeploy {
	return &FabricConfigDeploy{policy: validation.Default()}
}

// SetForceShowRun selects whether the device's latest running config is
// fetched instead of the cached copy.
func (p *FabricConfigDeploy) SetForceShowRun(v endpoint.BoolString) error {
	return setBoolString(p.policy, "force_show_run", &p.forceShowRun, v)
}

// SetInclAllMsdSwitches selects whether MSD child fabric changes deploy too.
func (p *FabricConfigDeploy) SetInclAllMsdSwitches(v endpoint.BoolString) error {
	return setBoolString(p.policy, "incl_all_msd_switches", &p.inclAllMsdSwitches, v)
}

// ToQueryString renders the set parameters in declaration order.
func (p *FabricConfigDeploy) ToQueryString() string {
	var pairs []pair
	if p.forceShowRun != nil {
		pairs = append(pairs, pair{CamelCase("force_show_run"), p.forceShowRun.String()})
	}
	if p.inclAllMsdSwitches != nil {
		// the API spells MSD upper-case, not camelCase
		pairs = append(pairs, pair{"inclAllMSDSwitches", p.inclAllMsdSwitches.String()})
	}
	return joinPairs(pairs)
}

// IsEmpty reports whether no parameter has been set.
func (p *FabricConfigDeploy) IsEmpty() bool {
	return p.forceShowRun == nil && p.inclAllMsdSwitches == nil
}

// FabricConfigPreview holds query parameters for fabric config-preview
// endpoints.
type FabricConfigPreview struct {
	policy       validation.Policy
	forceShowRun *endpoint.BoolString
	showBrief    *endpoint.BoolString
}

// NewFabricConfigPreview returns an empty config-preview parameter group.
func NewFabricConfigPreview() *FabricConfigPreview {
	return &FabricConfigPreview{policy: validation.Default()}
}

// SetForceShowRun selects whether the device's latest running config is
// fetched instead of the cached copy.
func (p *FabricConfigPreview) SetForceShowRun(v endpoint.BoolString) error {
	return setBoolString(p.policy, "force_show_run", &p.forceShowRun, v)
}

// SetShowBrief selects brief output.
func (p *FabricConfigPreview) SetShowBrief(v endpoint.BoolString) error {
	return setBoolString(p.policy, "show_brief", &p.showBrief, v)
}

// ToQueryString renders the set parameters in declaration order.
func (p *FabricConfigPreview) ToQueryString() string {
	var pairs []pair
	if p.forceShowRun != nil {
		pairs = append(pairs, pair{CamelCase("force_show_run"), p.forceShowRun.String()})
	}
	if p.showBrief != nil {
		pairs = append(pairs, pair{CamelCase("show_brief"), p.showBrief.String()})
	}
	return joinPairs(pairs)
}

// IsEmpty reports whether no parameter has been set.
func (p *FabricConfigPreview) IsEmpty() bool {
	return p.forceShowRun == nil && p.showBrief == nil
}

// LinkByUUID holds query parameters for link-by-UUID endpoints: the source
// and destination cluster names of the multi-cluster link.
type LinkByUUID struct {
	sourceClusterName      field.String
	destinationClusterName field.String
}

// NewLinkByUUID returns an empty link-by-UUID parameter group.
func NewLinkByUUID() *LinkByUUID {
	return &LinkByUUID{
		sourceClusterName:      field.NewString("source_cluster_name", 1, 0),
		destinationClusterName: field.NewString("destination_cluster_name", 1, 0),
	}
}

// SetSourceClusterName sets the source cluster name (e.g. "nd-cluster-1").
func (p *LinkByUUID) SetSourceClusterName(v string) error {
	return p.sourceClusterName.Set(v)
}

// SetDestinationClusterName sets the destination cluster name.
func (p *LinkByUUID) SetDestinationClusterName(v string) error {
	return p.destinationClusterName.Set(v)
}

// ToQueryString renders the set parameters in declaration order.
func (p *LinkByUUID) ToQueryString() string {
	var pairs []pair
	if p.sourceClusterName.IsSet() {
		pairs = append(pairs, pair{CamelCase(p.sourceClusterName.Name()), p.sourceClusterName.Get()})
	}
	if p.destinationClusterName.IsSet() {
		pairs = append(pairs, pair{CamelCase(p.destinationClusterName.Name()), p.destinationClusterName.Get()})
	}
	return joinPairs(pairs)
}

// IsEmpty reports whether no parameter has been set.
func (p *LinkByUUID) IsEmpty() bool {
	return !p.sourceClusterName.IsSet() && !p.destinationClusterName.IsSet()
}

// NetworkNames holds the comma-separated network name list used by network
// bulk-delete endpoints.
type NetworkNames struct {
	networkNames field.String
}

// NewNetworkNames returns an empty network-names parameter group.
func NewNetworkNames() *NetworkNames {
	return &NetworkNames{networkNames: field.NewString("network_names", 1, 0)}
}

// SetNetworkNames sets the list, e.g. "Net1,Net2,Net3".
func (p *NetworkNames) SetNetworkNames(v string) error {
	return p.networkNames.Set(v)
}

// ToQueryString renders the set parameters.
func (p *NetworkNames) ToQueryString() string {
	if !p.networkNames.IsSet() {
		return ""
	}
	// the API uses kebab-case for this one parameter
	return joinPairs([]pair{{"network-names", p.networkNames.Get()}})
}

// IsEmpty reports whether no parameter has been set.
func (p *NetworkNames) IsEmpty() bool { return !p.networkNames.IsSet() }

// VrfNames holds the comma-separated VRF name list used by VRF bulk-delete
// endpoints.
type VrfNames struct {
	vrfNames field.String
}

// NewVrfNames returns an empty vrf-names parameter group.
func NewVrfNames() *VrfNames {
	return &VrfNames{vrfNames: field.NewString("vrf_names", 1, 0)}
}

// SetVrfNames sets the list, e.g. "VRF1,VRF2,VRF3".
func (p *VrfNames) SetVrfNames(v string) error {
	return p.vrfNames.Set(v)
}

// ToQueryString renders the set parameters.
func (p *VrfNames) ToQueryString() string {
	if !p.vrfNames.IsSet() {
		return ""
	}
	// the API uses kebab-case for this one parameter
	return joinPairs([]pair{{"vrf-names", p.vrfNames.Get()}})
}

// IsEmpty reports whether no parameter has been set.
func (p *VrfNames) IsEmpty() bool { return !p.vrfNames.IsSet() }
