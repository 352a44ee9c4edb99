package onemanage

import (
	"strings"
	"testing"

	"github.com/banglin/go-nd-endpoints/endpoint"
)

func TestNetworkCreate_Path(t *testing.T) {
	ep := NewNetworkCreate()
	if err := ep.FabricName.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	assertPath(t, ep, "/appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/Easy-Fabric/networks", endpoint.VerbPost)
}

func TestNetworkUpdate_Path(t *testing.T) {
	ep := NewNetworkUpdate()
	if err := ep.FabricName.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if err := ep.NetworkName.Set("MyNetwork1"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	assertPath(t, ep, "/appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/Easy-Fabric/networks/MyNetwork1", endpoint.VerbPut)
}

func TestNetworkUpdate_MissingNetworkName(t *testing.T) {
	ep := NewNetworkUpdate()
	if err := ep.FabricName.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	_, err := ep.Path()
	if err == nil {
		t.Fatal("expected error for unset network name")
	}
	if !strings.Contains(err.Error(), "network_name") {
		t.Errorf("expected error to name network_name, got: %v", err)
	}
}

func TestNetworksDelete_PathWithQuery(t *testing.T) {
	ep := NewNetworksDelete()
	if err := ep.FabricName.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if err := ep.QueryParams.SetNetworkNames("Net1,Net2"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	path, err := ep.Path()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	expected := "/appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/Easy-Fabric/bulk-delete/networks?network-names=Net1,Net2"
	if path != expected {
		t.Errorf("expected %q, got %q", expected, path)
	}
	if ep.Verb() != endpoint.VerbDelete {
		t.Errorf("expected DELETE, got %v", ep.Verb())
	}
}

func TestNetworksDelete_NoQuery(t *testing.T) {
	ep := NewNetworksDelete()
	if err := ep.FabricName.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	path, err := ep.Path()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if strings.Contains(path, "?") {
		t.Errorf("empty query group must not add a separator: %q", path)
	}
}

func TestNetworksGet_Path(t *testing.T) {
	ep := NewNetworksGet()
	if err := ep.FabricName.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	assertPath(t, ep, "/appcenter/cisco/ndfc/api/v1/onemanage/top-down/fabrics/Easy-Fabric/networks", endpoint.VerbGet)
}
