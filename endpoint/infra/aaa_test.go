package infra

import (
	"testing"

	"github.com/banglin/go-nd-endpoints/endpoint"
)

func TestLocalUsersGet_Collection(t *testing.T) {
	ep := NewLocalUsersGet()
	path, err := ep.Path()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if path != "/api/v1/infra/aaa/localUsers" {
		t.Errorf("expected collection path, got %q", path)
	}
	if ep.Verb() != endpoint.VerbGet {
		t.Errorf("expected GET, got %v", ep.Verb())
	}
}

func TestLocalUsersGet_SingleUser(t *testing.T) {
	ep := NewLocalUsersGet()
	if err := ep.LoginID.Set("admin"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	path, err := ep.Path()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if path != "/api/v1/infra/aaa/localUsers/admin" {
		t.Errorf("expected per-user path, got %q", path)
	}
}

func TestLocalUsers_LoginIDClear(t *testing.T) {
	ep := NewLocalUsersGet()
	if err := ep.LoginID.Set("admin"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	ep.LoginID.Clear()
	path, err := ep.Path()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if path != "/api/v1/infra/aaa/localUsers" {
		t.Errorf("expected collection path after Clear, got %q", path)
	}
}

func TestLocalUsers_RejectsEmptyLoginID(t *testing.T) {
	ep := NewLocalUsersPut()
	if err := ep.LoginID.Set(""); err == nil {
		t.Fatal("expected error for empty login ID")
	}
}

func TestLocalUsers_Verbs(t *testing.T) {
	if NewLocalUsersGet().Verb() != endpoint.VerbGet {
		t.Error("expected GET")
	}
	if NewLocalUsersPost().Verb() != endpoint.VerbPost {
		t.Error("expected POST")
	}
	if NewLocalUsersPut().Verb() != endpoint.VerbPut {
		t.Error("expected PUT")
	}
	if NewLocalUsersDelete().Verb() != endpoint.VerbDelete {
		t.Error("expected DELETE")
	}
}

func TestLocalUsersPut_Path(t *testing.T) {
	ep := NewLocalUsersPut()
	if err := ep.LoginID.Set("operator"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	path, err := ep.Path()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if path != "/api/v1/infra/aaa/localUsers/operator" {
		t.Errorf("expected per-user path, got %q", path)
	}
}
