package queryparams

import (
	"testing"

	"github.com/banglin/go-nd-endpoints/endpoint"
)

func TestComposite_Empty(t *testing.T) {
	c := NewComposite()
	if !c.IsEmpty() {
		t.Error("expected new composite to be empty")
	}
	if c.ToQueryString() != "" {
		t.Errorf("expected empty render, got %q", c.ToQueryString())
	}
}

func TestComposite_AddOrder(t *testing.T) {
	deploy := NewFabricConfigDeploy()
	if err := deploy.SetForceShowRun(endpoint.BoolStringTrue); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	lucene := NewLucene()
	if err := lucene.SetMax(50); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}

	c := NewComposite().Add(deploy).Add(lucene)
	if c.ToQueryString() != "forceShowRun=true&max=50" {
		t.Errorf("expected Add-order render, got %q", c.ToQueryString())
	}

	// reversed Add order reverses the fragments
	reversed := NewComposite().Add(lucene).Add(deploy)
	if reversed.ToQueryString() != "max=50&forceShowRun=true" {
		t.Errorf("expected reversed render, got %q", reversed.ToQueryString())
	}
}

func TestComposite_EmptyMembersElided(t *testing.T) {
	deploy := NewFabricConfigDeploy() // stays empty
	lucene := NewLucene()
	if err := lucene.SetMax(10); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	names := NewVrfNames() // stays empty

	c := NewComposite().Add(deploy).Add(lucene).Add(names)
	if c.ToQueryString() != "max=10" {
		t.Errorf("empty members must contribute nothing, got %q", c.ToQueryString())
	}
	if c.IsEmpty() {
		t.Error("composite with one non-empty member is not empty")
	}
}

func TestComposite_AllMembersEmpty(t *testing.T) {
	c := NewComposite().Add(NewFabricConfigDeploy()).Add(NewLucene())
	if !c.IsEmpty() {
		t.Error("expected composite of empty members to be empty")
	}
	if c.ToQueryString() != "" {
		t.Errorf("expected empty render, got %q", c.ToQueryString())
	}
}

func TestComposite_MembersLive(t *testing.T) {
	// a member mutated after Add renders its current state
	lucene := NewLucene()
	c := NewComposite().Add(lucene)
	if !c.IsEmpty() {
		t.Error("expected composite to be empty before member is set")
	}
	if err := lucene.SetOffset(5); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if c.ToQueryString() != "offset=5" {
		t.Errorf("expected member's current state, got %q", c.ToQueryString())
	}
}

func TestComposite_Clear(t *testing.T) {
	lucene := NewLucene()
	if err := lucene.SetMax(10); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	c := NewComposite().Add(lucene)
	c.Clear()
	if !c.IsEmpty() {
		t.Error("expected composite to be empty after Clear")
	}
	if c.ToQueryString() != "" {
		t.Errorf("expected empty render after Clear, got %q", c.ToQueryString())
	}
}

func TestComposite_ImplementsGroup(t *testing.T) {
	var _ Group = NewComposite()
}

func TestComposite_Nested(t *testing.T) {
	inner := NewComposite().Add(mustLuceneMax(t, 5))
	outer := NewComposite().Add(inner).Add(mustLuceneMax(t, 7))
	if outer.ToQueryString() != "max=5&max=7" {
		t.Errorf("expected nested composite to flatten in order, got %q", outer.ToQueryString())
	}
}

func mustLuceneMax(t *testing.T, v int) *Lucene {
	t.Helper()
	l := NewLucene()
	if err := l.SetMax(v); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	return l
}
