package field

import (
	"errors"
	"strings"
	"testing"

	"github.com/banglin/go-nd-endpoints/validation"
)

func TestString_SetValid(t *testing.T) {
	f := FabricName()
	if err := f.Set("Easy-Fabric"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if !f.IsSet() {
		t.Error("expected field to be set")
	}
	if f.Get() != "Easy-Fabric" {
		t.Errorf("expected \"Easy-Fabric\", got %q", f.Get())
	}
}

func TestString_SetInvalid(t *testing.T) {
	tests := []struct {
		name  string
		field String
		value string
	}{
		{"fabric name empty", FabricName(), ""},
		{"fabric name too long", FabricName(), strings.Repeat("a", 65)},
		{"network name too long", NetworkName(), strings.Repeat("n", 65)},
		{"vrf name empty", VrfName(), ""},
		{"switch sn empty", SwitchSerialNumber(), ""},
		{"login id empty", LoginID(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Set(tt.value)
			if err == nil {
				t.Fatal("expected constraint error")
			}
			var ce *validation.ConstraintError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConstraintError, got %T", err)
			}
			if tt.field.IsSet() {
				t.Error("rejected value must not be stored")
			}
		})
	}
}

func TestString_Require_Unset(t *testing.T) {
	f := FabricName()
	_, err := f.Require()
	if err == nil {
		t.Fatal("expected error for unset field")
	}
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %T", err)
	}
	if mfe.Field != "fabric_name" {
		t.Errorf("expected field fabric_name, got %q", mfe.Field)
	}
	if !strings.Contains(err.Error(), "must be set before accessing path") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestString_Require_Set(t *testing.T) {
	f := VrfName()
	if err := f.Set("MyVRF1"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	v, err := f.Require()
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if v != "MyVRF1" {
		t.Errorf("expected \"MyVRF1\", got %q", v)
	}
}

func TestString_Clear(t *testing.T) {
	f := SwitchSerialNumber()
	if err := f.Set("FOC12345678"); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	f.Clear()
	if f.IsSet() {
		t.Error("expected field to be unset after Clear")
	}
	if f.Get() != "" {
		t.Errorf("expected empty string after Clear, got %q", f.Get())
	}
}

func TestString_UnboundedMax(t *testing.T) {
	f := SwitchSerialNumber()
	long := strings.Repeat("F", 200)
	if err := f.Set(long); err != nil {
		t.Fatalf("expected nil error for unbounded field, got: %v", err)
	}
	if f.Get() != long {
		t.Error("expected long value to be stored")
	}
}

func TestInt_SetAndBounds(t *testing.T) {
	f := NewInt("max", 1, 10000)
	if err := f.Set(50); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if f.Get() != 50 {
		t.Errorf("expected 50, got %d", f.Get())
	}
	if err := f.Set(0); err == nil {
		t.Error("expected error below floor")
	}
	if err := f.Set(10001); err == nil {
		t.Error("expected error above ceiling")
	}
	// rejected values must not overwrite the stored one
	if f.Get() != 50 {
		t.Errorf("expected 50 after rejected sets, got %d", f.Get())
	}
	f.Clear()
	if f.IsSet() {
		t.Error("expected field to be unset after Clear")
	}
}

func TestUUID_Set(t *testing.T) {
	f := LinkUUID()
	const valid = "123e4567-e89b-12d3-a456-426614174000"
	if err := f.Set(valid); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if f.Get() != valid {
		t.Errorf("expected %q, got %q", valid, f.Get())
	}
}

func TestUUID_SetInvalid(t *testing.T) {
	f := LinkUUID()
	err := f.Set("not-a-uuid")
	if err == nil {
		t.Fatal("expected error for malformed UUID")
	}
	if !strings.Contains(err.Error(), "link_uuid") {
		t.Errorf("expected error to contain field name, got: %v", err)
	}
	if f.IsSet() {
		t.Error("rejected value must not be stored")
	}
}

func TestUUID_Require_Unset(t *testing.T) {
	f := LinkUUID()
	_, err := f.Require()
	if err == nil {
		t.Fatal("expected error for unset field")
	}
	if !strings.Contains(err.Error(), "link_uuid must be set before accessing path") {
		t.Errorf("unexpected message: %v", err)
	}
}
