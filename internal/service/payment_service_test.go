package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewPaymentReference(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	ref := newPaymentReference(id)

	if ref != "CC-A1B2C3D4" {
		t.Errorf("reference = %q, want CC-A1B2C3D4", ref)
	}
}

func TestNewPaymentReferenceShape(t *testing.T) {
	for i := 0; i < 10; i++ {
		ref := newPaymentReference(uuid.New())
		if !strings.HasPrefix(ref, "CC-") {
			t.Fatalf("reference %q missing CC- prefix", ref)
		}
		if len(ref) != 11 {
			t.Fatalf("reference %q has length %d, want 11", ref, len(ref))
		}
		if ref != strings.ToUpper(ref) {
			t.Fatalf("reference %q is not uppercase", ref)
		}
	}
}
