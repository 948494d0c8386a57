package trackstypes

import (
	"testing"

	"github.com/bsq-ports/tracks-rs/internal/value"
)

func TestFromValueAndToValueRoundTripEveryKind(t *testing.T) {
	cases := []value.Value{
		value.Float32(1.5),
		value.NewVec3(1, 2, 3),
		value.NewVec4(1, 2, 3, 4),
		value.NewQuaternion(0, 0, 0, 1),
	}
	for _, v := range cases {
		dto := FromValue(v)
		back, err := dto.ToValue()
		if err != nil {
			t.Fatalf("ToValue: %v", err)
		}
		if !back.Equal(v) {
			t.Errorf("round trip mismatch: %v -> %v -> %v", v.Slice(), dto, back.Slice())
		}
	}
}

func TestToValueRejectsUnknownKind(t *testing.T) {
	dto := ValueDTO{Kind: "matrix4", Components: []float32{1}}
	if _, err := dto.ToValue(); err == nil {
		t.Fatal("expected an error for an unrecognized kind name")
	}
}

func TestToValueRejectsWrongComponentCount(t *testing.T) {
	dto := ValueDTO{Kind: "vec3", Components: []float32{1, 2}}
	if _, err := dto.ToValue(); err == nil {
		t.Fatal("expected an error for a component count that doesn't match the kind's arity")
	}
}

func TestParseKindResolvesKnownNames(t *testing.T) {
	k, ok := ParseKind("quaternion")
	if !ok || k != value.Quaternion {
		t.Errorf("expected quaternion to resolve, got %v (ok=%v)", k, ok)
	}
	if _, ok := ParseKind("nonsense"); ok {
		t.Error("expected an unknown kind name to fail to resolve")
	}
}
