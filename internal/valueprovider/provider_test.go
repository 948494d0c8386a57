package valueprovider

import (
	"testing"

	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

func TestStaticReturnsItsFixedValuesAndNeverNeedsABaseProvider(t *testing.T) {
	s := NewStatic([]float32{1, 2, 3})
	vs, err := s.Values(baseprovider.New())
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Errorf("unexpected values: %v", vs)
	}
	if s.HasBaseProvider() {
		t.Error("a Static provider must never report HasBaseProvider")
	}
}

func TestStaticCopiesItsInputSoMutationIsolatesTheSource(t *testing.T) {
	src := []float32{1, 2, 3}
	s := NewStatic(src)
	src[0] = 99
	vs, _ := s.Values(baseprovider.New())
	if vs[0] != 1 {
		t.Error("mutating the slice passed to NewStatic must not affect the provider")
	}
}

func TestBaseProviderReadsLiveChannel(t *testing.T) {
	ctx := baseprovider.New()
	if err := ctx.Set(baseprovider.ChEnergy, value.Float32(0.5)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	bp := NewBaseProvider(baseprovider.ChEnergy)
	vs, err := bp.Values(ctx)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if len(vs) != 1 || vs[0] != 0.5 {
		t.Errorf("expected [0.5], got %v", vs)
	}
	if !bp.HasBaseProvider() {
		t.Error("a BaseProvider must always report HasBaseProvider")
	}
}

func TestSmoothTracksTargetTowardOneAtFullRate(t *testing.T) {
	ctx := baseprovider.New()
	if err := ctx.Set(baseprovider.ChEnergy, value.Float32(1)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	smooth := NewSmooth(NewBaseProvider(baseprovider.ChEnergy), 1)

	if err := smooth.Update(ctx, 1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	vs, err := smooth.Values(ctx)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if vs[0] != 1 {
		t.Errorf("expected smoothing at delta*mult=1 to fully reach the target, got %v", vs[0])
	}
}

func TestSmoothClampsRateBeyondOne(t *testing.T) {
	ctx := baseprovider.New()
	if err := ctx.Set(baseprovider.ChEnergy, value.Float32(1)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	smooth := NewSmooth(NewBaseProvider(baseprovider.ChEnergy), 5)
	if err := smooth.Update(ctx, 1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	vs, _ := smooth.Values(ctx)
	if vs[0] != 1 {
		t.Errorf("expected a clamped rate to still land exactly on the target, got %v", vs[0])
	}
}

func TestPartialProjectsSelectedIndices(t *testing.T) {
	p := NewPartial([]float32{10, 20, 30, 40}, []int{0, 2})
	vs, err := p.Values(baseprovider.New())
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if len(vs) != 2 || vs[0] != 10 || vs[1] != 30 {
		t.Errorf("expected [10 30], got %v", vs)
	}
	if p.HasBaseProvider() {
		t.Error("a Partial provider over a fixed snapshot must never report HasBaseProvider")
	}
}

func TestPartialOutOfRangeIndexIsSkippedNotPanicked(t *testing.T) {
	p := NewPartial([]float32{1, 2}, []int{0, 5})
	vs, err := p.Values(baseprovider.New())
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if vs[1] != 0 {
		t.Errorf("expected an out-of-range index to project to 0, got %v", vs[1])
	}
}

func TestQuaternionProviderConvertsIdentityToZeroEuler(t *testing.T) {
	q := NewQuaternion(NewStatic([]float32{0, 0, 0, 1}))
	vs, err := q.Values(baseprovider.New())
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	for i, f := range vs {
		if f < -1e-3 || f > 1e-3 {
			t.Errorf("expected identity quaternion to decompose to ~0 euler, component %d = %v", i, f)
		}
	}
}

func TestQuaternionProviderRejectsWrongArity(t *testing.T) {
	q := NewQuaternion(NewStatic([]float32{1, 2, 3}))
	if _, err := q.Values(baseprovider.New()); err == nil {
		t.Fatal("expected an error wrapping a 3-float source as a quaternion provider")
	}
}

func TestQuaternionProviderDelegatesHasBaseProvider(t *testing.T) {
	q := NewQuaternion(NewBaseProvider(baseprovider.ChHeadRotation))
	if !q.HasBaseProvider() {
		t.Error("expected HasBaseProvider to be delegated to a live-channel source")
	}
}
