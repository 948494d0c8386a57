package pathinterp

import (
	"testing"

	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/pointdef"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

func mustParse(t *testing.T, ctx *baseprovider.Context, raw []any) *pointdef.Definition {
	t.Helper()
	def, err := pointdef.Parse(value.Float, raw, ctx)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return def
}

func TestInterpolationNoPreviousReturnsCurrentDirectly(t *testing.T) {
	ctx := baseprovider.New()
	var pi Interpolation
	pi.Init(mustParse(t, ctx, []any{float64(5)}))

	v, ok, err := pi.Interpolate(0, ctx)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true with a current definition set")
	}
	if v.At(0) != 5 {
		t.Errorf("want 5, got %v", v.At(0))
	}
}

func TestInterpolationBlendsPreviousAndCurrent(t *testing.T) {
	ctx := baseprovider.New()
	var pi Interpolation
	pi.Init(mustParse(t, ctx, []any{float64(0)}))
	pi.Init(mustParse(t, ctx, []any{float64(10)}))
	pi.SetBlend(0.5)

	v, ok, err := pi.Interpolate(0, ctx)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if v.At(0) != 5 {
		t.Errorf("want midpoint 5, got %v", v.At(0))
	}
}

func TestInterpolationFinishDropsPrevious(t *testing.T) {
	ctx := baseprovider.New()
	var pi Interpolation
	pi.Init(mustParse(t, ctx, []any{float64(0)}))
	pi.Init(mustParse(t, ctx, []any{float64(10)}))
	pi.SetBlend(0.5)
	pi.Finish()

	v, ok, err := pi.Interpolate(0, ctx)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if v.At(0) != 10 {
		t.Errorf("want current-only value 10 after Finish, got %v", v.At(0))
	}
}

func TestInterpolationEmptyReportsNotOK(t *testing.T) {
	var pi Interpolation
	ctx := baseprovider.New()
	_, ok, err := pi.Interpolate(0, ctx)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if ok {
		t.Errorf("expected ok=false with no definitions assigned")
	}
}
