package valueprovider

import "github.com/bsq-ports/tracks-rs/internal/baseprovider"

// Smooth linearly tracks another producer with a per-tick rate; state
// evolves via Update.
type Smooth struct {
	source Provider
	mult   float32
	values []float32
}

// NewSmooth wraps source with a rate multiplier applied to each
// Update's delta.
func NewSmooth(source Provider, mult float32) *Smooth {
	return &Smooth{source: source, mult: mult}
}

func (s *Smooth) Values(ctx *baseprovider.Context) ([]float32, error) {
	target, err := s.source.Values(ctx)
	if err != nil {
		return nil, err
	}
	if len(s.values) != len(target) {
		return make([]float32, len(target)), nil
	}
	out := make([]float32, len(s.values))
	copy(out, s.values)
	return out, nil
}

func (s *Smooth) HasBaseProvider() bool { return true }

// Update advances each tracked component toward the source's current
// value by delta*mult, clamped to [0,1].
func (s *Smooth) Update(ctx *baseprovider.Context, delta float32) error {
	target, err := s.source.Values(ctx)
	if err != nil {
		return err
	}
	if len(s.values) != len(target) {
		s.values = make([]float32, len(target))
	}
	rate := delta * s.mult
	for i := range s.values {
		s.values[i] = clampLerp(s.values[i], target[i], rate)
	}
	return nil
}

func clampLerp(start, end, t float32) float32 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return start + (end-start)*t
}
