// Package pathinterp implements path interpolation: a blend between a
// previous and current point definition, used by assign-path
// coroutines to cross-fade from whatever path was active before a new
// one is assigned. Blend is not animation time; it is the mix factor
// between the two definitions, advanced externally by the owning
// coroutine's eased progress.
package pathinterp

import (
	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/pointdef"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

// Interpolation holds the current and previous Point Definition
// references for one path-valued track property, plus the blend
// factor between them.
type Interpolation struct {
	Blend    float32
	Previous *pointdef.Definition
	Current  *pointdef.Definition
}

// Init assigns a new current point definition, demoting the old
// current to Previous and resetting Blend to 0: the next Interpolate
// calls will cross-fade from the old path to the new one as the
// caller advances Blend.
func (pi *Interpolation) Init(next *pointdef.Definition) {
	pi.Blend = 0
	pi.Previous = pi.Current
	pi.Current = next
}

// Finish drops Previous, ending the cross-fade: only Current
// contributes from this point on.
func (pi *Interpolation) Finish() {
	pi.Previous = nil
}

// SetBlend sets the blend factor in [0,1] between Previous and
// Current, driven by the owning coroutine's eased progress.
func (pi *Interpolation) SetBlend(t float32) { pi.Blend = t }

// Interpolate evaluates both definitions at time and lerps them by
// Blend; with no Previous it returns Current's value directly; with
// neither definition assigned it reports ok=false.
func (pi *Interpolation) Interpolate(time float32, ctx *baseprovider.Context) (value.Value, bool, error) {
	switch {
	case pi.Previous != nil && pi.Current != nil:
		a, _, err := pi.Previous.Interpolate(time, ctx)
		if err != nil {
			return value.Value{}, false, err
		}
		b, _, err := pi.Current.Interpolate(time, ctx)
		if err != nil {
			return value.Value{}, false, err
		}
		out, ok := value.Lerp(a, b, pi.Blend)
		if !ok {
			return value.Value{}, false, nil
		}
		return out, true, nil
	case pi.Current != nil:
		v, _, err := pi.Current.Interpolate(time, ctx)
		return v, true, err
	default:
		return value.Value{}, false, nil
	}
}
