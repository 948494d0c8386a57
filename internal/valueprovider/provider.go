// Package valueprovider implements the seven value-provider variants:
// Static, BaseProvider, Quaternion, Partial, Smooth, SmoothRotation
// and HostExtension. Each is a lazy producer of a flat float vector,
// parameterized by the base provider context.
package valueprovider

import (
	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
)

// Provider is the shared contract: Values(ctx) returns a borrowed
// float slice. HasBaseProvider reports whether this provider's output
// can change between ticks (a live channel read, or a smoothing
// variant advanced by Update), which drives the non-lazy
// re-evaluation flag propagated up through Modifier.
type Provider interface {
	Values(ctx *baseprovider.Context) ([]float32, error)
	HasBaseProvider() bool
}

// Updatable is implemented by the variants the host may advance one
// tick's worth of time: Smooth, SmoothRotation and Partial. Delta is
// the caller's chosen mix factor in [0,1], not seconds.
type Updatable interface {
	Provider
	Update(ctx *baseprovider.Context, delta float32) error
}
