package valueprovider

import (
	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/quatutil"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

// SmoothRotation spherically interpolates a running quaternion toward
// a target and exposes the Euler-degree triple.
type SmoothRotation struct {
	target   value.Value // quaternion
	mult     float32
	last     value.Value // quaternion, running state
	eulerOut [3]float32
}

// NewSmoothRotation builds a SmoothRotation tracking target at the
// given rate multiplier, starting from the identity rotation.
func NewSmoothRotation(target value.Value, mult float32) *SmoothRotation {
	return &SmoothRotation{target: target, mult: mult, last: value.IdentityQuaternion()}
}

func (s *SmoothRotation) Values(_ *baseprovider.Context) ([]float32, error) {
	out := s.eulerOut
	return out[:], nil
}

func (s *SmoothRotation) HasBaseProvider() bool { return true }

// Update slerps the running quaternion toward target by delta*mult
// and re-derives the Euler-degree triple.
func (s *SmoothRotation) Update(_ *baseprovider.Context, delta float32) error {
	blended, ok := value.Lerp(s.last, s.target, delta*s.mult)
	if !ok {
		return nil
	}
	s.last = blended
	slice := blended.Slice()
	x, y, z := quatutil.ToEulerDegrees(slice[0], slice[1], slice[2], slice[3])
	s.eulerOut = [3]float32{x, y, z}
	return nil
}
