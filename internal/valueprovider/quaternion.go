package valueprovider

import (
	"fmt"

	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/quatutil"
)

// Quaternion wraps another provider whose output is an xyzw
// quaternion and returns its Euler-degree triple, so downstream
// modifier math always sees degrees.
type Quaternion struct {
	Source Provider
}

// NewQuaternion wraps source, which must yield exactly 4 floats
// (x,y,z,w) when evaluated.
func NewQuaternion(source Provider) *Quaternion { return &Quaternion{Source: source} }

func (q *Quaternion) Values(ctx *baseprovider.Context) ([]float32, error) {
	raw, err := q.Source.Values(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) != 4 {
		return nil, fmt.Errorf("valueprovider: quaternion provider source yielded %d floats, want 4", len(raw))
	}
	x, y, z := quatutil.ToEulerDegrees(raw[0], raw[1], raw[2], raw[3])
	return []float32{x, y, z}, nil
}

func (q *Quaternion) HasBaseProvider() bool { return q.Source.HasBaseProvider() }
