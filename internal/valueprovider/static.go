package valueprovider

import "github.com/bsq-ports/tracks-rs/internal/baseprovider"

// Static owns a small, fixed float vector (typically <=4 entries);
// the slice never grows after construction.
type Static struct {
	values []float32
}

// NewStatic copies values into a new Static provider.
func NewStatic(values []float32) *Static {
	cp := make([]float32, len(values))
	copy(cp, values)
	return &Static{values: cp}
}

func (s *Static) Values(_ *baseprovider.Context) ([]float32, error) { return s.values, nil }

func (s *Static) HasBaseProvider() bool { return false }
