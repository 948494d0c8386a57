package valueprovider

import "github.com/bsq-ports/tracks-rs/internal/baseprovider"

// Partial projects a subset of indices of a source slice into a
// smaller vector. Values returns the projected components, never the
// full source.
type Partial struct {
	source []float32
	parts  []int
	values []float32
}

// NewPartial builds a Partial provider over a fixed source slice,
// selecting the given 0-based indices.
func NewPartial(source []float32, parts []int) *Partial {
	src := make([]float32, len(source))
	copy(src, source)
	p := &Partial{source: src, parts: append([]int(nil), parts...), values: make([]float32, len(parts))}
	p.project()
	return p
}

func (p *Partial) project() {
	for i, idx := range p.parts {
		if idx >= 0 && idx < len(p.source) {
			p.values[i] = p.source[idx]
		}
	}
}

func (p *Partial) Values(_ *baseprovider.Context) ([]float32, error) { return p.values, nil }

func (p *Partial) HasBaseProvider() bool { return false }

// Update re-projects the selected indices from the source slice. The
// source for this variant is a fixed snapshot rather than a live
// provider, so delta is accepted for interface symmetry but otherwise
// unused.
func (p *Partial) Update(_ *baseprovider.Context, _ float32) error {
	p.project()
	return nil
}
