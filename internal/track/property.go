// Package track implements tracks and their holder: the named slot
// collection a host game object reads each frame, plus a generational
// handle scheme for referencing tracks without pinning Go pointers
// across the coroutine scheduler's lifetime.
package track

import (
	"time"

	"github.com/bsq-ports/tracks-rs/internal/engineerr"
	"github.com/bsq-ports/tracks-rs/internal/pathinterp"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

// ValueProperty is a single optional, kind-checked Base Value slot
// with a last-write timestamp.
type ValueProperty struct {
	kind        value.Kind
	val         *value.Value
	lastUpdated time.Time
}

// NewValueProperty builds an empty property of the given kind.
func NewValueProperty(kind value.Kind) *ValueProperty {
	return &ValueProperty{kind: kind, lastUpdated: time.Now()}
}

// Kind reports the property's declared kind.
func (p *ValueProperty) Kind() value.Kind { return p.kind }

// Get returns the current value and whether one has been set.
func (p *ValueProperty) Get() (value.Value, bool) {
	if p.val == nil {
		return value.Value{}, false
	}
	return *p.val, true
}

// Set writes v, type-checking it against the property's kind and
// touching LastUpdated.
func (p *ValueProperty) Set(v value.Value) error {
	if v.Kind() != p.kind {
		return engineerr.KindMismatch("value property", p.kind, v.Kind())
	}
	cp := v
	p.val = &cp
	p.lastUpdated = time.Now()
	return nil
}

// Clear empties the property and touches LastUpdated.
func (p *ValueProperty) Clear() {
	p.val = nil
	p.lastUpdated = time.Now()
}

// LastUpdated reports when the property was last Set or Cleared.
func (p *ValueProperty) LastUpdated() time.Time { return p.lastUpdated }

// PathProperty pairs a Path Interpolation with the kind it carries.
type PathProperty struct {
	kind   value.Kind
	Interp pathinterp.Interpolation
}

// NewPathProperty builds an empty path property of the given kind.
func NewPathProperty(kind value.Kind) *PathProperty { return &PathProperty{kind: kind} }

// Kind reports the property's declared kind.
func (p *PathProperty) Kind() value.Kind { return p.kind }
