// Package modifier implements the typed arithmetic tree behind point
// evaluation: a node per scalar kind holding either a static literal
// or a list of value providers, plus child modifiers combined by a
// left fold over {none, add, sub, mul, div}. One Modifier type keyed
// by value.Kind covers all four kinds.
package modifier

import (
	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/engineerr"
	"github.com/bsq-ports/tracks-rs/internal/podium"
	"github.com/bsq-ports/tracks-rs/internal/quatutil"
	"github.com/bsq-ports/tracks-rs/internal/value"
	"github.com/bsq-ports/tracks-rs/internal/valueprovider"
)

// Operation tags how a child Modifier folds into its parent's
// accumulator.
type Operation int

const (
	OpNone Operation = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// ParseOperation maps the parsed-tree flag strings opAdd/opSub/opMul/
// opDiv to an Operation; anything else (including ordinary easing or
// flag strings) resolves to OpNone.
func ParseOperation(s string) Operation {
	switch s {
	case "opAdd":
		return OpAdd
	case "opSub":
		return OpSub
	case "opMul":
		return OpMul
	case "opDiv":
		return OpDiv
	default:
		return OpNone
	}
}

// EulerArity returns the number of raw floats Modifier arithmetic
// operates on for a kind: 1/3/4 for float/vec3/vec4, and 3 (Euler
// degrees, not xyzw) for quaternion.
func EulerArity(k value.Kind) int {
	if k == value.Quaternion {
		return 3
	}
	return k.Arity()
}

// Modifier is one node of the arithmetic tree.
type Modifier struct {
	kind      value.Kind
	static    []float32 // non-nil (incl. possibly empty-arity-0) when this node holds a literal
	isStatic  bool
	providers []valueprovider.Provider
	children  []*Modifier
	operation Operation // how this node folds into ITS parent
	hasBase   bool
}

// NewStatic builds a leaf Modifier from a literal of the kind's Euler
// arity.
func NewStatic(kind value.Kind, literal []float32, children []*Modifier, op Operation) (*Modifier, error) {
	if len(literal) != EulerArity(kind) {
		return nil, engineerr.Arity(kind, EulerArity(kind), len(literal))
	}
	m := &Modifier{kind: kind, static: append([]float32(nil), literal...), isStatic: true, children: children, operation: op}
	m.hasBase = computeHasBase(false, children)
	return m, nil
}

// NewDynamic builds a Modifier whose base value comes from
// concatenating the float outputs of providers, in order, truncated
// to the kind's arity.
func NewDynamic(kind value.Kind, providers []valueprovider.Provider, children []*Modifier, op Operation) *Modifier {
	dynamicBase := false
	for _, p := range providers {
		if p.HasBaseProvider() {
			dynamicBase = true
			break
		}
	}
	m := &Modifier{kind: kind, providers: providers, children: children, operation: op}
	m.hasBase = computeHasBase(dynamicBase, children)
	return m
}

func computeHasBase(selfDynamic bool, children []*Modifier) bool {
	if selfDynamic {
		return true
	}
	for _, c := range children {
		if c.hasBase {
			return true
		}
	}
	return false
}

// Operation reports the operation this modifier applies when folded
// into its parent.
func (m *Modifier) Operation() Operation { return m.operation }

// HasBaseProvider reports whether this modifier's value depends on a
// live channel, directly or through any descendant: drives non-lazy
// re-evaluation in the scheduler.
func (m *Modifier) HasBaseProvider() bool { return m.hasBase }

// Kind reports the modifier's scalar kind.
func (m *Modifier) Kind() value.Kind { return m.kind }

// basePoint computes the modifier's own base value, before folding
// children.
func (m *Modifier) basePoint(ctx *baseprovider.Context) ([]float32, error) {
	arity := EulerArity(m.kind)
	if m.isStatic {
		return m.static, nil
	}
	bufp := podium.Get()
	defer podium.Put(bufp)
	flat := *bufp
	for _, p := range m.providers {
		vs, err := p.Values(ctx)
		if err != nil {
			return nil, err
		}
		flat = append(flat, vs...)
	}
	if len(flat) < arity {
		return nil, engineerr.Arity(m.kind, arity, len(flat))
	}
	return append([]float32(nil), flat[:arity]...), nil
}

// EvaluateRaw computes the base value, then left-folds each child's
// evaluated value into the accumulator per the child's Operation.
// Returns the raw (Euler, for quaternion) components.
func (m *Modifier) EvaluateRaw(ctx *baseprovider.Context) ([]float32, error) {
	acc, err := m.basePoint(ctx)
	if err != nil {
		return nil, err
	}
	acc = append([]float32(nil), acc...)

	for _, child := range m.children {
		v, err := child.EvaluateRaw(ctx)
		if err != nil {
			return nil, err
		}
		switch child.operation {
		case OpAdd:
			for i := range acc {
				acc[i] += v[i]
			}
		case OpSub:
			for i := range acc {
				acc[i] -= v[i]
			}
		case OpMul:
			for i := range acc {
				acc[i] *= v[i]
			}
		case OpDiv:
			for i := range acc {
				acc[i] /= v[i]
			}
		default: // OpNone: replacement
			acc = append([]float32(nil), v...)
		}
	}
	return acc, nil
}

// Evaluate packs the raw result as a value of the modifier's kind,
// converting the final Euler triple to a quaternion via the engine's
// fixed convention when kind is Quaternion.
func (m *Modifier) Evaluate(ctx *baseprovider.Context) (value.Value, error) {
	raw, err := m.EvaluateRaw(ctx)
	if err != nil {
		return value.Value{}, err
	}
	if m.kind == value.Quaternion {
		x, y, z, w := quatutil.FromEulerDegrees(raw[0], raw[1], raw[2])
		return value.NewQuaternion(x, y, z, w), nil
	}
	return value.FromSlice(raw, false)
}
