// Package pointdef implements point-definition parsing and
// interpolation. A Definition is an ordered sequence of Points, each
// a root Modifier plus a time and an easing name; Interpolate
// binary-searches the sequence and blends the bracketing pair
// according to the value kind.
package pointdef

import (
	"sort"
	"strings"

	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/easing"
	"github.com/bsq-ports/tracks-rs/internal/enginelog"
	"github.com/bsq-ports/tracks-rs/internal/modifier"
	"github.com/bsq-ports/tracks-rs/internal/value"
	"github.com/bsq-ports/tracks-rs/internal/valueprovider"
)

// Point is one entry of a Definition: a root Modifier (built with
// OpNone), its time, its easing name, and the two kind-specific
// blend flags.
type Point struct {
	Modifier         *modifier.Modifier
	Time             float32
	Easing           string
	SplineCatmullRom bool // vec3 only, read off the RIGHT point of a pair
	LerpHSV          bool // vec4 only, read off the LEFT point of a pair
}

// HasBaseProvider reports whether this point's modifier depends on a
// live channel.
func (p Point) HasBaseProvider() bool { return p.Modifier.HasBaseProvider() }

// Definition is a parsed, time-sorted Point Definition for one value
// kind.
type Definition struct {
	kind   value.Kind
	points []Point
}

// Kind reports the definition's value kind.
func (d *Definition) Kind() value.Kind { return d.kind }

// Len reports the point count.
func (d *Definition) Len() int { return len(d.points) }

// Points returns the time-sorted point slice (read-only by
// convention; callers must not mutate it).
func (d *Definition) Points() []Point { return d.points }

// HasBaseProvider reports whether any point depends on a live
// channel: drives the coroutine scheduler's non-lazy re-evaluation
// flag.
func (d *Definition) HasBaseProvider() bool {
	for _, p := range d.points {
		if p.HasBaseProvider() {
			return true
		}
	}
	return false
}

// Parse builds a Definition from a decoded JSON array: numbers,
// strings and nested arrays, as produced by
// encoding/json.Unmarshal into []any. A flat single-point array (one
// whose first element is not itself an array) is wrapped as a
// single-point sequence with an implicit time of 0.
func Parse(kind value.Kind, raw []any, ctx *baseprovider.Context) (*Definition, error) {
	if len(raw) == 0 {
		return &Definition{kind: kind}, nil
	}

	root := raw
	if _, ok := raw[0].([]any); !ok {
		cloned := append(append([]any(nil), raw...), float64(0))
		root = []any{cloned}
	}

	var points []Point
	for _, rp := range root {
		if rp == nil {
			continue
		}
		arr, ok := rp.([]any)
		if !ok {
			continue
		}

		values, flags, mods := groupValues(arr)
		if len(values) == 0 {
			continue
		}

		providers, err := deserializeValues(values, ctx)
		if err != nil {
			return nil, err
		}

		children := make([]*modifier.Modifier, 0, len(mods))
		for _, mraw := range mods {
			child, err := deserializeModifier(mraw, kind, ctx)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

		easingName := "easeLinear"
		for _, f := range flags {
			if strings.HasPrefix(f, "ease") {
				if _, ok := easing.Lookup(f); ok {
					easingName = f
				} else {
					enginelog.UnknownEasing(f)
				}
				break
			}
		}

		pt, err := createPointData(kind, providers, flags, children, easingName, ctx)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Time < points[j].Time })
	return &Definition{kind: kind, points: points}, nil
}

// deserializeModifier recursively parses one nested modifier array:
// its own value/flag/modifier groups, a single operation flag, and
// child modifiers.
func deserializeModifier(raw []any, kind value.Kind, ctx *baseprovider.Context) (*modifier.Modifier, error) {
	values, flags, mods := groupValues(raw)

	providers, err := deserializeValues(values, ctx)
	if err != nil {
		return nil, err
	}

	children := make([]*modifier.Modifier, 0, len(mods))
	for _, mraw := range mods {
		child, err := deserializeModifier(mraw, kind, ctx)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	op := modifier.OpNone
	if len(flags) > 0 {
		op = modifier.ParseOperation(flags[0])
	}
	return createModifier(kind, providers, children, op, ctx)
}

// groupValues partitions one raw point/modifier array into its three
// groups: numbers and "base..." strings become value items (array
// order preserved); any other string is a flag; nested arrays are
// child modifiers.
func groupValues(raw []any) (values []any, flags []string, modifiers [][]any) {
	for _, it := range raw {
		switch v := it.(type) {
		case string:
			if strings.HasPrefix(v, "base") {
				values = append(values, v)
			} else {
				flags = append(flags, v)
			}
		case []any:
			modifiers = append(modifiers, v)
		default:
			values = append(values, v)
		}
	}
	return
}

// deserializeValues turns the value group into providers:
// consecutive numeric runs merge into one Static provider, and each
// "base..." string resolves to its own provider, in array order.
func deserializeValues(items []any, ctx *baseprovider.Context) ([]valueprovider.Provider, error) {
	var result []valueprovider.Provider
	start := 0

	closeRun := func(end int) {
		if end <= start {
			return
		}
		nums := make([]float32, 0, end-start)
		for _, it := range items[start:end] {
			if f, ok := toFloat(it); ok {
				nums = append(nums, f)
			}
		}
		if len(nums) > 0 {
			result = append(result, valueprovider.NewStatic(nums))
		}
	}

	for i, it := range items {
		if s, ok := it.(string); ok {
			closeRun(i)
			start = i + 1
			p, err := resolveBaseProvider(s, ctx)
			if err != nil {
				return nil, err
			}
			result = append(result, p)
		}
	}
	closeRun(len(items))
	return result, nil
}

func toFloat(it any) (float32, bool) {
	switch v := it.(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	default:
		return 0, false
	}
}

// resolveBaseProvider resolves a "base..." channel reference into a
// live provider, wrapping it in a QuaternionProvider when the channel
// itself is a quaternion so downstream math sees Euler degrees.
func resolveBaseProvider(name string, ctx *baseprovider.Context) (valueprovider.Provider, error) {
	spec, err := baseprovider.ResolveValueProvider(name)
	if err != nil {
		return nil, err
	}
	bp := valueprovider.NewBaseProvider(spec.ChannelName)
	if spec.WrapQuaternion {
		return valueprovider.NewQuaternion(bp), nil
	}
	return bp, nil
}

func containsFlag(flags []string, name string) bool {
	for _, f := range flags {
		if f == name {
			return true
		}
	}
	return false
}

// createModifier builds the point's root modifier: a single Static
// provider whose output is exactly the kind's Euler arity becomes a
// literal Modifier; anything else becomes a Dynamic one (truncated to
// arity by Modifier.EvaluateRaw).
func createModifier(kind value.Kind, providers []valueprovider.Provider, children []*modifier.Modifier, op modifier.Operation, ctx *baseprovider.Context) (*modifier.Modifier, error) {
	arity := modifier.EulerArity(kind)
	if len(providers) == 1 {
		if st, ok := providers[0].(*valueprovider.Static); ok {
			vals, _ := st.Values(ctx)
			if len(vals) == arity {
				return modifier.NewStatic(kind, vals, children, op)
			}
		}
	}
	return modifier.NewDynamic(kind, providers, children, op), nil
}

// createPointData assembles one Point: the point's time is the last
// float of a value list
// whose total length equals the kind's Euler arity plus one (value(s)
// plus an explicit time), extracted once at parse time; otherwise the
// time defaults to 0.
func createPointData(kind value.Kind, providers []valueprovider.Provider, flags []string, children []*modifier.Modifier, easingName string, ctx *baseprovider.Context) (Point, error) {
	timeSlots := modifier.EulerArity(kind) + 1

	totalLen := 0
	for _, p := range providers {
		vs, err := p.Values(ctx)
		if err != nil {
			return Point{}, err
		}
		totalLen += len(vs)
	}

	var t float32
	if totalLen == timeSlots && len(providers) > 0 {
		vs, err := providers[len(providers)-1].Values(ctx)
		if err != nil {
			return Point{}, err
		}
		if len(vs) > 0 {
			t = vs[len(vs)-1]
		}
	}

	m, err := createModifier(kind, providers, children, modifier.OpNone, ctx)
	if err != nil {
		return Point{}, err
	}

	return Point{
		Modifier:         m,
		Time:             t,
		Easing:           easingName,
		SplineCatmullRom: containsFlag(flags, "splineCatmullRom"),
		LerpHSV:          containsFlag(flags, "lerpHSV"),
	}, nil
}

// searchIndex finds the bracketing pair (l, r) with
// points[l].Time <= time < points[r].Time.
func searchIndex(points []Point, time float32) (int, int) {
	l, r := 0, len(points)
	for l < r-1 {
		m := (l + r) / 2
		if points[m].Time <= time {
			l = m
		} else {
			r = m
		}
	}
	return l, r
}

// Interpolate evaluates the definition at time, returning the blended
// value and whether time fell at or past the last point.
func (d *Definition) Interpolate(time float32, ctx *baseprovider.Context) (value.Value, bool, error) {
	if len(d.points) == 0 {
		return value.Default(d.kind), true, nil
	}

	last := d.points[len(d.points)-1]
	if last.Time <= time {
		v, err := last.Modifier.Evaluate(ctx)
		return v, true, err
	}

	first := d.points[0]
	if first.Time >= time {
		v, err := first.Modifier.Evaluate(ctx)
		return v, false, err
	}

	l, r := searchIndex(d.points, time)
	pl, pr := d.points[l], d.points[r]

	var normal float32
	if pr.Time-pl.Time != 0 {
		normal = (time - pl.Time) / (pr.Time - pl.Time)
	}
	eased := easing.Apply(pr.Easing, normal)

	vL, err := pl.Modifier.Evaluate(ctx)
	if err != nil {
		return value.Value{}, false, err
	}
	vR, err := pr.Modifier.Evaluate(ctx)
	if err != nil {
		return value.Value{}, false, err
	}

	switch d.kind {
	case value.Vec3:
		if pr.SplineCatmullRom {
			out, err := d.smoothVector3(l, r, eased, ctx)
			return out, false, err
		}
	case value.Vec4:
		if pl.LerpHSV {
			return lerpHSVVec4(vL, vR, eased), false, nil
		}
	}

	out, _ := value.Lerp(vL, vR, eased)
	return out, false, nil
}

// smoothVector3 implements the Catmull-Rom spline blend, clamping the
// outer control points to the pair's own endpoints at the sequence's
// boundaries.
func (d *Definition) smoothVector3(l, r int, t float32, ctx *baseprovider.Context) (value.Value, error) {
	pointA, err := d.points[l].Modifier.Evaluate(ctx)
	if err != nil {
		return value.Value{}, err
	}
	pointB, err := d.points[r].Modifier.Evaluate(ctx)
	if err != nil {
		return value.Value{}, err
	}

	p0 := pointA
	if l > 0 {
		p0, err = d.points[l-1].Modifier.Evaluate(ctx)
		if err != nil {
			return value.Value{}, err
		}
	}
	p3 := pointB
	if r+1 < len(d.points) {
		p3, err = d.points[r+1].Modifier.Evaluate(ctx)
		if err != nil {
			return value.Value{}, err
		}
	}

	tt := t * t
	ttt := tt * t

	q0 := -ttt + 2*tt - t
	q1 := 3*ttt - 5*tt + 2
	q2 := -3*ttt + 4*tt + t
	q3 := ttt - tt

	out := value.NewVec3(0, 0, 0)
	for i := 0; i < 3; i++ {
		out.SetAt(i, 0.5*(p0.At(i)*q0+pointA.At(i)*q1+pointB.At(i)*q2+p3.At(i)*q3))
	}
	return out, nil
}
