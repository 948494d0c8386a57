package value

import (
	"fmt"
	"math"
)

// Value is a Base Value: a kind tag plus its flat float storage.
// Floats are stored x,y,z,w as applicable; unused trailing slots are
// zero and ignored by Arity.
type Value struct {
	kind Kind
	data [4]float32
}

// Float32 constructs a scalar Base Value.
func Float32(f float32) Value { return Value{kind: Float, data: [4]float32{f}} }

// NewVec3 constructs a 3-vector Base Value.
func NewVec3(x, y, z float32) Value { return Value{kind: Vec3, data: [4]float32{x, y, z}} }

// NewVec4 constructs a 4-vector Base Value.
func NewVec4(x, y, z, w float32) Value { return Value{kind: Vec4, data: [4]float32{x, y, z, w}} }

// NewQuaternion constructs a quaternion Base Value (x,y,z,w).
func NewQuaternion(x, y, z, w float32) Value {
	return Value{kind: Quaternion, data: [4]float32{x, y, z, w}}
}

// IdentityQuaternion is the no-rotation quaternion.
func IdentityQuaternion() Value { return NewQuaternion(0, 0, 0, 1) }

// FromSlice builds the correct kind from a flat slice plus an
// is-quaternion hint: length 1 -> float, 3 -> vec3, 4 with hint ->
// quaternion else vec4. Any other length is a construction error.
func FromSlice(flat []float32, isQuaternion bool) (Value, error) {
	switch len(flat) {
	case 1:
		return Float32(flat[0]), nil
	case 3:
		return NewVec3(flat[0], flat[1], flat[2]), nil
	case 4:
		if isQuaternion {
			return NewQuaternion(flat[0], flat[1], flat[2], flat[3]), nil
		}
		return NewVec4(flat[0], flat[1], flat[2], flat[3]), nil
	default:
		return Value{}, fmt.Errorf("value: cannot build a Base Value from %d floats", len(flat))
	}
}

// Kind reports the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// Slice returns a read-only flat float view sized to the kind's arity.
func (v Value) Slice() []float32 {
	return v.data[:v.kind.Arity()]
}

// At indexes a component; panics if idx is out of range for the kind.
func (v Value) At(idx int) float32 { return v.data[:v.kind.Arity()][idx] }

// SetAt mutates a component in place.
func (v *Value) SetAt(idx int, f float32) { v.data[idx] = f }

// Equal reports exact componentwise equality; mismatched kinds are
// never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	n := v.kind.Arity()
	for i := 0; i < n; i++ {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Scale multiplies every component by s.
func (v Value) Scale(s float32) Value {
	out := v
	n := v.kind.Arity()
	for i := 0; i < n; i++ {
		out.data[i] = v.data[i] * s
	}
	return out
}

// Div divides every component by s.
func (v Value) Div(s float32) Value { return v.Scale(1 / s) }

// Lerp interpolates between two same-kind values; quaternions use
// spherical linear interpolation along the shortest arc. Mixed kinds
// are a caller error (returns the zero Value and false).
func Lerp(a, b Value, t float32) (Value, bool) {
	if a.kind != b.kind {
		return Value{}, false
	}
	if a.kind == Quaternion {
		return slerp(a, b, t), true
	}
	out := Value{kind: a.kind}
	n := a.kind.Arity()
	for i := 0; i < n; i++ {
		out.data[i] = a.data[i] + (b.data[i]-a.data[i])*t
	}
	return out, true
}

func slerp(a, b Value, t float32) Value {
	ax, ay, az, aw := a.data[0], a.data[1], a.data[2], a.data[3]
	bx, by, bz, bw := b.data[0], b.data[1], b.data[2], b.data[3]

	dot := float64(ax*bx + ay*by + az*bz + aw*bw)
	if dot < 0 {
		bx, by, bz, bw = -bx, -by, -bz, -bw
		dot = -dot
	}

	const epsilon = 1e-6
	if dot > 1-epsilon {
		// Nearly parallel: fall back to a normalized linear blend.
		x := ax + (bx-ax)*t
		y := ay + (by-ay)*t
		z := az + (bz-az)*t
		w := aw + (bw-aw)*t
		return normalizeQuat(x, y, z, w)
	}

	theta0 := math.Acos(dot)
	theta := theta0 * float64(t)
	sinTheta0 := math.Sin(theta0)
	sinTheta := math.Sin(theta)

	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	x := float32(float64(ax)*s0 + float64(bx)*s1)
	y := float32(float64(ay)*s0 + float64(by)*s1)
	z := float32(float64(az)*s0 + float64(bz)*s1)
	w := float32(float64(aw)*s0 + float64(bw)*s1)
	return NewQuaternion(x, y, z, w)
}

func normalizeQuat(x, y, z, w float32) Value {
	n := math.Sqrt(float64(x*x + y*y + z*z + w*w))
	if n == 0 {
		return IdentityQuaternion()
	}
	inv := float32(1 / n)
	return NewQuaternion(x*inv, y*inv, z*inv, w*inv)
}

// Default returns the zero value of a kind: 0 for float/vec3/vec4,
// identity for quaternion.
func Default(k Kind) Value {
	if k == Quaternion {
		return IdentityQuaternion()
	}
	return Value{kind: k}
}
