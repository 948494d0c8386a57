// Package value implements the Base Value discriminated union: float,
// 3-vector, 4-vector and quaternion, each carrying a flat float
// representation so callers can treat every kind as a small slice of
// arity 1, 3 or 4.
package value

import "fmt"

// Kind tags the shape of a Base Value.
type Kind int

const (
	Float Kind = iota
	Vec3
	Vec4
	Quaternion
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Quaternion:
		return "quaternion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Arity returns the number of float components the kind carries. For
// quaternion this is 4 (x,y,z,w); modifier arithmetic instead works in
// Euler-degree space with arity 3 (see package modifier).
func (k Kind) Arity() int {
	switch k {
	case Float:
		return 1
	case Vec3:
		return 3
	case Vec4, Quaternion:
		return 4
	default:
		return 0
	}
}
