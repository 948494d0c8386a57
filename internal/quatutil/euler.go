// Package quatutil converts between quaternions and Euler-degree
// triples using the engine's single fixed convention: intrinsic
// rotation applied Z, then X, then Y (Unity's convention).
// Every conversion site in the engine (modifier evaluation, the
// QuaternionProvider, SmoothRotation) routes through this package so
// the convention is applied exactly once.
package quatutil

import "math"

// FromEulerDegrees builds q = qZ(z) * qX(x) * qY(y), the Hamilton
// product of the three elemental axis-angle quaternions composed in
// that order for an intrinsic Z,X,Y rotation.
func FromEulerDegrees(xDeg, yDeg, zDeg float32) (x, y, z, w float32) {
	hx := deg2rad(xDeg) / 2
	hy := deg2rad(yDeg) / 2
	hz := deg2rad(zDeg) / 2

	sx, cx := math.Sincos(hx)
	sy, cy := math.Sincos(hy)
	sz, cz := math.Sincos(hz)

	// qZ * qX
	zxX, zxY, zxZ, zxW := hamilton(
		0, 0, sz, cz,
		sx, 0, 0, cx,
	)
	// (qZ*qX) * qY
	rx, ry, rz, rw := hamilton(zxX, zxY, zxZ, zxW, 0, sy, 0, cy)
	return float32(rx), float32(ry), float32(rz), float32(rw)
}

// ToEulerDegrees decomposes q back into Euler degrees for the same
// Z,X,Y intrinsic convention. Derived symbolically from the rotation
// matrix M = Rz * Rx * Ry:
//
//	x = asin(clamp(M[2][1], -1, 1))
//	y = atan2(-M[2][0], M[2][2])
//	z = atan2(-M[0][1], M[1][1])
//
// Inverse of FromEulerDegrees up to quaternion sign and the usual
// +/-180 degree Euler ambiguity.
func ToEulerDegrees(x, y, z, w float32) (xDeg, yDeg, zDeg float32) {
	xf, yf, zf, wf := float64(x), float64(y), float64(z), float64(w)

	m21 := 2 * (yf*zf + wf*xf)
	m20 := 2 * (xf*zf - wf*yf)
	m22 := 1 - 2*(xf*xf+yf*yf)
	m01 := 2 * (xf*yf - wf*zf)
	m11 := 1 - 2*(xf*xf+zf*zf)

	m21 = clamp(m21, -1, 1)
	rx := math.Asin(m21)
	ry := math.Atan2(-m20, m22)
	rz := math.Atan2(-m01, m11)

	return float32(rad2deg(rx)), float32(rad2deg(ry)), float32(rad2deg(rz))
}

// hamilton computes the Hamilton product of two quaternions (x,y,z,w).
func hamilton(ax, ay, az, aw, bx, by, bz, bw float64) (x, y, z, w float64) {
	x = aw*bx + ax*bw + ay*bz - az*by
	y = aw*by - ax*bz + ay*bw + az*bx
	z = aw*bz + ax*by - ay*bx + az*bw
	w = aw*bw - ax*bx - ay*by - az*bz
	return
}

func deg2rad(d float32) float64 { return float64(d) * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
