package pointdef

import (
	"math"

	"github.com/bsq-ports/tracks-rs/internal/value"
)

// lerpHSVVec4 blends two colors through HSV space: hue along the
// shortest arc, saturation/value/alpha linearly, then back to RGB.
func lerpHSVVec4(a, b value.Value, t float32) value.Value {
	ah, as, av := rgbToHSV(a.At(0), a.At(1), a.At(2))
	bh, bs, bv := rgbToHSV(b.At(0), b.At(1), b.At(2))

	h := lerpHueDegrees(ah, bh, t)
	s := as + (bs-as)*t
	v := av + (bv-av)*t
	r, g, bl := hsvToRGB(h, s, v)
	alpha := a.At(3) + (b.At(3)-a.At(3))*t

	return value.NewVec4(r, g, bl, alpha)
}

func lerpHueDegrees(a, b, t float32) float32 {
	delta := b - a
	for delta > 180 {
		delta -= 360
	}
	for delta < -180 {
		delta += 360
	}
	h := a + delta*t
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func rgbToHSV(r, g, b float32) (h, s, v float32) {
	maxc := max3(r, g, b)
	minc := min3(r, g, b)
	v = maxc
	delta := maxc - minc
	if delta == 0 {
		return 0, 0, v
	}
	if maxc != 0 {
		s = delta / maxc
	}
	switch maxc {
	case r:
		h = 60 * fmod32((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsvToRGB(h, s, v float32) (r, g, b float32) {
	c := v * s
	x := c * (1 - float32(math.Abs(float64(fmod32(h/60, 2)-1))))
	m := v - c

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

func fmod32(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
