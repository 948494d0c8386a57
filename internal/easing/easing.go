// Package easing implements the 32 named easing functions:
// easeLinear, easeStep, and 30 ease{In,Out,InOut}{Quad,Cubic,Quart,
// Quint,Sine,Circ,Expo,Elastic,Back,Bounce} variants, the standard
// Penner easing equations.
package easing

import "math"

// Func maps normalized progress in [0,1] to eased progress.
type Func func(t float32) float32

var table = map[string]Func{
	"easeLinear": Linear,
	"easeStep":   Step,

	"easeInQuad":  inQuad,
	"easeOutQuad": outQuad,
	"easeInOutQuad": inOutQuad,

	"easeInCubic":    inCubic,
	"easeOutCubic":   outCubic,
	"easeInOutCubic": inOutCubic,

	"easeInQuart":    inQuart,
	"easeOutQuart":   outQuart,
	"easeInOutQuart": inOutQuart,

	"easeInQuint":    inQuint,
	"easeOutQuint":   outQuint,
	"easeInOutQuint": inOutQuint,

	"easeInSine":    inSine,
	"easeOutSine":   outSine,
	"easeInOutSine": inOutSine,

	"easeInCirc":    inCirc,
	"easeOutCirc":   outCirc,
	"easeInOutCirc": inOutCirc,

	"easeInExpo":    inExpo,
	"easeOutExpo":   outExpo,
	"easeInOutExpo": inOutExpo,

	"easeInElastic":    inElastic,
	"easeOutElastic":   outElastic,
	"easeInOutElastic": inOutElastic,

	"easeInBack":    inBack,
	"easeOutBack":   outBack,
	"easeInOutBack": inOutBack,

	"easeInBounce":    inBounce,
	"easeOutBounce":   outBounce,
	"easeInOutBounce": inOutBounce,
}

// Lookup returns the named easing function and whether the name was
// recognized. Callers (point-definition parsing) are responsible for
// substituting Linear on a false result; Lookup itself never silently
// falls back.
func Lookup(name string) (Func, bool) {
	f, ok := table[name]
	return f, ok
}

// Apply looks up name and applies it to t, falling back to Linear for
// an unrecognized name.
func Apply(name string, t float32) float32 {
	f, ok := table[name]
	if !ok {
		return Linear(t)
	}
	return f(t)
}

func Linear(t float32) float32 { return t }

func Step(t float32) float32 {
	if t < 1 {
		return 0
	}
	return 1
}

func inQuad(t float32) float32  { return t * t }
func outQuad(t float32) float32 { return 1 - (1-t)*(1-t) }
func inOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - pow2(-2*t+2)/2
}

func inCubic(t float32) float32  { return t * t * t }
func outCubic(t float32) float32 { return 1 - pow3(1-t) }
func inOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow3(-2*t+2)/2
}

func inQuart(t float32) float32  { return pow4(t) }
func outQuart(t float32) float32 { return 1 - pow4(1-t) }
func inOutQuart(t float32) float32 {
	if t < 0.5 {
		return 8 * pow4(t)
	}
	return 1 - pow4(-2*t+2)/2
}

func inQuint(t float32) float32  { return pow5(t) }
func outQuint(t float32) float32 { return 1 - pow5(1-t) }
func inOutQuint(t float32) float32 {
	if t < 0.5 {
		return 16 * pow5(t)
	}
	return 1 - pow5(-2*t+2)/2
}

func inSine(t float32) float32  { return float32(1 - math.Cos(float64(t)*math.Pi/2)) }
func outSine(t float32) float32 { return float32(math.Sin(float64(t) * math.Pi / 2)) }
func inOutSine(t float32) float32 {
	return float32(-(math.Cos(math.Pi*float64(t)) - 1) / 2)
}

func inCirc(t float32) float32 {
	return float32(1 - math.Sqrt(1-pow2f64(float64(t))))
}
func outCirc(t float32) float32 {
	return float32(math.Sqrt(1 - pow2f64(float64(t)-1)))
}
func inOutCirc(t float32) float32 {
	x := float64(t)
	if x < 0.5 {
		return float32((1 - math.Sqrt(1-pow2f64(2*x))) / 2)
	}
	return float32((math.Sqrt(1-pow2f64(-2*x+2)) + 1) / 2)
}

func inExpo(t float32) float32 {
	if t == 0 {
		return 0
	}
	return float32(math.Pow(2, 10*float64(t)-10))
}
func outExpo(t float32) float32 {
	if t == 1 {
		return 1
	}
	return float32(1 - math.Pow(2, -10*float64(t)))
}
func inOutExpo(t float32) float32 {
	x := float64(t)
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case x < 0.5:
		return float32(math.Pow(2, 20*x-10) / 2)
	default:
		return float32((2 - math.Pow(2, -20*x+10)) / 2)
	}
}

const elasticPeriod = 2 * math.Pi / 3
const elasticPeriod2 = 2 * math.Pi / 4.5

func inElastic(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	x := float64(t)
	return float32(-math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*elasticPeriod))
}
func outElastic(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	x := float64(t)
	return float32(math.Pow(2, -10*x)*math.Sin((x*10-0.75)*elasticPeriod) + 1)
}
func inOutElastic(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	x := float64(t)
	if x < 0.5 {
		return float32(-(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticPeriod2)) / 2)
	}
	return float32((math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticPeriod2))/2 + 1)
}

const backC1 = 1.70158
const backC2 = backC1 * 1.525
const backC3 = backC1 + 1

func inBack(t float32) float32 {
	x := float64(t)
	return float32(backC3*x*x*x - backC1*x*x)
}
func outBack(t float32) float32 {
	x := float64(t) - 1
	return float32(1 + backC3*x*x*x + backC1*x*x)
}
func inOutBack(t float32) float32 {
	x := float64(t)
	if x < 0.5 {
		return float32((pow2f64(2*x) * ((backC2+1)*2*x - backC2)) / 2)
	}
	y := 2*x - 2
	return float32((pow2f64(y)*((backC2+1)*(2*x-2)+backC2) + 2) / 2)
}

func outBounce(t float32) float32 {
	x := float64(t)
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case x < 1/d1:
		return float32(n1 * x * x)
	case x < 2/d1:
		x -= 1.5 / d1
		return float32(n1*x*x + 0.75)
	case x < 2.5/d1:
		x -= 2.25 / d1
		return float32(n1*x*x + 0.9375)
	default:
		x -= 2.625 / d1
		return float32(n1*x*x + 0.984375)
	}
}
func inBounce(t float32) float32 {
	return 1 - outBounce(1-t)
}
func inOutBounce(t float32) float32 {
	if t < 0.5 {
		return (1 - outBounce(1-2*t)) / 2
	}
	return (1 + outBounce(2*t-1)) / 2
}

func pow2(x float32) float32     { return x * x }
func pow3(x float32) float32     { return x * x * x }
func pow4(x float32) float32     { return x * x * x * x }
func pow5(x float32) float32     { return x * x * x * x * x }
func pow2f64(x float64) float64  { return x * x }
