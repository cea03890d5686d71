package wcsproj

import "math"

// All public interfaces trade in degrees; trig happens in radians at the
// call site, per-call, to keep the formulas readable next to the WCS paper.

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// r0 is the spherical radius that makes plane coordinates come out in
	// degree-like units, 180/pi.
	r0 = 180 / math.Pi

	// angleTol is the load-bearing tolerance of the WCS closed-form pole
	// solution. Near-degenerate configurations depend on this exact value.
	angleTol = 1e-5
)

func sind(a float64) float64 { return math.Sin(a * degToRad) }

func cosd(a float64) float64 { return math.Cos(a * degToRad) }

func tand(a float64) float64 { return math.Tan(a * degToRad) }

func sincosd(a float64) (float64, float64) {
	s, c := math.Sincos(a * degToRad)
	return s, c
}

func atand(v float64) float64 { return math.Atan(v) * radToDeg }

func atan2d(y, x float64) float64 { return math.Atan2(y, x) * radToDeg }

// asind clamps arguments a hair outside [-1,1] and lets anything further
// out poison the result with NaN, which the projection pipeline turns
// into a domain failure.
func asind(v float64) float64 {
	if v > 1 {
		if v > 1+1e-10 {
			return math.NaN()
		}
		v = 1
	} else if v < -1 {
		if v < -1-1e-10 {
			return math.NaN()
		}
		v = -1
	}
	return math.Asin(v) * radToDeg
}

func acosd(v float64) float64 {
	if v > 1 {
		if v > 1+1e-10 {
			return math.NaN()
		}
		v = 1
	} else if v < -1 {
		if v < -1-1e-10 {
			return math.NaN()
		}
		v = -1
	}
	return math.Acos(v) * radToDeg
}

// wrap180 folds an angle into [-180, 180].
func wrap180(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a < -180 {
		a += 360
	}
	return a
}

// wrap360 folds an angle into [0, 360).
func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
