package geom

import "math"

// Degree-based trigonometry. All orientation data in the field is recorded
// in degrees, so the whole package works in degrees and converts at the
// math library boundary.

// Sind returns the sine of x degrees.
func Sind(x float64) float64 {
	return math.Sin(x * math.Pi / 180)
}

// Cosd returns the cosine of x degrees.
func Cosd(x float64) float64 {
	return math.Cos(x * math.Pi / 180)
}

// Tand returns the tangent of x degrees.
func Tand(x float64) float64 {
	return math.Tan(x * math.Pi / 180)
}

// Asind returns the arcsine of x in degrees. The argument is clamped to
// [-1, 1] so accumulated rounding never produces NaN.
func Asind(x float64) float64 {
	return math.Asin(Clamp(x)) * 180 / math.Pi
}

// Acosd returns the arccosine of x in degrees, clamped like Asind.
func Acosd(x float64) float64 {
	return math.Acos(Clamp(x)) * 180 / math.Pi
}

// Atand returns the arctangent of x in degrees.
func Atand(x float64) float64 {
	return math.Atan(x) * 180 / math.Pi
}

// Atan2d returns the two-argument arctangent in degrees.
func Atan2d(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// Clamp limits x to the domain of asin/acos.
func Clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// Mod360 wraps an angle into [0, 360).
func Mod360(a float64) float64 {
	m := math.Mod(a, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// LinCosines converts a lineation azimuth and inclination to direction
// cosines. The vector points down-plunge, so a positive inclination gives a
// positive z component (lower hemisphere).
func LinCosines(azi, inc float64) Vec3 {
	return Vec3{
		X: Cosd(azi) * Cosd(inc),
		Y: Sind(azi) * Cosd(inc),
		Z: Sind(inc),
	}
}

// LinAngles converts a direction to lineation azimuth and inclination.
// The vector is flipped into the lower hemisphere first, so the returned
// inclination is always in [0, 90].
func LinAngles(v Vec3) (azi, inc float64) {
	n := v.unit()
	if n.Z < 0 {
		n = n.Neg()
	}
	return Mod360(Atan2d(n.Y, n.X)), Asind(n.Z)
}

// FolCosines converts a foliation dip direction and dip to the direction
// cosines of the plane's pole. The pole of a non-horizontal plane points
// into the upper hemisphere before normalization, hence the sign flips.
func FolCosines(azi, inc float64) Vec3 {
	return Vec3{
		X: -Cosd(azi) * Sind(inc),
		Y: -Sind(azi) * Sind(inc),
		Z: Cosd(inc),
	}
}

// FolAngles converts a plane's pole to dip direction and dip. The pole is
// flipped when its z component is negative; dip is the complement of the
// pole's inclination.
func FolAngles(v Vec3) (azi, inc float64) {
	n := v.unit()
	if n.Z < 0 {
		n = n.Neg()
	}
	return Mod360(Atan2d(n.Y, n.X) + 180), 90 - Asind(n.Z)
}
