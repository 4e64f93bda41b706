package geom

import "math"

// Vec2 is a direction in the horizontal plane, used by the planar (rose
// diagram) pipeline. X points north and Y east, so Direction is a compass
// bearing.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V2 is a shorthand constructor for Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromDirection builds a unit Vec2 from a compass bearing in degrees.
func FromDirection(angle float64) Vec2 {
	return Vec2{X: Cosd(angle), Y: Sind(angle)}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar (z-component) cross product of v and w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Abs returns the Euclidean length of the vector.
func (v Vec2) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in the same direction, or
// ErrZeroVector when the length is numerically zero.
func (v Vec2) Normalized() (Vec2, error) {
	l := v.Abs()
	if l < 1e-12 {
		return Vec2{}, ErrZeroVector
	}
	return Vec2{v.X / l, v.Y / l}, nil
}

// Direction returns the compass bearing of the vector in [0, 360).
func (v Vec2) Direction() float64 {
	return Mod360(Atan2d(v.Y, v.X))
}

// Angle returns the angle between v and w in degrees, in [0, 180].
func (v Vec2) Angle(w Vec2) (float64, error) {
	uv, err := v.Normalized()
	if err != nil {
		return 0, err
	}
	uw, err := w.Normalized()
	if err != nil {
		return 0, err
	}
	return Acosd(uv.Dot(uw)), nil
}

// Rotate returns v rotated by angle degrees.
func (v Vec2) Rotate(angle float64) Vec2 {
	c, s := Cosd(angle), Sind(angle)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Equals reports equality within DefaultTolerance.
func (v Vec2) Equals(w Vec2) bool {
	return v.Sub(w).Abs() < DefaultTolerance
}
