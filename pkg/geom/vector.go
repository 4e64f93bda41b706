package geom

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTolerance is the absolute component tolerance used by Equals.
const DefaultTolerance = 1e-15

// ErrZeroVector is returned when an operation needs a direction and the
// vector has (numerically) no length.
var ErrZeroVector = errors.New("geom: zero-length vector has no direction")

// Vec3 is a direction or magnitude vector in 3D Euclidean space.
// X points north, Y east and Z down, matching the geological lower
// hemisphere convention. Vec3 is an immutable value; every method returns
// a new value.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is a shorthand constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("V(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Abs returns the Euclidean length of the vector.
func (v Vec3) Abs() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether the vector has no usable direction.
func (v Vec3) IsZero() bool {
	return v.Abs() < 1e-12
}

// Normalized returns the unit vector in the same direction, or
// ErrZeroVector when the length is numerically zero.
func (v Vec3) Normalized() (Vec3, error) {
	l := v.Abs()
	if l < 1e-12 {
		return Vec3{}, ErrZeroVector
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, nil
}

// unit normalizes without the error check, for callers that already hold a
// non-zero vector.
func (v Vec3) unit() Vec3 {
	l := v.Abs()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Angle returns the angle between v and w in degrees, in [0, 180].
// Either operand being a zero vector is an error.
func (v Vec3) Angle(w Vec3) (float64, error) {
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

// Rotate returns v rotated by angle degrees about axis using the Rodrigues
// rotation formula. The axis need not be unit length but must be non-zero.
func (v Vec3) Rotate(axis Vec3, angle float64) Vec3 {
	k := axis.unit()
	c, s := Cosd(angle), Sind(angle)
	return v.Scale(c).
		Add(k.Cross(v).Scale(s)).
		Add(k.Scale(k.Dot(v) * (1 - c)))
}

// Proj returns the vector projection of v onto w.
func (v Vec3) Proj(w Vec3) (Vec3, error) {
	d := w.Dot(w)
	if d < 1e-12*1e-12 {
		return Vec3{}, ErrZeroVector
	}
	return w.Scale(v.Dot(w) / d), nil
}

// Transform returns the affine transformation of v by matrix m.
func (v Vec3) Transform(m Mat3) Vec3 {
	return m.Apply(v)
}

// Equals reports component-wise equality within DefaultTolerance.
func (v Vec3) Equals(w Vec3) bool {
	return v.EqualsTol(w, DefaultTolerance)
}

// EqualsTol reports whether the distance between v and w is below tol.
func (v Vec3) EqualsTol(w Vec3, tol float64) bool {
	return v.Sub(w).Abs() < tol
}

// Lerp returns the linear interpolation between v and w at t in [0,1].
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}
