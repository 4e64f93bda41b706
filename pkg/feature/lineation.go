package feature

import (
	"fmt"

	"github.com/geofabric/geofabric/pkg/geom"
)

// Lineation is a linear structural feature such as a fold axis or mineral
// stretching direction, represented axially by a direction vector.
type Lineation struct {
	v geom.Vec3
}

// NewLineation builds a Lineation from plunge azimuth and plunge in
// degrees. The stored vector points into the lower hemisphere.
func NewLineation(azi, inc float64) Lineation {
	return Lineation{v: geom.LinCosines(azi, inc)}
}

// LineationFromVec wraps an arbitrary non-zero vector as a Lineation.
// Magnitude is preserved.
func LineationFromVec(v geom.Vec3) (Lineation, error) {
	if v.IsZero() {
		return Lineation{}, geom.ErrZeroVector
	}
	return Lineation{v: v}, nil
}

// Vec returns the underlying direction vector.
func (l Lineation) Vec() geom.Vec3 {
	return l.v
}

// Geo returns plunge azimuth and plunge in degrees, normalized to the
// lower hemisphere.
func (l Lineation) Geo() (azi, inc float64) {
	return geom.LinAngles(l.v)
}

func (l Lineation) String() string {
	azi, inc := l.Geo()
	return fmt.Sprintf("L:%.0f/%.0f", azi, inc)
}

// Add combines two lineations with the axial rule: the operand is flipped
// into the hemisphere of l before ordinary vector addition.
func (l Lineation) Add(o Lineation) Lineation {
	return Lineation{v: l.v.Add(axialFix(l.v, o.v))}
}

// Sub subtracts with the same axial sign fix as Add.
func (l Lineation) Sub(o Lineation) Lineation {
	return Lineation{v: l.v.Sub(axialFix(l.v, o.v))}
}

// Angle returns the axial angle to another lineation in [0, 90] degrees.
func (l Lineation) Angle(o Lineation) float64 {
	return axialAngle(l.v, o.v)
}

// Equals reports axial equality: parallel or antiparallel within the
// default tolerance.
func (l Lineation) Equals(o Lineation) bool {
	return axialEqual(l.v, o.v, geom.DefaultTolerance)
}

// EqualsTol reports axial equality within tol.
func (l Lineation) EqualsTol(o Lineation, tol float64) bool {
	return axialEqual(l.v, o.v, tol)
}

// Cross returns the foliation plane containing both lineations.
func (l Lineation) Cross(o Lineation) Foliation {
	return Foliation{v: l.v.Cross(o.v)}
}

// Rotate returns the lineation rotated by angle degrees about axis.
func (l Lineation) Rotate(axis geom.Vec3, angle float64) Lineation {
	return Lineation{v: l.v.Rotate(axis, angle)}
}

// Transform returns the lineation transformed by matrix m.
func (l Lineation) Transform(m geom.Mat3) Lineation {
	return Lineation{v: m.Apply(l.v)}
}

// Normalized returns the unit-length lineation.
func (l Lineation) Normalized() Lineation {
	return Lineation{v: mustUnit(l.v)}
}

// Proj returns the projection of l onto o, re-wrapped as a Lineation.
func (l Lineation) Proj(o Lineation) Lineation {
	p, _ := l.v.Proj(o.v)
	return Lineation{v: p}
}
