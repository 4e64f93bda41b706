package feature

import (
	"fmt"

	"github.com/geofabric/geofabric/pkg/geom"
)

// Foliation is a planar structural feature such as bedding or cleavage,
// represented axially by the plane's pole (normal vector). A Foliation may
// be displayed as its pole ("P:" notation) instead of the plane ("S:"
// notation); the pole flag changes only the textual representation, never
// the math.
type Foliation struct {
	v    geom.Vec3
	pole bool
}

// NewFoliation builds a Foliation from dip direction and dip in degrees.
func NewFoliation(azi, inc float64) Foliation {
	return Foliation{v: geom.FolCosines(azi, inc)}
}

// NewPole builds a Foliation displayed in pole notation.
func NewPole(azi, inc float64) Foliation {
	return Foliation{v: geom.FolCosines(azi, inc), pole: true}
}

// FoliationFromVec wraps an arbitrary non-zero vector as the pole of a
// Foliation. Magnitude is preserved.
func FoliationFromVec(v geom.Vec3) (Foliation, error) {
	if v.IsZero() {
		return Foliation{}, geom.ErrZeroVector
	}
	return Foliation{v: v}, nil
}

// Vec returns the plane's pole vector.
func (f Foliation) Vec() geom.Vec3 {
	return f.v
}

// Geo returns dip direction and dip in degrees.
func (f Foliation) Geo() (azi, inc float64) {
	return geom.FolAngles(f.v)
}

// AsPole returns the same foliation flagged for pole display.
func (f Foliation) AsPole() Foliation {
	f.pole = true
	return f
}

// IsPole reports whether the foliation displays as its pole.
func (f Foliation) IsPole() bool {
	return f.pole
}

func (f Foliation) String() string {
	azi, inc := f.Geo()
	if f.pole {
		return fmt.Sprintf("P:%.0f/%.0f", azi, inc)
	}
	return fmt.Sprintf("S:%.0f/%.0f", azi, inc)
}

// Add combines two foliation poles with the axial rule.
func (f Foliation) Add(o Foliation) Foliation {
	return Foliation{v: f.v.Add(axialFix(f.v, o.v)), pole: f.pole}
}

// Sub subtracts with the same axial sign fix as Add.
func (f Foliation) Sub(o Foliation) Foliation {
	return Foliation{v: f.v.Sub(axialFix(f.v, o.v)), pole: f.pole}
}

// Angle returns the axial angle between the planes in [0, 90] degrees.
func (f Foliation) Angle(o Foliation) float64 {
	return axialAngle(f.v, o.v)
}

// Equals reports axial equality of the poles. The pole display flag does
// not participate.
func (f Foliation) Equals(o Foliation) bool {
	return axialEqual(f.v, o.v, geom.DefaultTolerance)
}

// EqualsTol reports axial equality within tol.
func (f Foliation) EqualsTol(o Foliation, tol float64) bool {
	return axialEqual(f.v, o.v, tol)
}

// Cross returns the intersection lineation of the two planes.
func (f Foliation) Cross(o Foliation) Lineation {
	return Lineation{v: f.v.Cross(o.v)}
}

// Rotate returns the foliation rotated by angle degrees about axis.
func (f Foliation) Rotate(axis geom.Vec3, angle float64) Foliation {
	return Foliation{v: f.v.Rotate(axis, angle), pole: f.pole}
}

// Transform returns the foliation transformed by matrix m.
func (f Foliation) Transform(m geom.Mat3) Foliation {
	return Foliation{v: m.Apply(f.v), pole: f.pole}
}

// Normalized returns the foliation with a unit pole.
func (f Foliation) Normalized() Foliation {
	return Foliation{v: mustUnit(f.v), pole: f.pole}
}

// DipVec returns the in-plane dip vector, the steepest line within the
// plane, orthogonal to strike. Used for great-circle tracing.
func (f Foliation) DipVec() geom.Vec3 {
	azi, inc := f.Geo()
	return geom.LinCosines(azi, inc)
}

// Rake returns the lineation within the plane at the given rake angle
// measured from the dip vector.
func (f Foliation) Rake(rake float64) Lineation {
	return Lineation{v: f.DipVec().Rotate(mustUnit(f.v), rake-90)}
}
