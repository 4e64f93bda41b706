package feature

import (
	"fmt"

	"github.com/geofabric/geofabric/pkg/geom"
)

// Pair is a correlated foliation/lineation measurement, e.g. a slip plane
// and its striation. Construction corrects both components so the line
// lies exactly in the plane; the original angular inconsistency is kept as
// Misfit.
type Pair struct {
	fvec geom.Vec3 // unit pole of the corrected plane
	lvec geom.Vec3 // unit vector of the corrected line
	// Misfit is the signed deviation from orthogonality of the raw pole
	// and line, angle(l, f) - 90 in degrees. Zero for a perfectly
	// consistent measurement.
	Misfit float64
}

// NewPair builds a Pair from dip direction/dip of the plane and plunge
// azimuth/plunge of the line, correcting both for misfit.
func NewPair(fazi, finc, lazi, linc float64) Pair {
	return pairFromVecs(geom.FolCosines(fazi, finc), geom.LinCosines(lazi, linc))
}

// PairFromFeatures builds a corrected Pair from existing features.
func PairFromFeatures(f Foliation, l Lineation) Pair {
	return pairFromVecs(mustUnit(f.Vec()), mustUnit(l.Vec()))
}

// pairFromVecs runs the misfit correction: the plane and line are rotated
// toward each other about their common normal by half the deviation from
// orthogonality, leaving the line exactly in the plane.
func pairFromVecs(fv, lv geom.Vec3) Pair {
	misfit := geom.Acosd(fv.Dot(lv)) - 90
	axis := fv.Cross(lv)
	if axis.IsZero() {
		// Degenerate: line parallel to pole. Pick any axis in the plane.
		axis = fv.Cross(geom.V3(fv.Y, -fv.X, 0))
		if axis.IsZero() {
			axis = geom.V3(0, 1, 0)
		}
	}
	half := misfit / 2
	return Pair{
		fvec:   mustUnit(fv.Rotate(axis, half)),
		lvec:   mustUnit(lv.Rotate(axis, -half)),
		Misfit: misfit,
	}
}

// Fol returns the corrected plane.
func (p Pair) Fol() Foliation {
	return Foliation{v: p.fvec}
}

// Lin returns the corrected line.
func (p Pair) Lin() Lineation {
	return Lineation{v: p.lvec}
}

// FVec returns the unit pole of the corrected plane.
func (p Pair) FVec() geom.Vec3 {
	return p.fvec
}

// LVec returns the unit vector of the corrected line.
func (p Pair) LVec() geom.Vec3 {
	return p.lvec
}

// RAxis returns the unit vector perpendicular to both the plane pole and
// the line.
func (p Pair) RAxis() geom.Vec3 {
	return mustUnit(p.fvec.Cross(p.lvec))
}

func (p Pair) String() string {
	fazi, finc := p.Fol().Geo()
	lazi, linc := p.Lin().Geo()
	return fmt.Sprintf("P:%.0f/%.0f-%.0f/%.0f", fazi, finc, lazi, linc)
}

// Rotate rotates both components rigidly by angle degrees about axis. A
// rigid rotation preserves the in-plane invariant, so no re-correction is
// needed; the misfit of the original measurement is carried over.
func (p Pair) Rotate(axis geom.Vec3, angle float64) Pair {
	return Pair{
		fvec:   p.fvec.Rotate(axis, angle),
		lvec:   p.lvec.Rotate(axis, angle),
		Misfit: p.Misfit,
	}
}

// Transform applies matrix m to both components and renormalizes.
func (p Pair) Transform(m geom.Mat3) Pair {
	return Pair{
		fvec:   mustUnit(m.Apply(p.fvec)),
		lvec:   mustUnit(m.Apply(p.lvec)),
		Misfit: p.Misfit,
	}
}

// Fault is a Pair with a shear sense: +1 for movement along the line
// vector, -1 against it. The sense survives any sign fixing applied to the
// underlying axial data and any rotation.
type Fault struct {
	Pair
	Sense int
}

// NewFault builds a Fault from plane and line angles plus shear sense.
func NewFault(fazi, finc, lazi, linc float64, sense int) (Fault, error) {
	if sense != 1 && sense != -1 {
		return Fault{}, ErrSense
	}
	return Fault{Pair: NewPair(fazi, finc, lazi, linc), Sense: sense}, nil
}

// FaultFromPair attaches a shear sense to an existing Pair.
func FaultFromPair(p Pair, sense int) (Fault, error) {
	if sense != 1 && sense != -1 {
		return Fault{}, ErrSense
	}
	return Fault{Pair: p, Sense: sense}, nil
}

func (f Fault) String() string {
	fazi, finc := f.Fol().Geo()
	lazi, linc := f.Lin().Geo()
	s := "+"
	if f.Sense < 0 {
		s = "-"
	}
	return fmt.Sprintf("F:%.0f/%.0f-%.0f/%.0f %s", fazi, finc, lazi, linc, s)
}

// Rotate rotates the fault rigidly, preserving the shear sense.
func (f Fault) Rotate(axis geom.Vec3, angle float64) Fault {
	return Fault{Pair: f.Pair.Rotate(axis, angle), Sense: f.Sense}
}

// Slip returns the slip direction: the line vector signed by sense.
func (f Fault) Slip() geom.Vec3 {
	if f.Sense < 0 {
		return f.lvec.Neg()
	}
	return f.lvec
}

// kinAxis is the rotation axis of the kinematic frame, normal to both the
// fault pole and the slip direction.
func (f Fault) kinAxis() geom.Vec3 {
	return mustUnit(f.fvec.Cross(f.Slip()))
}

// PVector returns the pressure axis: the fault pole rotated by half the
// P-T angle against the slip direction.
func (f Fault) PVector(ptangle float64) geom.Vec3 {
	return f.fvec.Rotate(f.kinAxis(), -ptangle/2)
}

// TVector returns the tension axis, symmetric to PVector.
func (f Fault) TVector(ptangle float64) geom.Vec3 {
	return f.fvec.Rotate(f.kinAxis(), ptangle/2)
}

// P returns the pressure axis as a Lineation, with the conventional 90
// degree P-T angle.
func (f Fault) P() Lineation {
	return Lineation{v: f.PVector(90)}
}

// T returns the tension axis as a Lineation.
func (f Fault) T() Lineation {
	return Lineation{v: f.TVector(90)}
}

// M returns the kinematic M-plane, containing the slip direction and the
// fault pole.
func (f Fault) M() Foliation {
	return Foliation{v: f.Slip().Cross(f.fvec)}
}

// D returns the dihedra plane, normal to the M-plane and containing the
// fault pole.
func (f Fault) D() Foliation {
	return Foliation{v: f.kinAxis().Cross(f.fvec)}
}
