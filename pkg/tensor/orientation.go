package tensor

import (
	"math"

	"github.com/geofabric/geofabric/pkg/geom"
)

// Orientation is the second-moment orientation tensor of a set of unit
// vectors, M = sum(v v^T), with the fabric indices read from its
// normalized eigenvalues.
type Orientation struct {
	Ellipsoid
	n int
}

// FromVectors builds the orientation tensor of a vector sample. The
// eigen-decomposition of a sum of outer products cannot fail, so no
// error is returned.
func FromVectors(vs []geom.Vec3) Orientation {
	var m geom.Mat3
	for _, v := range vs {
		m = m.AddM(geom.Outer(v, v))
	}
	e, _ := FromMatrix(m)
	return Orientation{Ellipsoid: e, n: len(vs)}
}

// FromPairs builds the Lisle (1989) orientation tensor of coupled
// plane/line measurements. Each pair contributes its pole, its line and,
// with negative weight, their mutual cross axis, which penalizes
// deviations from orthogonality.
func FromPairs(fvecs, lvecs []geom.Vec3) Orientation {
	var m geom.Mat3
	for i := range fvecs {
		f, l := fvecs[i], lvecs[i]
		r := f.Cross(l)
		m = m.AddM(geom.Outer(f, f)).AddM(geom.Outer(l, l)).SubM(geom.Outer(r, r))
	}
	e, _ := FromMatrix(m)
	return Orientation{Ellipsoid: e, n: len(fvecs)}
}

// N returns the number of contributing features.
func (o Orientation) N() int {
	return o.n
}

// P returns the Vollmer (1990) point index in percent.
func (o Orientation) P() float64 {
	e1, e2, _ := o.normalized()
	return 100 * (e1 - e2)
}

// G returns the Vollmer (1990) girdle index in percent.
func (o Orientation) G() float64 {
	_, e2, e3 := o.normalized()
	return 100 * 2 * (e2 - e3)
}

// R returns the Vollmer (1990) random index in percent. P, G and R
// partition 100.
func (o Orientation) R() float64 {
	_, _, e3 := o.normalized()
	return 100 * 3 * e3
}

// B returns the Vollmer (1990) cylindricity index, P + G.
func (o Orientation) B() float64 {
	return o.P() + o.G()
}

// Intensity returns the Lisle (1985) fabric intensity,
// 7.5*sum((ei - 1/3)^2). Zero for a uniform fabric, 5 for a single
// cluster.
func (o Orientation) Intensity() float64 {
	e1, e2, e3 := o.normalized()
	d1, d2, d3 := e1-1.0/3, e2-1.0/3, e3-1.0/3
	return 7.5 * (d1*d1 + d2*d2 + d3*d3)
}

// MADl returns the Kirschvink (1980) maximum angular deviation of a
// line fit, in degrees.
func (o Orientation) MADl() float64 {
	e1, e2, e3 := o.normalized()
	return geom.Atand(math.Sqrt((e2 + e3) / e1))
}

// MADp returns the Kirschvink (1980) maximum angular deviation of a
// plane fit, in degrees.
func (o Orientation) MADp() float64 {
	e1, e2, e3 := o.normalized()
	return geom.Atand(math.Sqrt(e3/e2 + e3/e1))
}

// MAD returns the deviation measure matching the fabric shape: the line
// variant for clusters, the plane variant for girdles.
func (o Orientation) MAD() float64 {
	if o.Shape() > 1 {
		return o.MADl()
	}
	return o.MADp()
}
