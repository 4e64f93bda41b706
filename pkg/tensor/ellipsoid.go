// Package tensor provides eigen-analysis of 3x3 symmetric tensors built
// from orientation data, along with the fabric indices derived from the
// ordered eigenvalue triple.
package tensor

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/geofabric/geofabric/pkg/geom"
)

// ErrNotSymmetric reports a source matrix too far from symmetric to
// eigen-decompose as one.
var ErrNotSymmetric = errors.New("tensor: matrix is not symmetric")

// symTol is the largest off-diagonal asymmetry accepted by FromMatrix.
const symTol = 1e-9

// Ellipsoid is the eigen-decomposition of a symmetric 3x3 tensor. The
// eigenvalues are sorted descending with eigenvectors to match, and the
// value is never mutated after construction.
type Ellipsoid struct {
	m    geom.Mat3
	vals [3]float64
	vecs [3]geom.Vec3
}

// FromMatrix eigen-decomposes a symmetric matrix into an Ellipsoid.
func FromMatrix(m geom.Mat3) (Ellipsoid, error) {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(m[i][j]-m[j][i]) > symTol {
				return Ellipsoid{}, ErrNotSymmetric
			}
		}
	}
	sym := mat.NewSymDense(3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[0][1], m[1][1], m[1][2],
		m[0][2], m[1][2], m[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return Ellipsoid{}, fmt.Errorf("tensor: eigen factorization failed for %v", m)
	}
	var ev mat.Dense
	eig.VectorsTo(&ev)
	vals := eig.Values(nil)

	// EigenSym returns eigenvalues ascending; we keep them descending.
	var e Ellipsoid
	e.m = m
	for i := 0; i < 3; i++ {
		src := 2 - i
		e.vals[i] = vals[src]
		e.vecs[i] = geom.V3(ev.At(0, src), ev.At(1, src), ev.At(2, src))
	}
	return e, nil
}

// Matrix returns the source tensor.
func (e Ellipsoid) Matrix() geom.Mat3 {
	return e.m
}

// Eigenvalues returns the eigenvalues sorted descending.
func (e Ellipsoid) Eigenvalues() (e1, e2, e3 float64) {
	return e.vals[0], e.vals[1], e.vals[2]
}

// Eigenvectors returns unit eigenvectors matching the descending
// eigenvalue order.
func (e Ellipsoid) Eigenvectors() (v1, v2, v3 geom.Vec3) {
	return e.vecs[0], e.vecs[1], e.vecs[2]
}

// Norm returns the sum of the eigenvalues, i.e. the trace of the source
// tensor.
func (e Ellipsoid) Norm() float64 {
	return e.vals[0] + e.vals[1] + e.vals[2]
}

// normalized returns the eigenvalue triple scaled to sum 1.
func (e Ellipsoid) normalized() (e1, e2, e3 float64) {
	n := e.Norm()
	return e.vals[0] / n, e.vals[1] / n, e.vals[2] / n
}

// Shape returns the Woodcock (1977) shape parameter ln(e1/e2)/ln(e2/e3).
// Values above 1 indicate clusters, below 1 girdles.
func (e Ellipsoid) Shape() float64 {
	e1, e2, e3 := e.normalized()
	return math.Log(e1/e2) / math.Log(e2/e3)
}

// Strength returns the Woodcock (1977) strength parameter ln(e1/e3).
func (e Ellipsoid) Strength() float64 {
	e1, _, e3 := e.normalized()
	return math.Log(e1 / e3)
}

// Lode returns the Lode parameter in [-1, 1], -1 for prolate and +1 for
// oblate symmetry.
func (e Ellipsoid) Lode() float64 {
	e1, e2, e3 := e.vals[0], e.vals[1], e.vals[2]
	return (2*e2 - e1 - e3) / (e1 - e3)
}

// semiaxes returns the ellipsoid semiaxis lengths, the square roots of
// the eigenvalues.
func (e Ellipsoid) semiaxes() (s1, s2, s3 float64) {
	return math.Sqrt(e.vals[0]), math.Sqrt(e.vals[1]), math.Sqrt(e.vals[2])
}

// Rxy returns the ratio of the longest to the intermediate semiaxis.
func (e Ellipsoid) Rxy() float64 {
	s1, s2, _ := e.semiaxes()
	return s1 / s2
}

// Ryz returns the ratio of the intermediate to the shortest semiaxis.
func (e Ellipsoid) Ryz() float64 {
	_, s2, s3 := e.semiaxes()
	return s2 / s3
}

// Flinn returns the Flinn (1962) diagram coordinates: shape k on the
// semiaxis ratios and intensity d.
func (e Ellipsoid) Flinn() (k, d float64) {
	rxy, ryz := e.Rxy(), e.Ryz()
	return (rxy - 1) / (ryz - 1), math.Hypot(rxy-1, ryz-1)
}

// Ramsay returns the Ramsay (1983) logarithmic diagram coordinates: shape
// K and intensity D on the natural strains.
func (e Ellipsoid) Ramsay() (k, d float64) {
	s1, s2, s3 := e.semiaxes()
	e12 := math.Log(s1 / s2)
	e23 := math.Log(s2 / s3)
	return e12 / e23, math.Hypot(e12, e23)
}

// Nadai returns the natural octahedral unit shear and unit strain
// (Nadai 1963).
func (e Ellipsoid) Nadai() (goct, eoct float64) {
	s1, s2, s3 := e.semiaxes()
	e12 := math.Log(s1 / s2)
	e23 := math.Log(s2 / s3)
	e13 := math.Log(s1 / s3)
	goct = 2 * math.Sqrt(e12*e12+e23*e23+e13*e13) / 3
	return goct, math.Sqrt(3) * goct / 2
}

// Transform returns the ellipsoid of m*E*m^T, the tensor expressed in
// the rotated frame.
func (e Ellipsoid) Transform(m geom.Mat3) (Ellipsoid, error) {
	return FromMatrix(m.Mul(e.m).Mul(m.Transpose()))
}

// Rotate returns the ellipsoid rotated by angle degrees about axis.
func (e Ellipsoid) Rotate(axis geom.Vec3, angle float64) (Ellipsoid, error) {
	return e.Transform(geom.RotationMatrix(axis, angle))
}

func (e Ellipsoid) String() string {
	e1, e2, e3 := e.normalized()
	return fmt.Sprintf("E:(%.3f, %.3f, %.3f)", e1, e2, e3)
}
