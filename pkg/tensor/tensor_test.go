package tensor

import (
	"math"
	"testing"

	"github.com/geofabric/geofabric/pkg/geom"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestFromMatrixRejectsAsymmetric(t *testing.T) {
	m := geom.Mat3{{1, 2, 0}, {0, 1, 0}, {0, 0, 1}}
	if _, err := FromMatrix(m); err != ErrNotSymmetric {
		t.Errorf("expected ErrNotSymmetric, got %v", err)
	}
}

func TestEigenvaluesDescending(t *testing.T) {
	m := geom.Mat3{{2, 0.3, 0.1}, {0.3, 1, 0.2}, {0.1, 0.2, 0.5}}
	e, err := FromMatrix(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e1, e2, e3 := e.Eigenvalues()
	if e1 < e2 || e2 < e3 {
		t.Errorf("eigenvalues not descending: %f, %f, %f", e1, e2, e3)
	}
	if !approxEqual(e1+e2+e3, 3.5, 1e-9) {
		t.Errorf("expected trace 3.5, got %f", e1+e2+e3)
	}
}

func TestOrthogonalTripleIsUniform(t *testing.T) {
	o := FromVectors([]geom.Vec3{
		geom.V3(1, 0, 0), geom.V3(0, 1, 0), geom.V3(0, 0, 1),
	})
	e1, e2, e3 := o.Eigenvalues()
	for _, v := range []float64{e1, e2, e3} {
		if !approxEqual(v, 1, 1e-9) {
			t.Errorf("expected unit eigenvalue, got %f", v)
		}
	}
	if !approxEqual(o.Intensity(), 0, 1e-9) {
		t.Errorf("expected zero intensity, got %f", o.Intensity())
	}
	if !approxEqual(o.P(), 0, 1e-9) || !approxEqual(o.G(), 0, 1e-9) {
		t.Errorf("expected P=G=0, got P=%f G=%f", o.P(), o.G())
	}
	if !approxEqual(o.R(), 100, 1e-9) {
		t.Errorf("expected R=100, got %f", o.R())
	}
}

func TestNormalizedEigenvaluesSumToOne(t *testing.T) {
	vs := []geom.Vec3{
		geom.LinCosines(120, 30), geom.LinCosines(125, 32),
		geom.LinCosines(118, 28), geom.LinCosines(310, 55),
		geom.LinCosines(40, 10),
	}
	o := FromVectors(vs)
	e1, e2, e3 := o.Eigenvalues()
	n := o.Norm()
	if !approxEqual(e1/n+e2/n+e3/n, 1, 1e-12) {
		t.Errorf("normalized eigenvalues sum %f, want 1", e1/n+e2/n+e3/n)
	}
	if o.N() != len(vs) {
		t.Errorf("expected N=%d, got %d", len(vs), o.N())
	}
}

func TestClusterFabric(t *testing.T) {
	vs := []geom.Vec3{
		geom.LinCosines(150, 40), geom.LinCosines(152, 42),
		geom.LinCosines(148, 39), geom.LinCosines(151, 41),
		geom.LinCosines(149, 40), geom.LinCosines(150, 43),
	}
	o := FromVectors(vs)
	if o.Shape() <= 1 {
		t.Errorf("expected cluster shape > 1, got %f", o.Shape())
	}
	if o.P() <= o.G() {
		t.Errorf("expected point index to dominate, got P=%f G=%f", o.P(), o.G())
	}
	if !approxEqual(o.MAD(), o.MADl(), 1e-12) {
		t.Errorf("expected line deviation for cluster, got %f vs %f", o.MAD(), o.MADl())
	}
	if o.MADl() > 5 {
		t.Errorf("tight cluster should give small deviation, got %f", o.MADl())
	}
}

func TestGirdleFabric(t *testing.T) {
	// Lines spread within the plane dipping 60 toward 090.
	fol := geom.FolCosines(90, 60)
	dip := geom.LinCosines(90, 60)
	var vs []geom.Vec3
	for rake := 10.0; rake < 180; rake += 20 {
		vs = append(vs, dip.Rotate(fol, rake-90))
	}
	o := FromVectors(vs)
	if o.Shape() >= 1 {
		t.Errorf("expected girdle shape < 1, got %f", o.Shape())
	}
	// The smallest eigenvector approximates the girdle pole. Eigenvector
	// sign is arbitrary, so compare axially.
	_, _, v3 := o.Eigenvectors()
	if math.Abs(math.Abs(v3.Dot(fol))-1) > 1e-9 {
		t.Errorf("girdle pole misaligned, |dot| = %f", math.Abs(v3.Dot(fol)))
	}
}

func TestLodeSymmetry(t *testing.T) {
	prolate, _ := FromMatrix(geom.Mat3{{1, 0, 0}, {0, 0.1, 0}, {0, 0, 0.1}})
	if !approxEqual(prolate.Lode(), -1, 1e-9) {
		t.Errorf("expected Lode -1 for prolate, got %f", prolate.Lode())
	}
	oblate, _ := FromMatrix(geom.Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 0.1}})
	if !approxEqual(oblate.Lode(), 1, 1e-9) {
		t.Errorf("expected Lode 1 for oblate, got %f", oblate.Lode())
	}
}

func TestStrainIndicesPlaneStrain(t *testing.T) {
	// Semiaxes 2, 1, 1/2: plane strain, so both shape parameters are 1.
	e, err := FromMatrix(geom.Mat3{{4, 0, 0}, {0, 1, 0}, {0, 0, 0.25}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(e.Rxy(), 2, 1e-9) || !approxEqual(e.Ryz(), 2, 1e-9) {
		t.Errorf("expected semiaxis ratios 2:2, got %f:%f", e.Rxy(), e.Ryz())
	}
	k, d := e.Flinn()
	if !approxEqual(k, 1, 1e-9) || !approxEqual(d, math.Sqrt2, 1e-9) {
		t.Errorf("expected Flinn (1, sqrt2), got (%f, %f)", k, d)
	}
	rk, rd := e.Ramsay()
	if !approxEqual(rk, 1, 1e-9) || !approxEqual(rd, math.Ln2*math.Sqrt2, 1e-9) {
		t.Errorf("expected Ramsay (1, ln2*sqrt2), got (%f, %f)", rk, rd)
	}
	goct, eoct := e.Nadai()
	wantG := 2 * math.Ln2 * math.Sqrt(6) / 3
	if !approxEqual(goct, wantG, 1e-9) {
		t.Errorf("expected octahedral shear %f, got %f", wantG, goct)
	}
	if !approxEqual(eoct, math.Sqrt(3)*wantG/2, 1e-9) {
		t.Errorf("expected octahedral strain %f, got %f", math.Sqrt(3)*wantG/2, eoct)
	}
}

func TestStrainIndicesShapeOrdering(t *testing.T) {
	oblate, _ := FromMatrix(geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 1}})
	prolate, _ := FromMatrix(geom.Mat3{{4, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	if k, _ := oblate.Flinn(); k >= 1 {
		t.Errorf("expected oblate Flinn k < 1, got %f", k)
	}
	if k, _ := prolate.Ramsay(); !math.IsInf(k, 1) {
		t.Errorf("expected prolate Ramsay K infinite, got %f", k)
	}
}

func TestRotationPreservesEigenvalues(t *testing.T) {
	o := FromVectors([]geom.Vec3{
		geom.LinCosines(150, 40), geom.LinCosines(120, 20),
		geom.LinCosines(30, 70), geom.LinCosines(200, 10),
	})
	r, err := o.Ellipsoid.Rotate(geom.V3(0, 0, 1), 35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a1, a2, a3 := o.Eigenvalues()
	b1, b2, b3 := r.Eigenvalues()
	if !approxEqual(a1, b1, 1e-9) || !approxEqual(a2, b2, 1e-9) || !approxEqual(a3, b3, 1e-9) {
		t.Errorf("eigenvalues changed under rotation: (%f,%f,%f) vs (%f,%f,%f)",
			a1, a2, a3, b1, b2, b3)
	}
}

func TestLisleTensorCrossAxis(t *testing.T) {
	// A single perfectly orthogonal pair: pole up, line north.
	f := geom.V3(0, 0, 1)
	l := geom.V3(1, 0, 0)
	o := FromPairs([]geom.Vec3{f}, []geom.Vec3{l})
	e1, e2, e3 := o.Eigenvalues()
	if !approxEqual(e1, 1, 1e-9) || !approxEqual(e2, 1, 1e-9) || !approxEqual(e3, -1, 1e-9) {
		t.Errorf("expected eigenvalues (1,1,-1), got (%f,%f,%f)", e1, e2, e3)
	}
	_, _, v3 := o.Eigenvectors()
	cross := f.Cross(l)
	if math.Abs(math.Abs(v3.Dot(cross))-1) > 1e-9 {
		t.Errorf("smallest eigenvector should align with the cross axis, got %v", v3)
	}
}

func TestEllipsoidSetBatch(t *testing.T) {
	a, _ := FromMatrix(geom.Mat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 0.5}})
	b, _ := FromMatrix(geom.Mat3{{3, 0, 0}, {0, 1, 0}, {0, 0, 0.2}})
	s := NewEllipsoidSet([]Ellipsoid{a, b}, "fabrics")
	if s.Len() != 2 || s.Name() != "fabrics" {
		t.Fatalf("unexpected set shape: len=%d name=%q", s.Len(), s.Name())
	}
	r, err := s.Rotate(geom.V3(0, 0, 1), 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < s.Len(); i++ {
		a1, a2, a3 := s.At(i).Eigenvalues()
		b1, b2, b3 := r.At(i).Eigenvalues()
		if !approxEqual(a1, b1, 1e-9) || !approxEqual(a2, b2, 1e-9) || !approxEqual(a3, b3, 1e-9) {
			t.Errorf("member %d eigenvalues changed under rotation", i)
		}
	}
}
