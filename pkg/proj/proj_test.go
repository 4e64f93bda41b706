package proj

import (
	"math"
	"testing"

	"github.com/geofabric/geofabric/pkg/feature"
	"github.com/geofabric/geofabric/pkg/geom"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestVerticalProjectsToCenter(t *testing.T) {
	for _, p := range []Projection{EqualArea{}, EqualAngle{}} {
		pt := p.Project(geom.V3(0, 0, 1))
		if !approxEqual(pt.X, 0, 1e-12) || !approxEqual(pt.Y, 0, 1e-12) {
			t.Errorf("%s: vertical should project to center, got %v", p.Name(), pt)
		}
	}
}

func TestHorizontalProjectsToPrimitive(t *testing.T) {
	for _, p := range []Projection{EqualArea{}, EqualAngle{}} {
		pt := p.Project(geom.LinCosines(90, 0))
		r := math.Hypot(pt.X, pt.Y)
		if !approxEqual(r, 1, 1e-9) {
			t.Errorf("%s: horizontal line should hit the primitive, got r=%f", p.Name(), r)
		}
		// Azimuth 90 is due east.
		if !approxEqual(pt.X, 1, 1e-9) || !approxEqual(pt.Y, 0, 1e-9) {
			t.Errorf("%s: expected (1,0), got %v", p.Name(), pt)
		}
	}
}

func TestUpperHemisphereFlipped(t *testing.T) {
	p := EqualArea{}
	down := p.Project(geom.V3(0.3, 0.4, 0.5))
	up := p.Project(geom.V3(-0.3, -0.4, -0.5))
	if !approxEqual(down.X, up.X, 1e-12) || !approxEqual(down.Y, up.Y, 1e-12) {
		t.Errorf("antipodal directions should project identically: %v vs %v", down, up)
	}
}

func TestProjectInverseRoundTrip(t *testing.T) {
	for _, p := range []Projection{EqualArea{}, EqualAngle{}} {
		for azi := 0.0; azi < 360; azi += 21 {
			for inc := 5.0; inc <= 85; inc += 16 {
				v := geom.LinCosines(azi, inc)
				back, err := p.Inverse(p.Project(v))
				if err != nil {
					t.Fatalf("%s: unexpected error: %v", p.Name(), err)
				}
				// Compare components, not the angle: acos amplifies
				// rounding near a unit dot product.
				if !back.EqualsTol(v, 1e-9) {
					t.Errorf("%s: %f/%f round trip gave %v", p.Name(), azi, inc, back)
				}
			}
		}
	}
}

func TestInverseOutsideDisc(t *testing.T) {
	for _, p := range []Projection{EqualArea{}, EqualAngle{}} {
		if _, err := p.Inverse(Point{X: 1.2, Y: 0.3}); err != ErrOutsideDisc {
			t.Errorf("%s: expected ErrOutsideDisc, got %v", p.Name(), err)
		}
	}
}

func TestByName(t *testing.T) {
	if ByName("equal-angle").Name() != "equal-angle" {
		t.Errorf("expected equal-angle projection")
	}
	if ByName("anything").Name() != "equal-area" {
		t.Errorf("expected equal-area default")
	}
}

func TestGreatCircleStaysInPlaneAndDisc(t *testing.T) {
	f := feature.NewFoliation(150, 40)
	pts := GreatCircle(EqualArea{}, f, 91)
	if len(pts) != 91 {
		t.Fatalf("expected 91 points, got %d", len(pts))
	}
	ea := EqualArea{}
	for i, pt := range pts {
		if r := math.Hypot(pt.X, pt.Y); r > 1+1e-9 {
			t.Errorf("point %d outside the disc: r=%f", i, r)
		}
		v, err := ea.Inverse(pt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ang, _ := v.Angle(f.Vec())
		if !approxEqual(ang, 90, 1e-6) {
			t.Errorf("point %d off the plane by %f", i, ang-90)
		}
	}
}

func TestSmallCircleConeAngle(t *testing.T) {
	axis := geom.LinCosines(0, 90)
	pts := SmallCircle(EqualArea{}, axis, 30, 73)
	ea := EqualArea{}
	for i, pt := range pts {
		v, err := ea.Inverse(pt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ang, _ := v.Angle(axis)
		if !approxEqual(ang, 30, 1e-6) {
			t.Errorf("point %d at %f from axis, want 30", i, ang)
		}
	}
}

func TestRoseBinning(t *testing.T) {
	dirs := []float64{5, 15, 185, 355}
	bins := Rose(dirs, 36, false)
	if len(bins) != 36 {
		t.Fatalf("expected 36 bins, got %d", len(bins))
	}
	if bins[0].Count != 1 || bins[1].Count != 1 {
		t.Errorf("unexpected low sector counts: %d, %d", bins[0].Count, bins[1].Count)
	}
	if bins[18].Count != 1 || bins[35].Count != 1 {
		t.Errorf("unexpected sector counts: %d, %d", bins[18].Count, bins[35].Count)
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(dirs) {
		t.Errorf("expected %d total, got %d", len(dirs), total)
	}
}

func TestRoseAxialMirroring(t *testing.T) {
	bins := Rose([]float64{10}, 36, true)
	if bins[1].Count != 1 || bins[19].Count != 1 {
		t.Errorf("axial direction should count in both sectors: %d, %d",
			bins[1].Count, bins[19].Count)
	}
}
