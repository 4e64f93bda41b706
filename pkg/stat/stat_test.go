package stat

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
)

func circularMean(angles []float64) float64 {
	var s, c float64
	for _, a := range angles {
		s += geom.Sind(a)
		c += geom.Cosd(a)
	}
	return geom.Mod360(geom.Atan2d(s, c))
}

// --- von Mises tests ---

func TestVonMisesRejectsNonPositiveKappa(t *testing.T) {
	if _, err := NewVonMises(0, 0, nil); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestVonMisesMeanDirection(t *testing.T) {
	d, err := NewVonMises(120, 50, rand.NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	angles := make([]float64, 2000)
	for i := range angles {
		angles[i] = d.Rand()
	}
	mean := circularMean(angles)
	if math.Abs(mean-120) > 3 {
		t.Errorf("expected mean direction near 120, got %f", mean)
	}
}

func TestVonMisesReproducible(t *testing.T) {
	d1, _ := NewVonMises(45, 10, rand.NewSource(99))
	d2, _ := NewVonMises(45, 10, rand.NewSource(99))
	for i := 0; i < 10; i++ {
		if d1.Rand() != d2.Rand() {
			t.Fatal("expected identical draws from identical seeds")
		}
	}
}

func TestVonMisesDensityIntegratesToOne(t *testing.T) {
	d, _ := NewVonMises(0, 5, nil)
	sum := 0.0
	const n = 3600
	for i := 0; i < n; i++ {
		sum += d.Prob(float64(i)*360/n) * (2 * math.Pi / n)
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("expected density integral 1, got %f", sum)
	}
}

// --- von Mises-Fisher tests ---

func TestVonMisesFisherMeanDirection(t *testing.T) {
	mu := geom.LinCosines(120, 40)
	d, err := NewVonMisesFisher(mu, 50, rand.NewSource(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var r geom.Vec3
	for _, v := range d.Sample(2000) {
		r = r.Add(v)
	}
	ang, err := r.Angle(mu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ang > 3 {
		t.Errorf("expected resultant within 3 degrees of center, got %f", ang)
	}
}

func TestVonMisesFisherConcentration(t *testing.T) {
	mu := geom.V3(0, 0, 1)
	tight, _ := NewVonMisesFisher(mu, 200, rand.NewSource(3))
	loose, _ := NewVonMisesFisher(mu, 5, rand.NewSource(3))
	spread := func(vs []geom.Vec3) float64 {
		var sum float64
		for _, v := range vs {
			a, _ := v.Angle(mu)
			sum += a
		}
		return sum / float64(len(vs))
	}
	if spread(tight.Sample(500)) >= spread(loose.Sample(500)) {
		t.Error("expected higher kappa to concentrate samples")
	}
}

func TestVonMisesFisherZeroMu(t *testing.T) {
	if _, err := NewVonMisesFisher(geom.Vec3{}, 10, nil); !errors.Is(err, geom.ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
}

func TestVonMisesFisherSamplesAreUnit(t *testing.T) {
	d, _ := NewVonMisesFisher(geom.LinCosines(300, 10), 15, rand.NewSource(4))
	for _, v := range d.Sample(100) {
		if math.Abs(v.Abs()-1) > 1e-9 {
			t.Fatalf("expected unit sample, got length %f", v.Abs())
		}
	}
}

// --- Kent tests ---

func kentFrame() (geom.Vec3, geom.Vec3, geom.Vec3) {
	g1 := geom.LinCosines(150, 40)
	g2 := geom.FolCosines(150, 40).Cross(g1)
	g3 := geom.FolCosines(150, 40)
	return g1, g2, g3
}

func TestKentRejectsBetaAboveKappa(t *testing.T) {
	g1, g2, g3 := kentFrame()
	if _, err := NewKent(g1, g2, g3, 10, 10, nil); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for beta == kappa, got %v", err)
	}
	if _, err := NewKent(g1, g2, g3, 10, -1, nil); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for negative beta, got %v", err)
	}
}

func TestKentMeanDirection(t *testing.T) {
	g1, g2, g3 := kentFrame()
	d, err := NewKent(g1, g2, g3, 30, 10, rand.NewSource(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var r geom.Vec3
	for _, v := range d.Sample(2000) {
		r = r.Add(v)
	}
	ang, _ := r.Angle(g1)
	if ang > 4 {
		t.Errorf("expected resultant within 4 degrees of Gamma1, got %f", ang)
	}
}

func TestKentElliptical(t *testing.T) {
	// With strong ellipticity the spread along Gamma2 exceeds Gamma3.
	g1, g2, g3 := kentFrame()
	d, _ := NewKent(g1, g2, g3, 50, 40, rand.NewSource(6))
	var s2, s3 float64
	for _, v := range d.Sample(2000) {
		c2, c3 := g2.Dot(v), g3.Dot(v)
		s2 += c2 * c2
		s3 += c3 * c3
	}
	if s2 <= s3 {
		t.Errorf("expected larger spread along Gamma2 (got %f) than Gamma3 (got %f)", s2, s3)
	}
}

func TestKentStrongEllipticitySamplesAreUnit(t *testing.T) {
	// Beta close to kappa pushes the density toward a girdle; draws must
	// still complete and stay on the unit sphere.
	g1, g2, g3 := kentFrame()
	d, err := NewKent(g1, g2, g3, 100, 80, rand.NewSource(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range d.Sample(200) {
		if math.Abs(v.Abs()-1) > 1e-9 {
			t.Fatalf("expected unit sample, got length %f", v.Abs())
		}
	}
}

// --- uniform sphere tests ---

func TestRandomSphereIsUnbiased(t *testing.T) {
	src := rand.NewSource(7)
	var r geom.Vec3
	const n = 5000
	for i := 0; i < n; i++ {
		r = r.Add(RandomSphere(src))
	}
	if r.Abs()/n > 0.05 {
		t.Errorf("expected near-zero mean resultant, got %f", r.Abs()/n)
	}
}
