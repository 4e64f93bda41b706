package stat

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
)

// Kent is the 5-parameter Fisher-Bingham distribution (Kent 1982): unit
// vectors concentrated around Gamma1 with elliptical spread, Gamma2 being
// the major axis of the ellipse and Gamma3 its minor axis. The frame
// (Gamma1, Gamma2, Gamma3) must be right-handed orthonormal; Kappa is the
// concentration and Beta the ellipticity, 0 <= Beta < Kappa.
type Kent struct {
	Gamma1 geom.Vec3
	Gamma2 geom.Vec3
	Gamma3 geom.Vec3
	Kappa  float64
	Beta   float64
	Src    rand.Source
}

// NewKent validates the parameters and returns the distribution.
func NewKent(g1, g2, g3 geom.Vec3, kappa, beta float64, src rand.Source) (Kent, error) {
	u1, err := g1.Normalized()
	if err != nil {
		return Kent{}, err
	}
	u2, err := g2.Normalized()
	if err != nil {
		return Kent{}, err
	}
	u3, err := g3.Normalized()
	if err != nil {
		return Kent{}, err
	}
	if kappa <= 0 || beta < 0 || beta >= kappa {
		return Kent{}, ErrDomain
	}
	return Kent{Gamma1: u1, Gamma2: u2, Gamma3: u3, Kappa: kappa, Beta: beta, Src: src}, nil
}

// Rand draws a unit vector by rejection sampling: proposals uniform on the
// sphere are accepted against the Fisher-Bingham density
// exp(kappa*c1 + beta*(c2^2 - c3^2)), whose log maximum is
// kappa*x + beta*(1 - x^2) at x = min(1, kappa/(2*beta)).
func (d Kent) Rand() geom.Vec3 {
	x := 1.0
	if d.Beta > 0 && d.Kappa < 2*d.Beta {
		x = d.Kappa / (2 * d.Beta)
	}
	fmax := d.Kappa*x + d.Beta*(1-x*x)
	u := uniform01(d.Src)
	for {
		v := RandomSphere(d.Src)
		c1 := d.Gamma1.Dot(v)
		c2 := d.Gamma2.Dot(v)
		c3 := d.Gamma3.Dot(v)
		logf := d.Kappa*c1 + d.Beta*(c2*c2-c3*c3)
		if math.Log(u.Rand()) < logf-fmax {
			return v
		}
	}
}

// Sample draws n unit vectors.
func (d Kent) Sample(n int) []geom.Vec3 {
	out := make([]geom.Vec3, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}
