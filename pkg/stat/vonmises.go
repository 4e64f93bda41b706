package stat

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
)

// VonMises is the circular normal distribution on compass bearings,
// parameterized by a mean direction Mu in degrees and concentration Kappa.
type VonMises struct {
	Mu    float64
	Kappa float64
	Src   rand.Source
}

// NewVonMises validates the parameters and returns the distribution.
func NewVonMises(mu, kappa float64, src rand.Source) (VonMises, error) {
	if kappa <= 0 {
		return VonMises{}, ErrDomain
	}
	return VonMises{Mu: geom.Mod360(mu), Kappa: kappa, Src: src}, nil
}

// Rand draws a bearing in degrees using the Best and Fisher (1979)
// wrapped-Cauchy rejection method.
func (d VonMises) Rand() float64 {
	u := uniform01(d.Src)
	tau := 1 + math.Sqrt(1+4*d.Kappa*d.Kappa)
	rho := (tau - math.Sqrt(2*tau)) / (2 * d.Kappa)
	r := (1 + rho*rho) / (2 * rho)

	var f float64
	for {
		u1, u2 := u.Rand(), u.Rand()
		z := math.Cos(math.Pi * u1)
		f = (1 + r*z) / (r + z)
		c := d.Kappa * (r - f)
		if c*(2-c)-u2 > 0 {
			break
		}
		if math.Log(c/u2)+1-c >= 0 {
			break
		}
	}
	theta := geom.Acosd(f)
	if u.Rand() < 0.5 {
		theta = -theta
	}
	return geom.Mod360(d.Mu + theta)
}

// Prob returns the probability density at bearing theta degrees. The
// density is per radian, matching the circular-distribution convention.
func (d VonMises) Prob(theta float64) float64 {
	return math.Exp(d.Kappa*geom.Cosd(theta-d.Mu)) / (2 * math.Pi * besselI0(d.Kappa))
}

// besselI0 is the modified Bessel function of the first kind, order zero,
// by power series. Adequate for the concentration range used here.
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	q := x * x / 4
	for k := 1; k < 200; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < 1e-16*sum {
			break
		}
	}
	return sum
}
