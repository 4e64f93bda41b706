package stat

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
)

// VonMisesFisher is the spherical analogue of the von Mises distribution:
// unit vectors concentrated around a central direction Mu with
// concentration Kappa.
type VonMisesFisher struct {
	Mu    geom.Vec3
	Kappa float64
	Src   rand.Source
}

// NewVonMisesFisher validates the parameters and returns the distribution.
// Mu need not be unit length but must be non-zero.
func NewVonMisesFisher(mu geom.Vec3, kappa float64, src rand.Source) (VonMisesFisher, error) {
	u, err := mu.Normalized()
	if err != nil {
		return VonMisesFisher{}, err
	}
	if kappa <= 0 {
		return VonMisesFisher{}, ErrDomain
	}
	return VonMisesFisher{Mu: u, Kappa: kappa, Src: src}, nil
}

// Rand draws a unit vector using the Wood (1994) simulation algorithm for
// dimension three.
func (d VonMisesFisher) Rand() geom.Vec3 {
	u := uniform01(d.Src)
	b := math.Sqrt(d.Kappa*d.Kappa+1) - d.Kappa
	x0 := (1 - b) / (1 + b)
	c := d.Kappa*x0 + 2*math.Log(1-x0*x0)

	var w float64
	for {
		z := u.Rand() // Beta(1,1)
		t := u.Rand()
		w = (1 - (1+b)*z) / (1 - (1-b)*z)
		if d.Kappa*w+2*math.Log(1-x0*w)-c >= math.Log(t) {
			break
		}
	}
	phi := 360 * u.Rand()
	r := math.Sqrt(math.Max(0, 1-w*w))
	v := geom.V3(r*geom.Cosd(phi), r*geom.Sind(phi), w)
	return rotateToPole(v, d.Mu)
}

// Sample draws n unit vectors.
func (d VonMisesFisher) Sample(n int) []geom.Vec3 {
	out := make([]geom.Vec3, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// rotateToPole moves a sample drawn around +z so its pole coincides with mu.
func rotateToPole(v, mu geom.Vec3) geom.Vec3 {
	pole := geom.V3(0, 0, 1)
	axis := pole.Cross(mu)
	if axis.IsZero() {
		if mu.Z < 0 {
			return v.Neg()
		}
		return v
	}
	ang, _ := pole.Angle(mu)
	return v.Rotate(axis, ang)
}
