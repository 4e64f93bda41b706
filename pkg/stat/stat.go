// Package stat provides directional random variate generators used by the
// feature set sampling factories: the planar von Mises distribution, the
// spherical von Mises-Fisher distribution and the Kent (Fisher-Bingham)
// distribution.
//
// Every sampler carries a rand.Source in the gonum distuv style; a nil
// source falls back to the shared global source, and a seeded source makes
// sampling reproducible.
package stat

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/geofabric/geofabric/pkg/geom"
)

// ErrDomain is returned when distribution parameters are outside their
// valid domain.
var ErrDomain = errors.New("stat: parameter outside distribution domain")

func uniform01(src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}
}

// RandomSphere returns a vector drawn uniformly from the unit sphere.
func RandomSphere(src rand.Source) geom.Vec3 {
	u := uniform01(src)
	z := 2*u.Rand() - 1
	phi := 360 * u.Rand()
	r := math.Sqrt(math.Max(0, 1-z*z))
	return geom.V3(r*geom.Cosd(phi), r*geom.Sind(phi), z)
}

// RandomCircle returns a bearing drawn uniformly from [0, 360).
func RandomCircle(src rand.Source) float64 {
	return 360 * uniform01(src).Rand()
}
