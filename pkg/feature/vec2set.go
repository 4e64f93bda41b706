package feature

import (
	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
	"github.com/geofabric/geofabric/pkg/stat"
)

// Vector2Set is an ordered collection of planar directions.
type Vector2Set struct {
	data []geom.Vec2
	name string
}

// NewVector2Set builds a set from the given vectors.
func NewVector2Set(data []geom.Vec2, name string) Vector2Set {
	d := make([]geom.Vec2, len(data))
	copy(d, data)
	return Vector2Set{data: d, name: name}
}

// Vector2SetFromDirections builds a set of unit vectors from compass
// directions in degrees.
func Vector2SetFromDirections(dirs []float64, name string) Vector2Set {
	d := make([]geom.Vec2, len(dirs))
	for i, a := range dirs {
		d[i] = geom.FromDirection(a)
	}
	return Vector2Set{data: d, name: name}
}

// Len returns the number of vectors in the set.
func (s Vector2Set) Len() int {
	return len(s.data)
}

// Name returns the set label.
func (s Vector2Set) Name() string {
	return s.name
}

// At returns the vector at index i.
func (s Vector2Set) At(i int) geom.Vec2 {
	return s.data[i]
}

// Directions returns the compass direction of every vector in degrees.
func (s Vector2Set) Directions() []float64 {
	out := make([]float64, len(s.data))
	for i, v := range s.data {
		out[i] = v.Direction()
	}
	return out
}

// R returns the ordinary vector resultant, optionally divided by count.
func (s Vector2Set) R(mean bool) (geom.Vec2, error) {
	if len(s.data) == 0 {
		return geom.Vec2{}, ErrEmptySet
	}
	var r geom.Vec2
	for _, v := range s.data {
		r = r.Add(v)
	}
	if mean {
		r = r.Scale(1 / float64(len(s.data)))
	}
	return r, nil
}

// CircularVar returns the circular variance, 1 - |mean resultant| of
// the unit-normalized vectors.
func (s Vector2Set) CircularVar() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySet
	}
	var r geom.Vec2
	for _, v := range s.data {
		u, err := v.Normalized()
		if err != nil {
			return 0, err
		}
		r = r.Add(u)
	}
	return 1 - r.Abs()/float64(len(s.data)), nil
}

// Rotate rotates every vector counterclockwise by angle degrees.
func (s Vector2Set) Rotate(angle float64) Vector2Set {
	out := make([]geom.Vec2, len(s.data))
	for i, v := range s.data {
		out[i] = v.Rotate(angle)
	}
	return Vector2Set{data: out, name: s.name}
}

// RandomVonMises draws n unit directions from a von Mises distribution
// centered on mu degrees with concentration kappa.
func RandomVonMises(mu, kappa float64, n int, name string, src rand.Source) (Vector2Set, error) {
	d, err := stat.NewVonMises(mu, kappa, src)
	if err != nil {
		return Vector2Set{}, err
	}
	out := make([]geom.Vec2, n)
	for i := range out {
		out[i] = geom.FromDirection(d.Rand())
	}
	return Vector2Set{data: out, name: name}, nil
}
