package tensor

import "github.com/geofabric/geofabric/pkg/geom"

// EllipsoidSet is an ordered collection of ellipsoids supporting batch
// rotation and transformation.
type EllipsoidSet struct {
	data []Ellipsoid
	name string
}

// NewEllipsoidSet builds a set from the given ellipsoids.
func NewEllipsoidSet(data []Ellipsoid, name string) EllipsoidSet {
	d := make([]Ellipsoid, len(data))
	copy(d, data)
	return EllipsoidSet{data: d, name: name}
}

// Len returns the number of ellipsoids in the set.
func (s EllipsoidSet) Len() int {
	return len(s.data)
}

// Name returns the set label.
func (s EllipsoidSet) Name() string {
	return s.name
}

// At returns the ellipsoid at index i.
func (s EllipsoidSet) At(i int) Ellipsoid {
	return s.data[i]
}

// Shapes returns the Woodcock shape parameter of every member.
func (s EllipsoidSet) Shapes() []float64 {
	out := make([]float64, len(s.data))
	for i, e := range s.data {
		out[i] = e.Shape()
	}
	return out
}

// Strengths returns the Woodcock strength parameter of every member.
func (s EllipsoidSet) Strengths() []float64 {
	out := make([]float64, len(s.data))
	for i, e := range s.data {
		out[i] = e.Strength()
	}
	return out
}

// Rxy returns the long-to-intermediate semiaxis ratio of every member.
func (s EllipsoidSet) Rxy() []float64 {
	out := make([]float64, len(s.data))
	for i, e := range s.data {
		out[i] = e.Rxy()
	}
	return out
}

// Ryz returns the intermediate-to-short semiaxis ratio of every member.
func (s EllipsoidSet) Ryz() []float64 {
	out := make([]float64, len(s.data))
	for i, e := range s.data {
		out[i] = e.Ryz()
	}
	return out
}

// Lodes returns the Lode parameter of every member.
func (s EllipsoidSet) Lodes() []float64 {
	out := make([]float64, len(s.data))
	for i, e := range s.data {
		out[i] = e.Lode()
	}
	return out
}

// Transform applies a frame change to every member.
func (s EllipsoidSet) Transform(m geom.Mat3) (EllipsoidSet, error) {
	out := make([]Ellipsoid, len(s.data))
	for i, e := range s.data {
		t, err := e.Transform(m)
		if err != nil {
			return EllipsoidSet{}, err
		}
		out[i] = t
	}
	return EllipsoidSet{data: out, name: s.name}, nil
}

// Rotate rotates every member by angle degrees about axis.
func (s EllipsoidSet) Rotate(axis geom.Vec3, angle float64) (EllipsoidSet, error) {
	return s.Transform(geom.RotationMatrix(axis, angle))
}
