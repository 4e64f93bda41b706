package feature

import (
	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
)

// LineationSet is an ordered collection of lineations with axial
// summation semantics.
type LineationSet struct {
	axialSet[Lineation]
}

// NewLineationSet builds a set from the given lineations.
func NewLineationSet(data []Lineation, name string) LineationSet {
	return LineationSet{newAxialSet(data, name)}
}

// LineationSetFromGeo builds a set from parallel azimuth and
// inclination slices.
func LineationSetFromGeo(azis, incs []float64, name string) (LineationSet, error) {
	if len(azis) != len(incs) {
		return LineationSet{}, ErrLengthMismatch
	}
	out := make([]Lineation, len(azis))
	for i := range azis {
		out[i] = NewLineation(azis[i], incs[i])
	}
	return LineationSet{newAxialSet(out, name)}, nil
}

// Rotate rotates every lineation by angle degrees about axis.
func (s LineationSet) Rotate(axis geom.Vec3, angle float64) LineationSet {
	out := make([]Lineation, len(s.data))
	for i, e := range s.data {
		out[i] = e.Rotate(axis, angle)
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Transform applies a linear map to every lineation.
func (s LineationSet) Transform(m geom.Mat3) LineationSet {
	out := make([]Lineation, len(s.data))
	for i, e := range s.data {
		out[i] = e.Transform(m)
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Halfspace returns a copy with underlying vectors flipped into the
// halfspace of the common resultant.
func (s LineationSet) Halfspace() LineationSet {
	vs := halfspaceVecs(s.Vecs())
	out := make([]Lineation, len(vs))
	for i, v := range vs {
		out[i] = Lineation{v: v}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Cross returns all pairwise planes (i < j) containing two lines each.
func (s LineationSet) Cross() FoliationSet {
	var out []Foliation
	for i := 0; i < len(s.data)-1; i++ {
		for j := i + 1; j < len(s.data); j++ {
			out = append(out, s.data[i].Cross(s.data[j]))
		}
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// CrossSet returns element-wise planes against an equal-length set.
func (s LineationSet) CrossSet(o LineationSet) (FoliationSet, error) {
	if len(s.data) != len(o.data) {
		return FoliationSet{}, ErrLengthMismatch
	}
	out := make([]Foliation, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Cross(o.data[i])
	}
	return FoliationSet{newAxialSet(out, s.name)}, nil
}

// CrossFeature broadcasts a single lineation against every element.
func (s LineationSet) CrossFeature(l Lineation) FoliationSet {
	out := make([]Foliation, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Cross(l)
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// Angles returns all pairwise axial angles (i < j) in degrees.
func (s LineationSet) Angles() []float64 {
	return s.pairwiseAngles()
}

// AnglesTo returns element-wise angles against an equal-length set.
func (s LineationSet) AnglesTo(o LineationSet) ([]float64, error) {
	return s.anglesTo(o.axialSet)
}

// AnglesToFeature broadcasts a single lineation against every element.
func (s LineationSet) AnglesToFeature(l Lineation) []float64 {
	return s.anglesToFeature(l)
}

// Vector3Set returns the raw vectors as a directed set.
func (s LineationSet) Vector3Set() Vector3Set {
	return NewVector3Set(s.Vecs(), s.name)
}

// RandomFisherLineations draws n lineations from a von Mises-Fisher
// distribution centered on mu.
func RandomFisherLineations(mu Lineation, kappa float64, n int, name string, src rand.Source) (LineationSet, error) {
	vs, err := RandomFisher(mu.Vec(), kappa, n, name, src)
	if err != nil {
		return LineationSet{}, err
	}
	return vs.Lineations(), nil
}

// RandomNormalLineations draws n lineations normally scattered around mu
// with standard deviation sigma degrees.
func RandomNormalLineations(mu Lineation, sigma float64, n int, name string, src rand.Source) (LineationSet, error) {
	vs, err := RandomNormal(mu.Vec(), sigma, n, name, src)
	if err != nil {
		return LineationSet{}, err
	}
	return vs.Lineations(), nil
}

// Bootstrap returns n sets of the given size resampled with replacement
// from s. A size of zero keeps the size of s.
func (s LineationSet) Bootstrap(n, size int, src rand.Source) ([]LineationSet, error) {
	if len(s.data) == 0 {
		return nil, ErrEmptySet
	}
	if size <= 0 {
		size = len(s.data)
	}
	out := make([]LineationSet, n)
	for i, sample := range resampleData(s.data, n, size, src) {
		out[i] = LineationSet{newAxialSet(sample, s.name)}
	}
	return out, nil
}

// FoliationSet is an ordered collection of foliations, represented by
// their poles, with axial summation semantics.
type FoliationSet struct {
	axialSet[Foliation]
}

// NewFoliationSet builds a set from the given foliations.
func NewFoliationSet(data []Foliation, name string) FoliationSet {
	return FoliationSet{newAxialSet(data, name)}
}

// FoliationSetFromGeo builds a set from parallel dip-azimuth and dip
// slices.
func FoliationSetFromGeo(azis, incs []float64, name string) (FoliationSet, error) {
	if len(azis) != len(incs) {
		return FoliationSet{}, ErrLengthMismatch
	}
	out := make([]Foliation, len(azis))
	for i := range azis {
		out[i] = NewFoliation(azis[i], incs[i])
	}
	return FoliationSet{newAxialSet(out, name)}, nil
}

// Rotate rotates every foliation by angle degrees about axis.
func (s FoliationSet) Rotate(axis geom.Vec3, angle float64) FoliationSet {
	out := make([]Foliation, len(s.data))
	for i, e := range s.data {
		out[i] = e.Rotate(axis, angle)
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// Transform applies a linear map to every foliation pole.
func (s FoliationSet) Transform(m geom.Mat3) FoliationSet {
	out := make([]Foliation, len(s.data))
	for i, e := range s.data {
		out[i] = e.Transform(m)
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// Halfspace returns a copy with poles flipped into the halfspace of the
// common resultant.
func (s FoliationSet) Halfspace() FoliationSet {
	vs := halfspaceVecs(s.Vecs())
	out := make([]Foliation, len(vs))
	for i, v := range vs {
		out[i] = Foliation{v: v}
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// Cross returns all pairwise intersection lines (i < j).
func (s FoliationSet) Cross() LineationSet {
	var out []Lineation
	for i := 0; i < len(s.data)-1; i++ {
		for j := i + 1; j < len(s.data); j++ {
			out = append(out, s.data[i].Cross(s.data[j]))
		}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// CrossSet returns element-wise intersection lines against an
// equal-length set.
func (s FoliationSet) CrossSet(o FoliationSet) (LineationSet, error) {
	if len(s.data) != len(o.data) {
		return LineationSet{}, ErrLengthMismatch
	}
	out := make([]Lineation, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Cross(o.data[i])
	}
	return LineationSet{newAxialSet(out, s.name)}, nil
}

// CrossFeature broadcasts a single foliation against every element.
func (s FoliationSet) CrossFeature(f Foliation) LineationSet {
	out := make([]Lineation, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Cross(f)
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Angles returns all pairwise axial angles between poles (i < j).
func (s FoliationSet) Angles() []float64 {
	return s.pairwiseAngles()
}

// AnglesTo returns element-wise angles against an equal-length set.
func (s FoliationSet) AnglesTo(o FoliationSet) ([]float64, error) {
	return s.anglesTo(o.axialSet)
}

// AnglesToFeature broadcasts a single foliation against every element.
func (s FoliationSet) AnglesToFeature(f Foliation) []float64 {
	return s.anglesToFeature(f)
}

// DipVecs returns the dip vector of every plane.
func (s FoliationSet) DipVecs() LineationSet {
	out := make([]Lineation, len(s.data))
	for i, e := range s.data {
		out[i] = Lineation{v: e.DipVec()}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Vector3Set returns the raw pole vectors as a directed set.
func (s FoliationSet) Vector3Set() Vector3Set {
	return NewVector3Set(s.Vecs(), s.name)
}

// RandomFisherFoliations draws n foliations whose poles follow a von
// Mises-Fisher distribution centered on the pole of mu.
func RandomFisherFoliations(mu Foliation, kappa float64, n int, name string, src rand.Source) (FoliationSet, error) {
	vs, err := RandomFisher(mu.Vec(), kappa, n, name, src)
	if err != nil {
		return FoliationSet{}, err
	}
	return vs.Foliations(), nil
}

// RandomNormalFoliations draws n foliations whose poles are normally
// scattered around the pole of mu with standard deviation sigma degrees.
func RandomNormalFoliations(mu Foliation, sigma float64, n int, name string, src rand.Source) (FoliationSet, error) {
	vs, err := RandomNormal(mu.Vec(), sigma, n, name, src)
	if err != nil {
		return FoliationSet{}, err
	}
	return vs.Foliations(), nil
}

// Bootstrap returns n sets of the given size resampled with replacement
// from s. A size of zero keeps the size of s.
func (s FoliationSet) Bootstrap(n, size int, src rand.Source) ([]FoliationSet, error) {
	if len(s.data) == 0 {
		return nil, ErrEmptySet
	}
	if size <= 0 {
		size = len(s.data)
	}
	out := make([]FoliationSet, n)
	for i, sample := range resampleData(s.data, n, size, src) {
		out[i] = FoliationSet{newAxialSet(sample, s.name)}
	}
	return out, nil
}
