package feature

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/geofabric/geofabric/pkg/geom"
	"github.com/geofabric/geofabric/pkg/stat"
	"github.com/geofabric/geofabric/pkg/tensor"
)

// Vector3Set is an ordered collection of plain (directed) vectors.
// Unlike the axial sets, addition and the resultant use ordinary vector
// summation without sign fixing.
type Vector3Set struct {
	data  []geom.Vec3
	name  string
	cache *otCache
}

// NewVector3Set builds a set from the given vectors.
func NewVector3Set(data []geom.Vec3, name string) Vector3Set {
	d := make([]geom.Vec3, len(data))
	copy(d, data)
	return Vector3Set{data: d, name: name, cache: &otCache{}}
}

// Vector3SetFromXYZ builds a set from parallel component slices.
func Vector3SetFromXYZ(xs, ys, zs []float64, name string) (Vector3Set, error) {
	if len(xs) != len(ys) || len(ys) != len(zs) {
		return Vector3Set{}, ErrLengthMismatch
	}
	d := make([]geom.Vec3, len(xs))
	for i := range xs {
		d[i] = geom.V3(xs[i], ys[i], zs[i])
	}
	return Vector3Set{data: d, name: name, cache: &otCache{}}, nil
}

// Len returns the number of vectors in the set.
func (s Vector3Set) Len() int {
	return len(s.data)
}

// Name returns the set label.
func (s Vector3Set) Name() string {
	return s.name
}

// At returns the vector at index i.
func (s Vector3Set) At(i int) geom.Vec3 {
	return s.data[i]
}

// Vecs returns a copy of the underlying vectors in insertion order.
func (s Vector3Set) Vecs() []geom.Vec3 {
	out := make([]geom.Vec3, len(s.data))
	copy(out, s.data)
	return out
}

// R returns the ordinary vector resultant, optionally divided by count.
func (s Vector3Set) R(mean bool) (geom.Vec3, error) {
	if len(s.data) == 0 {
		return geom.Vec3{}, ErrEmptySet
	}
	var r geom.Vec3
	for _, v := range s.data {
		r = r.Add(v)
	}
	if mean {
		r = r.Scale(1 / float64(len(s.data)))
	}
	return r, nil
}

func (s Vector3Set) normalizedResultantLength() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySet
	}
	var r geom.Vec3
	for _, v := range s.data {
		u, err := v.Normalized()
		if err != nil {
			return 0, err
		}
		r = r.Add(u)
	}
	return r.Abs(), nil
}

// FisherStatistics returns the Fisher (1953) estimators for the set.
func (s Vector3Set) FisherStatistics() (FisherStats, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return FisherStats{}, err
	}
	return fisherFromResultant(float64(len(s.data)), r), nil
}

// Var returns the Mardia (1972) spherical variance.
func (s Vector3Set) Var() (float64, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return 0, err
	}
	return 1 - r/float64(len(s.data)), nil
}

// Delta returns the 63% cone angle in degrees.
func (s Vector3Set) Delta() (float64, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return 0, err
	}
	return geom.Acosd(r / float64(len(s.data))), nil
}

// RDegree returns the degree of preferred orientation on a 0-100 scale.
func (s Vector3Set) RDegree() (float64, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return 0, err
	}
	n := float64(len(s.data))
	return 100 * (2*r - n) / n, nil
}

// Bootstrap returns n sets of the given size resampled with replacement
// from s. A size of zero keeps the size of s.
func (s Vector3Set) Bootstrap(n, size int, src rand.Source) ([]Vector3Set, error) {
	if len(s.data) == 0 {
		return nil, ErrEmptySet
	}
	if size <= 0 {
		size = len(s.data)
	}
	out := make([]Vector3Set, n)
	for i, sample := range resampleData(s.data, n, size, src) {
		out[i] = Vector3Set{data: sample, name: s.name, cache: &otCache{}}
	}
	return out, nil
}

// Halfspace returns a copy with vectors flipped so all lie within 90
// degrees of the common resultant.
func (s Vector3Set) Halfspace() Vector3Set {
	return Vector3Set{data: halfspaceVecs(s.data), name: s.name, cache: &otCache{}}
}

// Rotate rotates every vector by angle degrees about axis.
func (s Vector3Set) Rotate(axis geom.Vec3, angle float64) Vector3Set {
	out := make([]geom.Vec3, len(s.data))
	for i, v := range s.data {
		out[i] = v.Rotate(axis, angle)
	}
	return Vector3Set{data: out, name: s.name, cache: &otCache{}}
}

// Transform applies a linear map to every vector.
func (s Vector3Set) Transform(m geom.Mat3) Vector3Set {
	out := make([]geom.Vec3, len(s.data))
	for i, v := range s.data {
		out[i] = v.Transform(m)
	}
	return Vector3Set{data: out, name: s.name, cache: &otCache{}}
}

// Ortensor returns the memoized orientation tensor of the set.
func (s Vector3Set) Ortensor() tensor.Orientation {
	s.cache.once.Do(func() {
		s.cache.ot = tensor.FromVectors(s.data)
	})
	return s.cache.ot
}

// Cross returns all pairwise cross products (i < j).
func (s Vector3Set) Cross() Vector3Set {
	var out []geom.Vec3
	for i := 0; i < len(s.data)-1; i++ {
		for j := i + 1; j < len(s.data); j++ {
			out = append(out, s.data[i].Cross(s.data[j]))
		}
	}
	return Vector3Set{data: out, name: s.name, cache: &otCache{}}
}

// CrossSet returns element-wise cross products against an equal-length
// set.
func (s Vector3Set) CrossSet(o Vector3Set) (Vector3Set, error) {
	if len(s.data) != len(o.data) {
		return Vector3Set{}, ErrLengthMismatch
	}
	out := make([]geom.Vec3, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Cross(o.data[i])
	}
	return Vector3Set{data: out, name: s.name, cache: &otCache{}}, nil
}

// CrossVec broadcasts a single vector against every element.
func (s Vector3Set) CrossVec(v geom.Vec3) Vector3Set {
	out := make([]geom.Vec3, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Cross(v)
	}
	return Vector3Set{data: out, name: s.name, cache: &otCache{}}
}

// Angles returns all pairwise angles (i < j) in degrees.
func (s Vector3Set) Angles() []float64 {
	var out []float64
	for i := 0; i < len(s.data)-1; i++ {
		for j := i + 1; j < len(s.data); j++ {
			a, _ := s.data[i].Angle(s.data[j])
			out = append(out, a)
		}
	}
	return out
}

// AnglesTo returns element-wise angles against an equal-length set.
func (s Vector3Set) AnglesTo(o Vector3Set) ([]float64, error) {
	if len(s.data) != len(o.data) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(s.data))
	for i := range s.data {
		a, err := s.data[i].Angle(o.data[i])
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// AnglesToVec broadcasts a single vector against every element.
func (s Vector3Set) AnglesToVec(v geom.Vec3) ([]float64, error) {
	out := make([]float64, len(s.data))
	for i := range s.data {
		a, err := s.data[i].Angle(v)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// Lineations reinterprets the vectors as a LineationSet.
func (s Vector3Set) Lineations() LineationSet {
	out := make([]Lineation, len(s.data))
	for i, v := range s.data {
		out[i] = Lineation{v: v}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Foliations reinterprets the vectors as poles of a FoliationSet.
func (s Vector3Set) Foliations() FoliationSet {
	out := make([]Foliation, len(s.data))
	for i, v := range s.data {
		out[i] = Foliation{v: v}
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// golden section constants for the deterministic sphere coverings.
var (
	goldenAngle = math.Pi * (3 - math.Sqrt(5))
	goldenRatio = (1 + math.Sqrt(5)) / 2
)

// UniformGSS returns n vectors arranged on the golden section spiral, a
// deterministic quasi-uniform covering of the sphere.
func UniformGSS(n int, name string) Vector3Set {
	out := make([]geom.Vec3, n)
	off := 2 / float64(n)
	for i := 0; i < n; i++ {
		z := float64(i)*off - 1 + off/2
		r := math.Sqrt(math.Max(0, 1-z*z))
		phi := float64(i) * goldenAngle
		out[i] = geom.V3(r*math.Cos(phi), r*math.Sin(phi), z)
	}
	return Vector3Set{data: out, name: name, cache: &otCache{}}
}

// UniformSFS returns the n-point spherical Fibonacci point set.
func UniformSFS(n int, name string) Vector3Set {
	out := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		// Fractional part of i/phi drives the longitude sequence.
		frac := float64(i) / goldenRatio
		frac -= math.Floor(frac)
		phi := 2 * math.Pi * frac
		z := 1 - (2*float64(i)+1)/float64(n)
		r := math.Sqrt(math.Max(0, 1-z*z))
		out[i] = geom.V3(r*math.Cos(phi), r*math.Sin(phi), z)
	}
	return Vector3Set{data: out, name: name, cache: &otCache{}}
}

// RandomSpherical returns n vectors drawn uniformly on the sphere.
func RandomSpherical(n int, name string, src rand.Source) Vector3Set {
	out := make([]geom.Vec3, n)
	for i := range out {
		out[i] = stat.RandomSphere(src)
	}
	return Vector3Set{data: out, name: name, cache: &otCache{}}
}

// RandomFisher returns n vectors drawn from a von Mises-Fisher
// distribution around mu with concentration kappa.
func RandomFisher(mu geom.Vec3, kappa float64, n int, name string, src rand.Source) (Vector3Set, error) {
	d, err := stat.NewVonMisesFisher(mu, kappa, src)
	if err != nil {
		return Vector3Set{}, err
	}
	return Vector3Set{data: d.Sample(n), name: name, cache: &otCache{}}, nil
}

// RandomNormal returns n vectors scattered around mu, with deviation
// angles drawn from a normal distribution with standard deviation sigma
// degrees and deviation azimuths drawn uniformly.
func RandomNormal(mu geom.Vec3, sigma float64, n int, name string, src rand.Source) (Vector3Set, error) {
	center, err := mu.Normalized()
	if err != nil {
		return Vector3Set{}, err
	}
	if sigma <= 0 {
		return Vector3Set{}, stat.ErrDomain
	}
	pole := geom.V3(0, 0, 1)
	axis := pole.Cross(center)
	if axis.IsZero() {
		// mu is vertical; any horizontal axis carries the frame rotation.
		axis = geom.V3(1, 0, 0)
	}
	ang, _ := pole.Angle(center)
	dev := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	out := make([]geom.Vec3, n)
	for i := range out {
		tilt := geom.LinCosines(stat.RandomCircle(src), 0)
		out[i] = pole.Rotate(tilt, dev.Rand()).Rotate(axis, ang)
	}
	return Vector3Set{data: out, name: name, cache: &otCache{}}, nil
}

// RandomKent returns n vectors drawn from a Kent distribution with the
// given orthonormal frame, concentration kappa and ellipticity beta.
func RandomKent(g1, g2, g3 geom.Vec3, kappa, beta float64, n int, name string, src rand.Source) (Vector3Set, error) {
	d, err := stat.NewKent(g1, g2, g3, kappa, beta, src)
	if err != nil {
		return Vector3Set{}, err
	}
	return Vector3Set{data: d.Sample(n), name: name, cache: &otCache{}}, nil
}
