package feature

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/geom"
	"github.com/geofabric/geofabric/pkg/tensor"
)

// FisherStats holds the closed-form Fisher (1953) spherical statistics
// estimators for a sample of directions.
type FisherStats struct {
	// K is the estimated precision parameter; +Inf for a perfectly
	// concentrated sample.
	K float64 `json:"k"`
	// CSD is the estimated angular standard deviation in degrees.
	CSD float64 `json:"csd"`
	// A95 is the 95% confidence cone half-apex angle in degrees.
	A95 float64 `json:"a95"`
}

// axial is the contract shared by Lineation and Foliation that the generic
// set core builds on.
type axial[T any] interface {
	Vec() geom.Vec3
	Add(T) T
	Angle(T) float64
	Rotate(axis geom.Vec3, angle float64) T
	Transform(m geom.Mat3) T
	Normalized() T
	Geo() (azi, inc float64)
}

// otCache memoizes the orientation tensor of an immutable set.
type otCache struct {
	once sync.Once
	ot   tensor.Orientation
}

// axialSet is the shared implementation of LineationSet and FoliationSet.
type axialSet[T axial[T]] struct {
	data  []T
	name  string
	cache *otCache
}

func randomIndices(count, size int, src rand.Source) []int {
	draw := rand.Intn
	if src != nil {
		draw = rand.New(src).Intn
	}
	out := make([]int, size)
	for i := range out {
		out[i] = draw(count)
	}
	return out
}

// resampleData draws n samples of the given size, with replacement, from
// the source slice.
func resampleData[T any](data []T, n, size int, src rand.Source) [][]T {
	out := make([][]T, n)
	for i := range out {
		sample := make([]T, size)
		for j, k := range randomIndices(len(data), size, src) {
			sample[j] = data[k]
		}
		out[i] = sample
	}
	return out
}

func newAxialSet[T axial[T]](data []T, name string) axialSet[T] {
	d := make([]T, len(data))
	copy(d, data)
	return axialSet[T]{data: d, name: name, cache: &otCache{}}
}

// Len returns the number of features in the set.
func (s axialSet[T]) Len() int {
	return len(s.data)
}

// Name returns the set label used for display and legend grouping.
func (s axialSet[T]) Name() string {
	return s.name
}

// At returns the feature at index i.
func (s axialSet[T]) At(i int) T {
	return s.data[i]
}

// Features returns a copy of the underlying sequence in insertion order.
func (s axialSet[T]) Features() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// Vecs returns the raw vectors of all features in order.
func (s axialSet[T]) Vecs() []geom.Vec3 {
	out := make([]geom.Vec3, len(s.data))
	for i, e := range s.data {
		out[i] = e.Vec()
	}
	return out
}

// Geo returns the azimuth and inclination arrays of all features.
func (s axialSet[T]) Geo() (azis, incs []float64) {
	azis = make([]float64, len(s.data))
	incs = make([]float64, len(s.data))
	for i, e := range s.data {
		azis[i], incs[i] = e.Geo()
	}
	return azis, incs
}

// R returns the resultant of the set, summed with each element's own
// axial addition semantics. With mean true the resultant is divided by
// the number of features.
func (s axialSet[T]) R(mean bool) (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptySet
	}
	r := s.data[0]
	for _, e := range s.data[1:] {
		r = r.Add(e)
	}
	if mean {
		v := r.Vec().Scale(1 / float64(len(s.data)))
		return wrapVec[T](v), nil
	}
	return r, nil
}

// normalizedResultantLength returns |R| of the unit-normalized elements.
func (s axialSet[T]) normalizedResultantLength() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySet
	}
	r := s.data[0].Normalized()
	for _, e := range s.data[1:] {
		r = r.Add(e.Normalized())
	}
	return r.Vec().Abs(), nil
}

// FisherStatistics returns the Fisher (1953) estimators computed from the
// normalized resultant length. A perfectly concentrated sample (R == N)
// yields infinite precision and zero cone angles.
func (s axialSet[T]) FisherStatistics() (FisherStats, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return FisherStats{}, err
	}
	return fisherFromResultant(float64(len(s.data)), r), nil
}

// Var returns the Mardia (1972) spherical variance, 1 - |mean R| of the
// normalized elements.
func (s axialSet[T]) Var() (float64, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return 0, err
	}
	return 1 - r/float64(len(s.data)), nil
}

// Delta returns the cone angle containing roughly 63% of the data in
// degrees.
func (s axialSet[T]) Delta() (float64, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return 0, err
	}
	return geom.Acosd(r / float64(len(s.data))), nil
}

// RDegree returns the degree of preferred orientation on a 0-100 scale,
// 100*(2|R| - N)/N for the normalized resultant.
func (s axialSet[T]) RDegree() (float64, error) {
	r, err := s.normalizedResultantLength()
	if err != nil {
		return 0, err
	}
	n := float64(len(s.data))
	return 100 * (2*r - n) / n, nil
}

// Ortensor returns the orientation tensor of the set. The tensor is
// computed once per set instance and memoized.
func (s axialSet[T]) Ortensor() tensor.Orientation {
	s.cache.once.Do(func() {
		s.cache.ot = tensor.FromVectors(s.Vecs())
	})
	return s.cache.ot
}

// pairwiseAngles returns the angles of all i<j combinations.
func (s axialSet[T]) pairwiseAngles() []float64 {
	var out []float64
	for i := 0; i < len(s.data)-1; i++ {
		for j := i + 1; j < len(s.data); j++ {
			out = append(out, s.data[i].Angle(s.data[j]))
		}
	}
	return out
}

// anglesTo returns element-wise angles against an equal-length set.
func (s axialSet[T]) anglesTo(o axialSet[T]) ([]float64, error) {
	if len(s.data) != len(o.data) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Angle(o.data[i])
	}
	return out, nil
}

// anglesToFeature broadcasts a single feature against every element.
func (s axialSet[T]) anglesToFeature(f T) []float64 {
	out := make([]float64, len(s.data))
	for i := range s.data {
		out[i] = s.data[i].Angle(f)
	}
	return out
}

// fisherFromResultant evaluates the Fisher estimators for sample size n
// and resultant length r.
func fisherFromResultant(n, r float64) FisherStats {
	if math.Abs(n-r) < 1e-9 {
		return FisherStats{K: math.Inf(1), CSD: 0, A95: 0}
	}
	k := (n - 1) / (n - r)
	return FisherStats{
		K:   k,
		CSD: 81 / math.Sqrt(k),
		A95: geom.Acosd(1 - ((n-r)/r)*(math.Pow(20, 1/(n-1))-1)),
	}
}

// halfspaceVecs flips vectors until all lie within 90 degrees of the
// running resultant. Each flip strictly increases the resultant length,
// so the loop converges; the iteration bound is a safety net.
func halfspaceVecs(vs []geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, len(vs))
	copy(out, vs)
	var sum geom.Vec3
	for _, v := range out {
		sum = sum.Add(v)
	}
	for iter := 0; iter < 100; iter++ {
		changed := false
		for i, v := range out {
			if v.Dot(sum) < 0 {
				sum = sum.Sub(v.Scale(2))
				out[i] = v.Neg()
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return out
}

// wrapVec rebuilds a feature of type T around a raw vector. The vector
// comes from arithmetic on existing non-zero features.
func wrapVec[T axial[T]](v geom.Vec3) T {
	var t T
	switch any(t).(type) {
	case Lineation:
		return any(Lineation{v: v}).(T)
	case Foliation:
		return any(Foliation{v: v}).(T)
	}
	return t
}
