package feature

import (
	"github.com/geofabric/geofabric/pkg/geom"
	"github.com/geofabric/geofabric/pkg/tensor"
)

// PairSet is an ordered collection of coupled plane/line measurements.
type PairSet struct {
	data  []Pair
	name  string
	cache *otCache
}

// NewPairSet builds a set from the given pairs.
func NewPairSet(data []Pair, name string) PairSet {
	d := make([]Pair, len(data))
	copy(d, data)
	return PairSet{data: d, name: name, cache: &otCache{}}
}

// Len returns the number of pairs in the set.
func (s PairSet) Len() int {
	return len(s.data)
}

// Name returns the set label.
func (s PairSet) Name() string {
	return s.name
}

// At returns the pair at index i.
func (s PairSet) At(i int) Pair {
	return s.data[i]
}

// Fols returns the planes of all pairs as a FoliationSet.
func (s PairSet) Fols() FoliationSet {
	out := make([]Foliation, len(s.data))
	for i, p := range s.data {
		out[i] = p.Fol()
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// Lins returns the lines of all pairs as a LineationSet.
func (s PairSet) Lins() LineationSet {
	out := make([]Lineation, len(s.data))
	for i, p := range s.data {
		out[i] = p.Lin()
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Misfits returns the original pre-correction misfit of every pair in
// degrees.
func (s PairSet) Misfits() []float64 {
	out := make([]float64, len(s.data))
	for i, p := range s.data {
		out[i] = p.Misfit
	}
	return out
}

// RAxes returns the mutual cross axes (pole x line) of all pairs.
func (s PairSet) RAxes() LineationSet {
	out := make([]Lineation, len(s.data))
	for i, p := range s.data {
		out[i] = Lineation{v: p.fvec.Cross(p.lvec)}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// Rotate rotates every pair rigidly by angle degrees about axis.
func (s PairSet) Rotate(axis geom.Vec3, angle float64) PairSet {
	out := make([]Pair, len(s.data))
	for i, p := range s.data {
		out[i] = p.Rotate(axis, angle)
	}
	return PairSet{data: out, name: s.name, cache: &otCache{}}
}

// Ortensor returns the memoized Lisle (1989) orientation tensor of the
// coupled measurements.
func (s PairSet) Ortensor() tensor.Orientation {
	s.cache.once.Do(func() {
		fv := make([]geom.Vec3, len(s.data))
		lv := make([]geom.Vec3, len(s.data))
		for i, p := range s.data {
			fv[i] = p.fvec
			lv[i] = p.lvec
		}
		s.cache.ot = tensor.FromPairs(fv, lv)
	})
	return s.cache.ot
}

// FaultSet is an ordered collection of faults, pairs with a movement
// sense.
type FaultSet struct {
	data  []Fault
	name  string
	cache *otCache
}

// NewFaultSet builds a set from the given faults.
func NewFaultSet(data []Fault, name string) FaultSet {
	d := make([]Fault, len(data))
	copy(d, data)
	return FaultSet{data: d, name: name, cache: &otCache{}}
}

// Len returns the number of faults in the set.
func (s FaultSet) Len() int {
	return len(s.data)
}

// Name returns the set label.
func (s FaultSet) Name() string {
	return s.name
}

// At returns the fault at index i.
func (s FaultSet) At(i int) Fault {
	return s.data[i]
}

// Pairs returns the underlying plane/line pairs without sense.
func (s FaultSet) Pairs() PairSet {
	out := make([]Pair, len(s.data))
	for i, f := range s.data {
		out[i] = f.Pair
	}
	return PairSet{data: out, name: s.name, cache: s.cache}
}

// Senses returns the movement sense of every fault.
func (s FaultSet) Senses() []int {
	out := make([]int, len(s.data))
	for i, f := range s.data {
		out[i] = f.Sense
	}
	return out
}

// Fols returns the fault planes as a FoliationSet.
func (s FaultSet) Fols() FoliationSet {
	return s.Pairs().Fols()
}

// Lins returns the striations as a LineationSet.
func (s FaultSet) Lins() LineationSet {
	return s.Pairs().Lins()
}

// P returns the pressure axes of all faults at the conventional 90
// degree P-T span.
func (s FaultSet) P() LineationSet {
	return s.PAt(90)
}

// PAt returns the pressure axes of all faults for the given P-T span.
func (s FaultSet) PAt(ptangle float64) LineationSet {
	out := make([]Lineation, len(s.data))
	for i, f := range s.data {
		out[i] = Lineation{v: f.PVector(ptangle)}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// T returns the tension axes of all faults at the conventional 90 degree
// P-T span.
func (s FaultSet) T() LineationSet {
	return s.TAt(90)
}

// TAt returns the tension axes of all faults for the given P-T span.
func (s FaultSet) TAt(ptangle float64) LineationSet {
	out := make([]Lineation, len(s.data))
	for i, f := range s.data {
		out[i] = Lineation{v: f.TVector(ptangle)}
	}
	return LineationSet{newAxialSet(out, s.name)}
}

// M returns the M-planes of all faults.
func (s FaultSet) M() FoliationSet {
	out := make([]Foliation, len(s.data))
	for i, f := range s.data {
		out[i] = f.M()
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// D returns the dihedra planes of all faults.
func (s FaultSet) D() FoliationSet {
	out := make([]Foliation, len(s.data))
	for i, f := range s.data {
		out[i] = f.D()
	}
	return FoliationSet{newAxialSet(out, s.name)}
}

// Rotate rotates every fault rigidly by angle degrees about axis. The
// movement sense is preserved.
func (s FaultSet) Rotate(axis geom.Vec3, angle float64) FaultSet {
	out := make([]Fault, len(s.data))
	for i, f := range s.data {
		out[i] = f.Rotate(axis, angle)
	}
	return FaultSet{data: out, name: s.name, cache: &otCache{}}
}

// Ortensor returns the memoized Lisle (1989) orientation tensor.
func (s FaultSet) Ortensor() tensor.Orientation {
	return s.Pairs().Ortensor()
}
