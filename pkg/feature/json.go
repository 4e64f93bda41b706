package feature

import (
	"encoding/json"
	"fmt"

	"github.com/geofabric/geofabric/pkg/geom"
)

// Type tags used in the JSON envelope.
const (
	typeVector3Set   = "vec3set"
	typeLineationSet = "linset"
	typeFoliationSet = "folset"
	typePairSet      = "pairset"
	typeFaultSet     = "faultset"
)

// setJSON is the common serialization envelope. Data rows carry raw
// vector components so a decoded set reproduces the original exactly,
// without round-tripping through angles.
type setJSON struct {
	Type string      `json:"type"`
	Name string      `json:"name"`
	Data [][]float64 `json:"data"`
}

func vecRows(vs []geom.Vec3) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v.X, v.Y, v.Z}
	}
	return out
}

func rowVec(row []float64) geom.Vec3 {
	return geom.V3(row[0], row[1], row[2])
}

func checkRows(env setJSON, width int) error {
	for _, row := range env.Data {
		if len(row) != width {
			return fmt.Errorf("decoding %s: expected %d values per row, got %d",
				env.Type, width, len(row))
		}
	}
	return nil
}

// MarshalJSON encodes the set in the typed envelope format.
func (s Vector3Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(setJSON{Type: typeVector3Set, Name: s.name, Data: vecRows(s.data)})
}

// UnmarshalJSON decodes a set previously produced by MarshalJSON.
func (s *Vector3Set) UnmarshalJSON(b []byte) error {
	var env setJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Type != typeVector3Set {
		return fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err := checkRows(env, 3); err != nil {
		return err
	}
	data := make([]geom.Vec3, len(env.Data))
	for i, row := range env.Data {
		data[i] = rowVec(row)
	}
	*s = Vector3Set{data: data, name: env.Name, cache: &otCache{}}
	return nil
}

// MarshalJSON encodes the set in the typed envelope format.
func (s LineationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(setJSON{Type: typeLineationSet, Name: s.name, Data: vecRows(s.Vecs())})
}

// UnmarshalJSON decodes a set previously produced by MarshalJSON.
func (s *LineationSet) UnmarshalJSON(b []byte) error {
	var env setJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Type != typeLineationSet {
		return fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err := checkRows(env, 3); err != nil {
		return err
	}
	data := make([]Lineation, len(env.Data))
	for i, row := range env.Data {
		data[i] = Lineation{v: rowVec(row)}
	}
	*s = LineationSet{newAxialSet(data, env.Name)}
	return nil
}

// MarshalJSON encodes the set in the typed envelope format. The pole
// display flag of individual foliations is not carried.
func (s FoliationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(setJSON{Type: typeFoliationSet, Name: s.name, Data: vecRows(s.Vecs())})
}

// UnmarshalJSON decodes a set previously produced by MarshalJSON.
func (s *FoliationSet) UnmarshalJSON(b []byte) error {
	var env setJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Type != typeFoliationSet {
		return fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err := checkRows(env, 3); err != nil {
		return err
	}
	data := make([]Foliation, len(env.Data))
	for i, row := range env.Data {
		data[i] = Foliation{v: rowVec(row)}
	}
	*s = FoliationSet{newAxialSet(data, env.Name)}
	return nil
}

// pairRow packs a corrected pair with its original misfit so decoding
// skips the fix-up step.
func pairRow(p Pair) []float64 {
	return []float64{
		p.fvec.X, p.fvec.Y, p.fvec.Z,
		p.lvec.X, p.lvec.Y, p.lvec.Z,
		p.Misfit,
	}
}

func rowPair(row []float64) Pair {
	return Pair{
		fvec:   geom.V3(row[0], row[1], row[2]),
		lvec:   geom.V3(row[3], row[4], row[5]),
		Misfit: row[6],
	}
}

// MarshalJSON encodes the set in the typed envelope format.
func (s PairSet) MarshalJSON() ([]byte, error) {
	rows := make([][]float64, len(s.data))
	for i, p := range s.data {
		rows[i] = pairRow(p)
	}
	return json.Marshal(setJSON{Type: typePairSet, Name: s.name, Data: rows})
}

// UnmarshalJSON decodes a set previously produced by MarshalJSON.
func (s *PairSet) UnmarshalJSON(b []byte) error {
	var env setJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Type != typePairSet {
		return fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err := checkRows(env, 7); err != nil {
		return err
	}
	data := make([]Pair, len(env.Data))
	for i, row := range env.Data {
		data[i] = rowPair(row)
	}
	*s = PairSet{data: data, name: env.Name, cache: &otCache{}}
	return nil
}

// MarshalJSON encodes the set in the typed envelope format.
func (s FaultSet) MarshalJSON() ([]byte, error) {
	rows := make([][]float64, len(s.data))
	for i, f := range s.data {
		rows[i] = append(pairRow(f.Pair), float64(f.Sense))
	}
	return json.Marshal(setJSON{Type: typeFaultSet, Name: s.name, Data: rows})
}

// UnmarshalJSON decodes a set previously produced by MarshalJSON.
func (s *FaultSet) UnmarshalJSON(b []byte) error {
	var env setJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Type != typeFaultSet {
		return fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err := checkRows(env, 8); err != nil {
		return err
	}
	data := make([]Fault, len(env.Data))
	for i, row := range env.Data {
		f, err := FaultFromPair(rowPair(row[:7]), int(row[7]))
		if err != nil {
			return err
		}
		data[i] = f
	}
	*s = FaultSet{data: data, name: env.Name, cache: &otCache{}}
	return nil
}

// UnmarshalSet decodes any serialized set by its type tag. It returns
// one of the concrete set types, or ErrUnknownType for an unrecognized
// tag.
func UnmarshalSet(b []byte) (any, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case typeVector3Set:
		var s Vector3Set
		err := json.Unmarshal(b, &s)
		return s, err
	case typeLineationSet:
		var s LineationSet
		err := json.Unmarshal(b, &s)
		return s, err
	case typeFoliationSet:
		var s FoliationSet
		err := json.Unmarshal(b, &s)
		return s, err
	case typePairSet:
		var s PairSet
		err := json.Unmarshal(b, &s)
		return s, err
	case typeFaultSet:
		var s FaultSet
		err := json.Unmarshal(b, &s)
		return s, err
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, head.Type)
}
