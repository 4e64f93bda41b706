package feature

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// readRecords parses all CSV rows with the expected field count,
// skipping an optional non-numeric header row.
func readRecords(r io.Reader, fields int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true
	var out [][]float64
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing csv: %w", err)
		}
		row := make([]float64, fields)
		ok := true
		for i, f := range rec {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				ok = false
				break
			}
			row[i] = v
		}
		if !ok {
			if first {
				first = false
				continue
			}
			return nil, fmt.Errorf("parsing csv: non-numeric row %v", rec)
		}
		first = false
		out = append(out, row)
	}
}

// LineationSetFromCSV reads azimuth,inclination rows into a set. A
// header row is skipped when present.
func LineationSetFromCSV(r io.Reader, name string) (LineationSet, error) {
	rows, err := readRecords(r, 2)
	if err != nil {
		return LineationSet{}, err
	}
	out := make([]Lineation, len(rows))
	for i, row := range rows {
		out[i] = NewLineation(row[0], row[1])
	}
	return LineationSet{newAxialSet(out, name)}, nil
}

// FoliationSetFromCSV reads dip-azimuth,dip rows into a set.
func FoliationSetFromCSV(r io.Reader, name string) (FoliationSet, error) {
	rows, err := readRecords(r, 2)
	if err != nil {
		return FoliationSet{}, err
	}
	out := make([]Foliation, len(rows))
	for i, row := range rows {
		out[i] = NewFoliation(row[0], row[1])
	}
	return FoliationSet{newAxialSet(out, name)}, nil
}

// PairSetFromCSV reads fazi,finc,lazi,linc rows into a set.
func PairSetFromCSV(r io.Reader, name string) (PairSet, error) {
	rows, err := readRecords(r, 4)
	if err != nil {
		return PairSet{}, err
	}
	out := make([]Pair, len(rows))
	for i, row := range rows {
		out[i] = NewPair(row[0], row[1], row[2], row[3])
	}
	return NewPairSet(out, name), nil
}

// FaultSetFromCSV reads fazi,finc,lazi,linc,sense rows into a set.
func FaultSetFromCSV(r io.Reader, name string) (FaultSet, error) {
	rows, err := readRecords(r, 5)
	if err != nil {
		return FaultSet{}, err
	}
	out := make([]Fault, len(rows))
	for i, row := range rows {
		f, err := NewFault(row[0], row[1], row[2], row[3], int(row[4]))
		if err != nil {
			return FaultSet{}, err
		}
		out[i] = f
	}
	return NewFaultSet(out, name), nil
}

func writeGeoCSV(w io.Writer, header []string, azis, incs []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range azis {
		rec := []string{
			strconv.FormatFloat(azis[i], 'f', -1, 64),
			strconv.FormatFloat(incs[i], 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV writes the set as azimuth,inclination rows with a header.
func (s LineationSet) ToCSV(w io.Writer) error {
	azis, incs := s.Geo()
	return writeGeoCSV(w, []string{"azi", "inc"}, azis, incs)
}

// ToCSV writes the set as dip-azimuth,dip rows with a header.
func (s FoliationSet) ToCSV(w io.Writer) error {
	azis, incs := s.Geo()
	return writeGeoCSV(w, []string{"azi", "inc"}, azis, incs)
}

// ToCSV writes the set as fazi,finc,lazi,linc rows with a header.
func (s PairSet) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fazi", "finc", "lazi", "linc"}); err != nil {
		return err
	}
	for _, p := range s.data {
		fa, fi := p.Fol().Geo()
		la, li := p.Lin().Geo()
		rec := []string{
			strconv.FormatFloat(fa, 'f', -1, 64),
			strconv.FormatFloat(fi, 'f', -1, 64),
			strconv.FormatFloat(la, 'f', -1, 64),
			strconv.FormatFloat(li, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV writes the set as fazi,finc,lazi,linc,sense rows with a header.
func (s FaultSet) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fazi", "finc", "lazi", "linc", "sense"}); err != nil {
		return err
	}
	for _, f := range s.data {
		fa, fi := f.Fol().Geo()
		la, li := f.Lin().Geo()
		rec := []string{
			strconv.FormatFloat(fa, 'f', -1, 64),
			strconv.FormatFloat(fi, 'f', -1, 64),
			strconv.FormatFloat(la, 'f', -1, 64),
			strconv.FormatFloat(li, 'f', -1, 64),
			strconv.Itoa(f.Sense),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
