package proj

import "github.com/geofabric/geofabric/pkg/geom"

// RoseBin is one sector of a rose diagram.
type RoseBin struct {
	// From is the bin's starting azimuth in degrees.
	From float64 `json:"from"`
	// To is the bin's ending azimuth in degrees.
	To float64 `json:"to"`
	// Count is the number of directions falling in the sector. For
	// axial data each direction also counts in the opposite sector.
	Count int `json:"count"`
}

// Rose bins compass directions into sectors of equal width. With axial
// true every direction is mirrored into the opposite sector, giving the
// symmetric diagram used for undirected data.
func Rose(directions []float64, bins int, axial bool) []RoseBin {
	if bins <= 0 {
		bins = 36
	}
	width := 360 / float64(bins)
	out := make([]RoseBin, bins)
	for i := range out {
		out[i].From = float64(i) * width
		out[i].To = float64(i+1) * width
	}
	for _, d := range directions {
		a := geom.Mod360(d)
		i := int(a / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
		if axial {
			j := int(geom.Mod360(a+180) / width)
			if j >= bins {
				j = bins - 1
			}
			out[j].Count++
		}
	}
	return out
}
