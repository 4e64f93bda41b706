package main

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/geofabric/geofabric/pkg/config"
	"github.com/geofabric/geofabric/pkg/feature"
	"github.com/geofabric/geofabric/pkg/geom"
	"github.com/geofabric/geofabric/pkg/proj"
	"github.com/geofabric/geofabric/pkg/sdb"
)

// loadConfig reads geofabric.yaml from the working directory, falling
// back to defaults.
func loadConfig() config.Config {
	cfg, err := config.LoadProject(".")
	if err != nil {
		return config.Default()
	}
	return cfg
}

type sampleOptions struct {
	dist  string
	n     int
	azi   float64
	inc   float64
	kappa float64
	beta  float64
	seed  uint64
}

// loadAxialSet reads a CSV file as the requested axial set kind. Pair
// and fault files go through loadStats directly.
func loadAxialSet(path, kind string) (azis, incs []float64, vecs feature.Vector3Set, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, feature.Vector3Set{}, err
	}
	defer f.Close()

	switch kind {
	case "lin":
		s, err := feature.LineationSetFromCSV(f, path)
		if err != nil {
			return nil, nil, feature.Vector3Set{}, err
		}
		azis, incs = s.Geo()
		return azis, incs, s.Vector3Set(), nil
	case "fol":
		s, err := feature.FoliationSetFromCSV(f, path)
		if err != nil {
			return nil, nil, feature.Vector3Set{}, err
		}
		azis, incs = s.Geo()
		return azis, incs, s.Vector3Set(), nil
	}
	return nil, nil, feature.Vector3Set{}, fmt.Errorf("unknown feature type %q", kind)
}

func runStats(cfg config.Config, path, kind string) error {
	switch kind {
	case "lin":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		s, err := feature.LineationSetFromCSV(f, path)
		if err != nil {
			return err
		}
		return printAxialStats(cfg, axialStats{
			n: s.Len(),
			r: func() (float64, float64, float64, error) {
				res, err := s.R(false)
				if err != nil {
					return 0, 0, 0, err
				}
				a, i := res.Geo()
				return a, i, res.Vec().Abs(), nil
			},
			fisher:  s.FisherStatistics,
			varFn:   s.Var,
			delta:   s.Delta,
			rdegree: s.RDegree,
			ot:      s.Ortensor,
		})
	case "fol":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		s, err := feature.FoliationSetFromCSV(f, path)
		if err != nil {
			return err
		}
		return printAxialStats(cfg, axialStats{
			n: s.Len(),
			r: func() (float64, float64, float64, error) {
				res, err := s.R(false)
				if err != nil {
					return 0, 0, 0, err
				}
				a, i := res.Geo()
				return a, i, res.Vec().Abs(), nil
			},
			fisher:  s.FisherStatistics,
			varFn:   s.Var,
			delta:   s.Delta,
			rdegree: s.RDegree,
			ot:      s.Ortensor,
		})
	case "pair":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		s, err := feature.PairSetFromCSV(f, path)
		if err != nil {
			return err
		}
		printPairStats(cfg, s)
		return nil
	case "fault":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		s, err := feature.FaultSetFromCSV(f, path)
		if err != nil {
			return err
		}
		printFaultStats(cfg, s)
		return nil
	}
	return fmt.Errorf("unknown feature type %q", kind)
}

func runSample(opts sampleOptions) error {
	var src rand.Source
	if opts.seed != 0 {
		src = rand.NewSource(opts.seed)
	}
	mu := geom.LinCosines(opts.azi, opts.inc)

	var set feature.Vector3Set
	var err error
	switch opts.dist {
	case "fisher":
		set, err = feature.RandomFisher(mu, opts.kappa, opts.n, "sample", src)
	case "kent":
		g1 := mu
		g3 := geom.FolCosines(opts.azi, opts.inc)
		g2 := g3.Cross(g1)
		set, err = feature.RandomKent(g1, g2, g3, opts.kappa, opts.beta, opts.n, "sample", src)
	case "vonmises":
		s2, verr := feature.RandomVonMises(opts.azi, opts.kappa, opts.n, "sample", src)
		if verr != nil {
			return verr
		}
		fmt.Println("direction")
		for _, d := range s2.Directions() {
			fmt.Printf("%.4f\n", d)
		}
		return nil
	case "uniform-gss":
		set = feature.UniformGSS(opts.n, "sample")
	case "uniform-sfs":
		set = feature.UniformSFS(opts.n, "sample")
	case "random":
		set = feature.RandomSpherical(opts.n, "sample", src)
	default:
		return fmt.Errorf("unknown distribution %q", opts.dist)
	}
	if err != nil {
		return err
	}
	return set.Lineations().ToCSV(os.Stdout)
}

func runConvert(path, kind, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var set any
	switch kind {
	case "lin":
		set, err = feature.LineationSetFromCSV(f, name)
	case "fol":
		set, err = feature.FoliationSetFromCSV(f, name)
	case "pair":
		set, err = feature.PairSetFromCSV(f, name)
	case "fault":
		set, err = feature.FaultSetFromCSV(f, name)
	default:
		return fmt.Errorf("unknown feature type %q", kind)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}

func runProject(path, kind, net string) error {
	p := proj.ByName(net)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	output := map[string]any{"net": p.Name()}
	switch kind {
	case "lin":
		s, err := feature.LineationSetFromCSV(f, path)
		if err != nil {
			return err
		}
		output["points"] = proj.ProjectVecs(p, s.Vecs())
	case "fol":
		s, err := feature.FoliationSetFromCSV(f, path)
		if err != nil {
			return err
		}
		output["points"] = proj.ProjectVecs(p, s.Vecs())
		circles := make([][]proj.Point, s.Len())
		for i := 0; i < s.Len(); i++ {
			circles[i] = proj.GreatCircle(p, s.At(i), 91)
		}
		output["circles"] = circles
	default:
		return fmt.Errorf("unknown feature type %q", kind)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runRose(path, kind string, bins int) error {
	azis, _, _, err := loadAxialSet(path, kind)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(proj.Rose(azis, bins, true))
}

func runSdbInfo(path string) error {
	db, err := sdb.Open(path)
	if err != nil {
		return err
	}
	version, err := db.Version()
	if err != nil {
		return err
	}
	structures, err := db.Structures()
	if err != nil {
		return err
	}
	sites, err := db.Sites()
	if err != nil {
		return err
	}
	printSdbInfo(path, version, structures, sites)
	return nil
}

func runSdbExport(path, structure string) error {
	db, err := sdb.Open(path)
	if err != nil {
		return err
	}
	if ls, err := db.Lineations(structure); err == nil {
		return ls.ToCSV(os.Stdout)
	}
	fs, err := db.Foliations(structure)
	if err != nil {
		return err
	}
	return fs.ToCSV(os.Stdout)
}
