package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/geofabric/geofabric/pkg/config"
	"github.com/geofabric/geofabric/pkg/feature"
	"github.com/geofabric/geofabric/pkg/sdb"
	"github.com/geofabric/geofabric/pkg/tensor"
)

// axialStats bundles the accessors of either axial set kind so the
// report printer stays type-free.
type axialStats struct {
	n       int
	r       func() (azi, inc, length float64, err error)
	fisher  func() (feature.FisherStats, error)
	varFn   func() (float64, error)
	delta   func() (float64, error)
	rdegree func() (float64, error)
	ot      func() tensor.Orientation
}

func printAxialStats(cfg config.Config, s axialStats) error {
	azi, inc, rlen, err := s.r()
	if err != nil {
		return err
	}
	fisher, err := s.fisher()
	if err != nil {
		return err
	}
	variance, err := s.varFn()
	if err != nil {
		return err
	}
	delta, err := s.delta()
	if err != nil {
		return err
	}
	rdeg, err := s.rdegree()
	if err != nil {
		return err
	}
	prec := cfg.NDigits

	fmt.Println("Orientation Statistics")
	fmt.Println("======================")
	fmt.Println()
	fmt.Printf("  N:                  %d\n", s.n)
	if rlen < cfg.Tolerance {
		// The resultant of a balanced set is numerical noise; its
		// direction carries no information.
		fmt.Println("  Resultant:          undefined")
	} else {
		fmt.Printf("  Resultant:          %.1f/%.1f\n", azi, inc)
	}
	fmt.Printf("  Variance:           %.*f\n", prec, variance)
	fmt.Printf("  Delta:              %.*f\n", prec, delta)
	fmt.Printf("  R-degree:           %.*f\n", prec, rdeg)
	fmt.Println()
	if math.IsInf(fisher.K, 1) {
		fmt.Println("  Fisher k:           inf (perfectly concentrated)")
	} else {
		fmt.Printf("  Fisher k:           %.*f\n", prec, fisher.K)
	}
	fmt.Printf("  Fisher csd:         %.*f\n", prec, fisher.CSD)
	fmt.Printf("  Fisher a95:         %.*f\n", prec, fisher.A95)
	fmt.Println()

	printFabric(cfg, s.ot())
	return nil
}

func printFabric(cfg config.Config, ot tensor.Orientation) {
	prec := cfg.NDigits
	e1, e2, e3 := ot.Eigenvalues()
	n := ot.Norm()
	fmt.Println("Fabric")
	fmt.Println("------")
	fmt.Printf("  Eigenvalues:        %.*f  %.*f  %.*f\n", prec, e1/n, prec, e2/n, prec, e3/n)
	fmt.Printf("  Woodcock shape:     %.*f\n", prec, ot.Shape())
	fmt.Printf("  Woodcock strength:  %.*f\n", prec, ot.Strength())
	fmt.Printf("  Vollmer P/G/R:      %.1f / %.1f / %.1f\n", ot.P(), ot.G(), ot.R())
	fmt.Printf("  Cylindricity B:     %.1f\n", ot.B())
	fmt.Printf("  Intensity:          %.*f\n", prec, ot.Intensity())
	fmt.Printf("  MAD:                %.*f\n", prec, ot.MAD())
}

func printPairStats(cfg config.Config, s feature.PairSet) {
	fmt.Println("Pair Statistics")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("  N:                  %d\n", s.Len())

	misfits := s.Misfits()
	if len(misfits) > 0 {
		abs := make([]float64, len(misfits))
		for i, m := range misfits {
			abs[i] = math.Abs(m)
		}
		prec := cfg.NDigits
		fmt.Printf("  Mean |misfit|:      %.*f\n", prec, floats.Sum(abs)/float64(len(abs)))
		fmt.Printf("  Max |misfit|:       %.*f\n", prec, floats.Max(abs))
	}
	fmt.Println()
	printFabric(cfg, s.Ortensor())
}

func printFaultStats(cfg config.Config, s feature.FaultSet) {
	printPairStats(cfg, s.Pairs())
	fmt.Println()

	var neg, pos int
	for _, sense := range s.Senses() {
		if sense < 0 {
			neg++
		} else {
			pos++
		}
	}
	fmt.Println("Kinematics")
	fmt.Println("----------")
	fmt.Printf("  Normal (-):         %d\n", neg)
	fmt.Printf("  Reverse (+):        %d\n", pos)
	if pr, err := s.PAt(cfg.PTAngle).R(false); err == nil {
		azi, inc := pr.Geo()
		fmt.Printf("  Mean P axis:        %.1f/%.1f\n", azi, inc)
	}
	if tr, err := s.TAt(cfg.PTAngle).R(false); err == nil {
		azi, inc := tr.Geo()
		fmt.Printf("  Mean T axis:        %.1f/%.1f\n", azi, inc)
	}
}

func printSdbInfo(path, version string, structures []sdb.Structure, sites []sdb.Site) {
	fmt.Printf("Database: %s\n", path)
	fmt.Printf("Version:  %s\n", version)
	fmt.Println()

	fmt.Printf("%-12s %-8s %s\n", "Structure", "Kind", "Description")
	fmt.Printf("%-12s %-8s %s\n", "---------", "----", "-----------")
	for _, st := range structures {
		kind := "linear"
		if st.Planar != 0 {
			kind = "planar"
		}
		fmt.Printf("%-12s %-8s %s\n", st.Name, kind, st.Description)
	}
	fmt.Println()

	fmt.Printf("Sites (%d):\n", len(sites))
	for _, site := range sites {
		fmt.Printf("  %-10s %12.1f %12.1f\n", site.Name, site.X, site.Y)
	}
}
