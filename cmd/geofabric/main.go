package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/geofabric/geofabric/internal/server"
	"github.com/geofabric/geofabric/pkg/sdb"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geofabric",
		Short: "Orientation analysis for structural geology field data",
	}

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(sampleCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(roseCmd())
	rootCmd.AddCommand(sdbCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func statsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "stats [file.csv]",
		Short: "Compute orientation statistics for a measurement file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(loadConfig(), args[0], kind)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "lin", "feature type: lin, fol, pair or fault")
	return cmd
}

func sampleCmd() *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw a synthetic orientation sample and print it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSample(opts)
		},
	}

	cfg := loadConfig()
	cmd.Flags().StringVarP(&opts.dist, "dist", "d", "fisher",
		"distribution: fisher, kent, vonmises, uniform-gss, uniform-sfs or random")
	cmd.Flags().IntVarP(&opts.n, "count", "n", 100, "sample size")
	cmd.Flags().Float64Var(&opts.azi, "azi", 0, "central azimuth")
	cmd.Flags().Float64Var(&opts.inc, "inc", 90, "central inclination")
	cmd.Flags().Float64VarP(&opts.kappa, "kappa", "k", cfg.DefaultKappa, "concentration")
	cmd.Flags().Float64VarP(&opts.beta, "beta", "b", 0, "ellipticity (kent only)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", cfg.Seed, "random seed, 0 for nondeterministic")
	return cmd
}

func convertCmd() *cobra.Command {
	var kind, name string

	cmd := &cobra.Command{
		Use:   "convert [file.csv]",
		Short: "Convert a CSV measurement file to the JSON set format",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(args[0], kind, name)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "lin", "feature type: lin, fol, pair or fault")
	cmd.Flags().StringVar(&name, "name", "Default", "set name")
	return cmd
}

func projectCmd() *cobra.Command {
	var kind, net string

	cmd := &cobra.Command{
		Use:   "project [file.csv]",
		Short: "Project measurements onto a stereonet and print disc coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runProject(args[0], kind, net)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "lin", "feature type: lin or fol")
	cmd.Flags().StringVar(&net, "net", "equal-area", "projection: equal-area or equal-angle")
	return cmd
}

func roseCmd() *cobra.Command {
	var kind string
	var bins int

	cmd := &cobra.Command{
		Use:   "rose [file.csv]",
		Short: "Bin measurement azimuths into a rose diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRose(args[0], kind, bins)
		},
	}

	cfg := loadConfig()
	cmd.Flags().StringVarP(&kind, "type", "t", "lin", "feature type: lin or fol")
	cmd.Flags().IntVarP(&bins, "bins", "b", cfg.RoseBins, "number of sectors")
	return cmd
}

func sdbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdb",
		Short: "Inspect and export PySDB structural databases",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info [file.sdb]",
		Short: "Show database version, structures and sites",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSdbInfo(args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "export [file.sdb] [structure]",
		Short: "Export one structure's measurements as CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSdbExport(args[0], args[1])
		},
	})
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [file.sdb]",
		Short: "Serve a structural database over a local HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			db, err := sdb.Open(args[0])
			if err != nil {
				return err
			}
			srv := server.New(db, loadConfig(), port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
