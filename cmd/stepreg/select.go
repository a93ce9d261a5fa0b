package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/internal/config"
	"github.com/arloliu/stepreg/selector"
	"github.com/spf13/cobra"
)

type selectFlags struct {
	configPath    string
	data          string
	compression   string
	target        string
	initial       []string
	thresholdIn   float64
	thresholdOut  float64
	minVars       int
	maxVars       int
	maxIterations int
	concurrency   int
	legacy        bool
	verbose       bool
}

func newSelectCmd() *cobra.Command {
	var flags selectFlags

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select predictors of a target column",
		Long: `Loads a CSV table (optionally .zst, .s2 or .lz4 compressed, or as named
by --compression), splits out the target column and runs adaptive
bidirectional stepwise selection over the remaining columns. Flags override
values from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			return runSelect(cmd, cfg)
		},
	}

	defaults := config.Default()
	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML run configuration")
	f.StringVarP(&flags.data, "data", "d", "", "input table (.csv, .csv.zst, .csv.s2, .csv.lz4)")
	f.StringVar(&flags.compression, "compression", "", "codec of --data when its extension does not tell (none, zstd, s2, lz4)")
	f.StringVarP(&flags.target, "target", "t", "", "name of the target column")
	f.StringSliceVar(&flags.initial, "initial", nil, "features included before the first pass")
	f.Float64Var(&flags.thresholdIn, "threshold-in", defaults.ThresholdIn, "inclusion p-value threshold")
	f.Float64Var(&flags.thresholdOut, "threshold-out", defaults.ThresholdOut, "exclusion p-value threshold")
	f.IntVar(&flags.minVars, "min-vars", defaults.MinVars, "minimum number of selected features")
	f.IntVar(&flags.maxVars, "max-vars", defaults.MaxVars, "maximum number of selected features")
	f.IntVar(&flags.maxIterations, "max-iterations", defaults.MaxIterations, "maximum number of selection passes")
	f.IntVar(&flags.concurrency, "concurrency", defaults.Concurrency, "parallel forward-step fits (0 = GOMAXPROCS)")
	f.BoolVar(&flags.legacy, "legacy", false, "use the earlier selection loop")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log every selection step to stderr")

	return cmd
}

// resolve loads the config file, if any, and applies explicitly set flags on top.
func (f *selectFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("data") {
		cfg.Data = f.data
	}
	if set("compression") {
		cfg.Compression = f.compression
	}
	if set("target") {
		cfg.Target = f.target
	}
	if set("initial") {
		cfg.Initial = f.initial
	}
	if set("threshold-in") {
		cfg.ThresholdIn = f.thresholdIn
	}
	if set("threshold-out") {
		cfg.ThresholdOut = f.thresholdOut
	}
	if set("min-vars") {
		cfg.MinVars = f.minVars
	}
	if set("max-vars") {
		cfg.MaxVars = f.maxVars
	}
	if set("max-iterations") {
		cfg.MaxIterations = f.maxIterations
	}
	if set("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if set("legacy") {
		cfg.Legacy = f.legacy
	}
	if set("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func runSelect(cmd *cobra.Command, cfg config.Config) error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ct, err := cfg.DataCompression()
	if err != nil {
		return err
	}
	frame, target, err := dataset.LoadFileAs(cfg.Data, ct, cfg.Target)
	if err != nil {
		return err
	}
	logger.Info("table loaded", "path", cfg.Data, "compression", ct, "rows", frame.Rows(), "candidates", frame.Len())

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, selector.WithLogger(logger))

	s, err := selector.New(opts...)
	if err != nil {
		return err
	}
	res, err := s.SelectContext(cmd.Context(), frame, target)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), res)
}

func printResult(w io.Writer, res *selector.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FEATURE\tP-VALUE\tR-VALUE\tCOEFFICIENT")
	for _, rec := range res.Included {
		coef := "-"
		if res.Model != nil {
			if c, ok := res.Model.Coefficient(rec.Name); ok {
				coef = fmt.Sprintf("%.6g", c)
			}
		}
		fmt.Fprintf(tw, "%s\t%.4g\t%.4f\t%s\n", rec.Name, rec.PValue, rec.RValue, coef)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nselected: %d\n", len(res.Features))
	fmt.Fprintf(w, "threshold_in: %.2f\n", res.ThresholdIn)
	if res.Model != nil {
		fmt.Fprintf(w, "r_squared: %.4f\n", res.Model.RSquared)
		fmt.Fprintf(w, "adj_r_squared: %.4f\n", res.Model.AdjRSquared)
	}
	fmt.Fprintf(w, "passes: %d\n", res.Iterations)
	fmt.Fprintf(w, "fits: %d (cached %d)\n", res.Fits, res.CacheHits)
	if res.Truncated {
		fmt.Fprintln(w, "truncated: true")
	}

	return nil
}
