package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/batch"
	"github.com/katalvlaran/nwalign/config"
	"github.com/katalvlaran/nwalign/records"
)

// alignFlags holds the raw flag values; only flags the user set override config.
type alignFlags struct {
	configPath  string
	match       int
	mismatch    int
	gap         int
	gapSymbol   string
	workers     int
	route       bool
	logLevel    string
	logFormat   string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nwalign",
		Short: "Global pairwise sequence alignment (Needleman–Wunsch)",
		Long: `nwalign computes optimal global alignments of sequence pairs.
Input is CSV with a header row and two sequence columns per row.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newAlignCmd())

	return rootCmd
}

func newAlignCmd() *cobra.Command {
	var f alignFlags
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "align [file.csv]",
		Short: "Align every row of a CSV file (stdin when omitted or \"-\")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			return runAlign(cmd.Context(), cfg, f.route, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML config file")
	flags.IntVar(&f.match, "match", def.Match, "score for equal symbols")
	flags.IntVar(&f.mismatch, "mismatch", def.Mismatch, "score for different symbols")
	flags.IntVar(&f.gap, "gap", def.Gap, "score for a symbol against a gap")
	flags.StringVar(&f.gapSymbol, "gap-symbol", def.GapSymbol, "gap marker written in the output")
	flags.IntVar(&f.workers, "workers", def.Workers, "concurrent alignments (0 = GOMAXPROCS)")
	flags.BoolVar(&f.route, "route", false, "append the move route (D/U/L) to each line")
	flags.StringVar(&f.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	flags.StringVar(&f.logFormat, "log-format", def.LogFormat, "auto, text or json")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus text metrics here on exit")

	return cmd
}

// resolveConfig loads file and env settings, then applies flags that were set.
func resolveConfig(cmd *cobra.Command, f alignFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("match") {
		cfg.Match = f.match
	}
	if flags.Changed("mismatch") {
		cfg.Mismatch = f.mismatch
	}
	if flags.Changed("gap") {
		cfg.Gap = f.gap
	}
	if flags.Changed("gap-symbol") {
		cfg.GapSymbol = f.gapSymbol
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// runAlign reads every pair, aligns them and writes one line per row in input order.
func runAlign(ctx context.Context, cfg config.Config, withRoute bool, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	runner := batch.NewRunner(
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger),
		batch.WithMetrics(batch.NewMetrics(reg)),
		batch.WithAlignOptions(cfg.AlignOptions()...),
	)

	pairs, err := records.ReadAll(in)
	if err != nil {
		logger.Error("read input", "error", err)

		return err
	}
	logger.Debug("input read", "pairs", len(pairs))

	results, err := runner.Run(ctx, pairs)
	if err != nil {
		return err
	}

	w := records.NewWriter(out, withRoute)
	for _, res := range results {
		if err := w.Write(res.Alignment); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// newLogger builds the slog logger; "auto" picks text on a terminal and JSON otherwise.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	format := cfg.LogFormat
	if format == config.LogFormatAuto {
		format = config.LogFormatJSON
		if fd, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(fd.Fd()) {
			format = config.LogFormatText
		}
	}
	if format == config.LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}
