package commands

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wonny/fundamentals/internal/financials"
	"github.com/wonny/fundamentals/internal/metrics"
	"github.com/wonny/fundamentals/internal/report"
	"github.com/wonny/fundamentals/pkg/config"
	"github.com/wonny/fundamentals/pkg/logger"
)

// rootOptions collects the flags of one invocation. fin receives the
// quantity flags and is merged over the input file, if any.
type rootOptions struct {
	input      string
	output     string
	precedence string
	pdf        string
	explain    bool

	fin financials.Financials
}

// Execute builds the command tree and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fundamentals",
		Short: "Compute valuation and balance-sheet metrics for one company",
		Long: `Fundamentals derives valuation, profitability, liquidity and leverage
metrics from whatever financial figures are supplied.

Amounts accept a magnitude suffix: t (thousand), m (million), b (billion).
Series flags are repeatable; the first value is the most recent period.

Example:
  fundamentals -n Acme -P 100m -q 4 -e 10m
  fundamentals --input acme.yaml --output json
  fundamentals --input acme.toml -e 12m --explain --pdf acme.pdf`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	financials.RegisterFlags(fs, &opts.fin)
	fs.StringVarP(&opts.input, "input", "f", "", "Read figures from a YAML or TOML file (flags are applied after it)")
	fs.StringVar(&opts.output, "output", "", "Report format: text, json, yaml (default from FUNDAMENTALS_OUTPUT or text)")
	fs.StringVar(&opts.precedence, "precedence", "", "Formula precedence when several apply: last, first (default from FUNDAMENTALS_PRECEDENCE or last)")
	fs.StringVar(&opts.pdf, "pdf", "", "Also write the report to this PDF file")
	fs.BoolVarP(&opts.explain, "explain", "x", false, "Show the formula behind each metric")

	cmd.AddCommand(newMetricsCmd())
	cmd.AddCommand(newInputsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runReport(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, opts, cfg)

	precedence, err := metrics.ParsePrecedence(cfg.Precedence)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.New(cfg, cmd.ErrOrStderr()).WithField("run_id", runID)

	fin := &financials.Financials{}
	if opts.input != "" {
		if err := financials.LoadFile(opts.input, fin); err != nil {
			log.WithError(err).WithField("file", opts.input).Debug("Input file rejected")
			return err
		}
		log.WithField("file", opts.input).Debug("Loaded input file")
	}
	financials.Merge(fin, &opts.fin)

	if err := financials.Validate(fin); err != nil {
		log.WithError(err).Debug("Validation failed")
		return err
	}

	engine, err := metrics.NewEngine(log, metrics.WithPrecedence(precedence))
	if err != nil {
		return err
	}
	set := engine.Compute(fin)

	log.WithFields(map[string]interface{}{
		"computed":   len(set),
		"precedence": string(precedence),
	}).Info("Metrics computed")
	if len(set) == 0 {
		log.Warn("No metric computable from the supplied figures")
	}

	rep := report.New(fin, set)
	rep.RunID = runID

	if err := report.Render(cmd.OutOrStdout(), rep, format, report.Options{Explain: cfg.Explain}); err != nil {
		return err
	}

	if opts.pdf != "" {
		if err := writePDFFile(opts.pdf, rep, report.Options{Explain: cfg.Explain}); err != nil {
			return err
		}
		log.WithField("file", opts.pdf).Info("PDF written")
	}
	return nil
}

// applyFlagOverrides lets explicit flags win over environment configuration
func applyFlagOverrides(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("output") {
		cfg.Output = opts.output
	}
	if fs.Changed("precedence") {
		cfg.Precedence = opts.precedence
	}
	if fs.Changed("explain") {
		cfg.Explain = opts.explain
	}
}

func writePDFFile(path string, rep *report.Report, opts report.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PDF file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return report.WritePDF(f, rep, opts)
}
