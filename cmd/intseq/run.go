package main

import (
	"fmt"
	"io"

	"github.com/ava-labs/intseq/pkg/intseq"
	"github.com/ava-labs/intseq/pkg/metrics"
	"github.com/ava-labs/intseq/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// runner carries what every command needs for a single run.
type runner struct {
	cfg     *Config
	sugar   *zap.SugaredLogger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
	out     io.Writer
}

func newRunner(c *cli.Context, newLogger loggerFactory) (*runner, error) {
	cfg, err := buildConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to build config: %w", err)
	}

	sugar, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.NewWithLabels(reg, metrics.Labels{
		Environment: cfg.Environment,
		Instance:    cfg.Instance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	r := &runner{
		cfg:     cfg,
		sugar:   sugar,
		reg:     reg,
		metrics: m,
		out:     c.App.Writer,
	}

	if err := cfg.applySample(c); err != nil {
		r.metrics.IncError(metrics.ErrTypeConfig)
		return nil, r.fail(fmt.Errorf("failed to build config: %w", err))
	}

	sugar.Debugw("config",
		"command", c.Command.Name,
		"verbose", cfg.Verbose,
		"printMetrics", cfg.PrintMetrics,
		"environment", cfg.Environment,
		"instance", cfg.Instance,
		"sample", utils.FormatInts(cfg.Sample),
		"threshold", cfg.Threshold,
	)

	return r, nil
}

// inputs collects --input followed by the positional arguments.
func (r *runner) inputs(c *cli.Context, operation string) ([]int, error) {
	nums, err := utils.ParseIntArgs(append([]string{c.String("input")}, c.Args().Slice()...))
	if err != nil {
		r.metrics.IncError(metrics.ErrTypeInvalidInput)
		r.metrics.RecordEvaluation(operation, 0, 0, err)
		return nil, r.fail(fmt.Errorf("failed to parse input: %w", err))
	}
	return nums, nil
}

// finish writes metrics when asked to and flushes the logger.
func (r *runner) finish() error {
	defer r.sugar.Desugar().Sync() //nolint:errcheck // best-effort flush; ignore sync errors

	if !r.cfg.PrintMetrics {
		return nil
	}
	if err := metrics.WriteText(r.out, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// fail finishes the run and returns err, so requested metrics still
// include the error that ended it.
func (r *runner) fail(err error) error {
	if ferr := r.finish(); ferr != nil {
		r.sugar.Warnw("failed to finish run", "error", ferr)
	}
	return err
}

func runDemo(c *cli.Context, newLogger loggerFactory) error {
	r, err := newRunner(c, newLogger)
	if err != nil {
		return err
	}

	result := intseq.FirstMissingPositiveOf(r.cfg.Sample)
	r.metrics.RecordEvaluation(metrics.FirstMissingPositive, len(r.cfg.Sample), result, nil)
	r.sugar.Infow("first missing positive", "sample", utils.FormatInts(r.cfg.Sample), "result", result)

	fmt.Fprintf(r.out, "result=%d\n", result)
	return r.finish()
}

func runMissing(c *cli.Context, newLogger loggerFactory) error {
	r, err := newRunner(c, newLogger)
	if err != nil {
		return err
	}

	nums, err := r.inputs(c, metrics.FirstMissingPositive)
	if err != nil {
		return err
	}

	// nums is owned here, so sorting it in place is fine.
	size := len(nums)
	result := intseq.FirstMissingPositive(nums)
	r.metrics.RecordEvaluation(metrics.FirstMissingPositive, size, result, nil)
	r.sugar.Debugw("first missing positive", "size", size, "result", result)

	fmt.Fprintln(r.out, result)
	return r.finish()
}

func runMin(c *cli.Context, newLogger loggerFactory) error {
	r, err := newRunner(c, newLogger)
	if err != nil {
		return err
	}

	nums, err := r.inputs(c, metrics.GetMin)
	if err != nil {
		return err
	}

	result := intseq.GetMin(nums, r.cfg.Threshold)
	r.metrics.RecordEvaluation(metrics.GetMin, len(nums), result, nil)
	r.sugar.Debugw("min above threshold", "size", len(nums), "threshold", r.cfg.Threshold, "result", result)

	fmt.Fprintln(r.out, result)
	return r.finish()
}
