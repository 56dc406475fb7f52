// Package batch aligns many sequence pairs concurrently.
//
// Each pair is an independent nw.AlignString call; pairs are fanned out over
// a bounded errgroup and results come back in input order.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/records"
)

// Result pairs an input row with its alignment.
type Result struct {
	Pair      records.Pair
	Alignment nw.StringAlignment
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of concurrent alignments.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics attaches metrics collectors.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithAlignOptions sets the options passed to every nw.AlignString call.
func WithAlignOptions(opts ...nw.Option) Option {
	return func(r *Runner) { r.alignOpts = append([]nw.Option(nil), opts...) }
}

// Runner aligns batches of pairs. A Runner is safe for concurrent use.
type Runner struct {
	workers   int
	logger    *slog.Logger
	metrics   *Metrics
	alignOpts []nw.Option
}

// NewRunner returns a Runner with the given options applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}

	return r
}

// Workers returns the effective concurrency bound.
func (r *Runner) Workers() int { return r.workers }

// Run aligns every pair and returns results in the order of pairs.
//
// The first failing pair cancels the remaining work and its error is
// returned, wrapped with the pair's line. Cancelling ctx stops scheduling
// new pairs and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, pairs []records.Pair) ([]Result, error) {
	results := make([]Result, len(pairs))
	start := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

schedule:
	for i := range pairs {
		select {
		case <-gCtx.Done():
			break schedule
		default:
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			al, err := r.alignOne(pairs[i])
			if err != nil {
				return err
			}
			results[i] = Result{Pair: pairs[i], Alignment: al}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Error("batch failed", "pairs", len(pairs), "error", err)

		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Info("batch aligned",
		"pairs", len(pairs),
		"workers", r.workers,
		"elapsed", time.Since(start))

	return results, nil
}

// alignOne aligns a single pair and records metrics.
func (r *Runner) alignOne(p records.Pair) (nw.StringAlignment, error) {
	begin := time.Now()
	al, err := nw.AlignString(p.Seq1, p.Seq2, r.alignOpts...)
	cells := (utf8.RuneCountInString(p.Seq1) + 1) * (utf8.RuneCountInString(p.Seq2) + 1)
	r.metrics.observe(cells, time.Since(begin).Seconds(), err == nil)
	if err != nil {
		return nw.StringAlignment{}, fmt.Errorf("line %d: %w", p.Line, err)
	}

	r.logger.Debug("pair aligned",
		"line", p.Line,
		"len1", len(p.Seq1),
		"len2", len(p.Seq2),
		"score", al.Score)

	return al, nil
}
