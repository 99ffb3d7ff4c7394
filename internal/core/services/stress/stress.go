// Package stress orchestrates memory-integrity runs: it allocates
// paired test regions, drives concurrent fill-copy-verify workers over
// them, and turns every checksum miscompare into a logged, dumped
// fault. The copy primitive itself lives in pkg/adler; this service is
// its caller and owns everything the primitive deliberately does not:
// buffer validation, scheduling, logging and reporting.
package stress

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"memscrub/internal/adapters/memcopy"
	"memscrub/internal/adapters/pattern"
	"memscrub/internal/adapters/report"
	"memscrub/internal/core/domain"
	"memscrub/internal/core/ports"
	"memscrub/pkg/adler"
	"memscrub/pkg/pool"
	"memscrub/pkg/system"
)

// Runner owns one stress run. Create with New, drive with Run, release
// with Close. A Runner is not reusable across runs; the run ID ties
// logs and fault dumps to a single invocation.
type Runner struct {
	options *domain.StressOptions
	log     *zap.SugaredLogger
	runID   uuid.UUID

	copier   ports.MemoryCopier
	fillers  []ports.PatternFiller
	reporter ports.FaultReporter // nil when reporting is disabled
	regions  *pool.WordPool

	stats  counters
	closed atomic.Bool
}

// Option adjusts how New assembles a Runner beyond what StressOptions
// can express.
type Option func(*Runner)

// WithCopier substitutes the copy engine chosen by the configured
// variant. The override takes precedence over Copy.Variant and is how
// tests inject engines with known failure modes.
func WithCopier(copier ports.MemoryCopier) Option {
	return func(r *Runner) {
		r.copier = copier
	}
}

// New validates the options (after filling defaults from the host) and
// assembles the run. Option adjustments made to fit host memory are
// logged, not silent.
func New(opts *domain.StressOptions, log *zap.SugaredLogger, options ...Option) (*Runner, error) {
	if opts == nil {
		opts = &domain.StressOptions{}
	}

	requested := opts.Workers
	opts = prepareDefaults(opts)
	if requested != 0 && opts.Workers != requested {
		log.Infow("worker count reduced to fit host memory",
			"requested", requested,
			"workers", opts.Workers,
			"region_size_bytes", opts.RegionSizeBytes,
			"mem_fraction", opts.MemFraction,
		)
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	runner := Runner{
		options: opts,
		log:     log,
		runID:   uuid.New(),
		copier:  memcopy.New(opts.Copy.Variant),
		regions: pool.NewWordPool(int(opts.RegionSizeBytes / adler.WordSize)),
	}

	for _, option := range options {
		option(&runner)
	}

	for _, kind := range opts.Pattern.Kinds {
		runner.fillers = append(runner.fillers, pattern.New(kind, opts.Pattern.Seed))
	}

	if opts.Report.Enable {
		reporter, err := report.NewDiskReporter(&opts.Report)
		if err != nil {
			return nil, err
		}
		runner.reporter = reporter
	}

	return &runner, nil
}

// RunID returns the identifier stamped on this run's logs and dumps.
func (r *Runner) RunID() uuid.UUID {
	return r.runID
}

// Run executes the stress workers until the configured duration or
// pass budget is exhausted, or ctx is cancelled. Cancellation is
// honored between passes, never mid-copy. Returns the final summary;
// detected faults do not make Run fail, they are findings.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.closed.Load() {
		return nil, ErrRunnerClosed
	}

	r.log.Infow("starting stress run",
		"run_id", r.runID,
		"workers", r.options.Workers,
		"region_size_bytes", r.options.RegionSizeBytes,
		"region_words", r.regions.Words(),
		"variant", r.copier.Name(),
		"non_temporal", r.copier.NonTemporal(),
		"patterns", len(r.fillers),
		"duration", r.options.Duration,
		"passes", r.options.Passes,
	)

	runCtx := ctx
	if r.options.Duration > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.options.Duration)
		defer cancel()
	}

	start := time.Now()

	progressDone := make(chan struct{})
	go r.reportProgress(runCtx, progressDone)

	var wg sync.WaitGroup
	for i := 0; i < r.options.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r.runWorker(runCtx, worker)
		}(i)
	}
	wg.Wait()
	close(progressDone)

	summary := r.stats.summary(time.Since(start))
	r.log.Infow("stress run finished",
		"run_id", r.runID,
		"passes", summary.Passes,
		"bytes_copied", summary.BytesCopied,
		"faults", summary.Faults,
		"copy_errors", summary.CopyErrors,
		"elapsed", summary.Elapsed,
	)

	// The run itself succeeded even if it found faults; only the
	// caller decides whether findings are fatal.
	return summary, nil
}

// reportProgress logs aggregate counters until the run ends.
func (r *Runner) reportProgress(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(r.options.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.log.Infow("progress",
				"run_id", r.runID,
				"passes", r.stats.passes.Load(),
				"bytes_copied", r.stats.bytesCopied.Load(),
				"faults", r.stats.faults.Load(),
			)
		}
	}
}

// Close releases run resources. Safe to call once the workers have
// returned; idempotent.
func (r *Runner) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		return ErrRunnerClosed
	}

	return system.RunWithContext(ctx, func(context.Context) error {
		var err error
		if r.reporter != nil {
			err = multierr.Append(err, r.reporter.Close())
		}
		// The logger is owned by the caller; it outlives the run.
		return err
	})
}
