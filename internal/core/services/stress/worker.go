package stress

import (
	"context"
	"errors"
	"time"

	"memscrub/internal/core/domain"
	"memscrub/internal/core/ports"
	"memscrub/pkg/adler"
	stresserrors "memscrub/pkg/errors"
)

// ErrRunnerClosed indicates an operation on a closed runner.
var ErrRunnerClosed = errors.New("stress: runner is closed")

// runWorker is one fill-copy-verify loop. Each worker owns a disjoint
// source/destination pair for its whole lifetime, so the hot path
// takes no locks and shares nothing mutable with its siblings.
func (r *Runner) runWorker(ctx context.Context, worker int) {
	src := r.regions.Get()
	dst := r.regions.Get()
	defer r.regions.Put(src)
	defer r.regions.Put(dst)

	regionBytes := uint64(len(src)) * adler.WordSize

	for pass := uint64(0); ; pass++ {
		if r.options.Passes > 0 && pass >= r.options.Passes {
			return
		}
		// Cancellation is honored here, between passes. A single pass
		// is short relative to any sane shutdown budget, and the copy
		// primitive has no mid-call cancellation by design.
		select {
		case <-ctx.Done():
			return
		default:
		}

		filler := r.fillers[pass%uint64(len(r.fillers))]
		filler.Fill(src, pass)

		want, err := adler.Calculate(src)
		if err != nil {
			r.recordCopyError(worker, "calculate", err)
			return
		}

		copied, err := r.copier.Copy(dst, src)
		if err != nil {
			r.recordCopyError(worker, "copy", err)
			return
		}
		if copied != want {
			r.recordFault(worker, pass, domain.FaultStageCopy, filler, want, copied, dst)
		}

		// Re-read the destination the same way a later consumer
		// would. A mismatch here and not above means the data went
		// bad on the write path or at rest.
		stored, err := adler.Calculate(dst)
		if err != nil {
			r.recordCopyError(worker, "verify", err)
			return
		}
		if stored != want && copied == want {
			r.recordFault(worker, pass, domain.FaultStageReadBack, filler, want, stored, dst)
		}

		r.stats.passes.Add(1)
		r.stats.bytesCopied.Add(regionBytes)
	}
}

// recordCopyError handles operational failures of the primitive. The
// geometry is validated before workers start, so hitting the size
// bound here means the configuration and the validation disagree;
// the worker stops rather than spin on a failing region.
func (r *Runner) recordCopyError(worker int, operation string, err error) {
	r.stats.copyErrors.Add(1)

	serr := stresserrors.NewStressError(stresserrors.ErrorCopy, operation, err)
	r.log.Errorw("copy primitive rejected region",
		"run_id", r.runID,
		"worker", worker,
		"operation", operation,
		"retryable", serr.IsRetryAble(),
		"error", serr,
	)
}

// recordFault logs a detected miscompare and hands the offending
// region to the reporter.
func (r *Runner) recordFault(
	worker int,
	pass uint64,
	stage domain.FaultStage,
	filler ports.PatternFiller,
	want, got adler.Checksum,
	region []uint64,
) {
	r.stats.faults.Add(1)

	fault := &domain.Fault{
		RunID:      r.runID,
		Worker:     worker,
		Pass:       pass,
		Stage:      stage,
		Pattern:    domain.PatternKind(filler.Name()),
		Variant:    domain.CopyVariant(r.copier.Name()),
		Expected:   want.ToHexString(),
		Actual:     got.ToHexString(),
		DetectedAt: time.Now(),
		Region:     region,
	}

	r.log.Errorw("memory miscompare detected",
		"run_id", r.runID,
		"worker", worker,
		"pass", pass,
		"stage", stage.String(),
		"pattern", fault.Pattern,
		"variant", fault.Variant,
		"expected", fault.Expected,
		"actual", fault.Actual,
	)

	if r.reporter == nil {
		return
	}

	path, err := r.reporter.Report(fault)
	if err != nil {
		serr := stresserrors.NewStressError(stresserrors.ErrorReport, "dump fault", err)
		r.log.Errorw("failed to persist fault dump",
			"run_id", r.runID,
			"worker", worker,
			"retryable", serr.IsRetryAble(),
			"error", serr,
		)
		return
	}
	r.log.Infow("fault dump written", "run_id", r.runID, "worker", worker, "path", path)
}
