package stress

import (
	"sync/atomic"
	"time"
)

// counters aggregates worker progress. All fields are touched with
// atomics; workers never share any other mutable state.
type counters struct {
	passes      atomic.Uint64
	bytesCopied atomic.Uint64
	faults      atomic.Uint64
	copyErrors  atomic.Uint64
}

// Summary is the final accounting of a stress run.
type Summary struct {
	// Passes is the total number of fill-copy-verify passes completed
	// across all workers.
	Passes uint64

	// BytesCopied is the total volume moved through the checksummed
	// copy path.
	BytesCopied uint64

	// Faults is the number of detected miscompares. Zero is the only
	// acceptable value on healthy hardware.
	Faults uint64

	// CopyErrors counts operational copy failures (size-bound
	// rejections). Any nonzero value is a harness configuration bug,
	// since geometry is validated up front.
	CopyErrors uint64

	// Elapsed is the wall-clock length of the run.
	Elapsed time.Duration
}

func (c *counters) summary(elapsed time.Duration) *Summary {
	return &Summary{
		Passes:      c.passes.Load(),
		BytesCopied: c.bytesCopied.Load(),
		Faults:      c.faults.Load(),
		CopyErrors:  c.copyErrors.Load(),
		Elapsed:     elapsed,
	}
}
