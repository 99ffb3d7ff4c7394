package compression

import (
	"fmt"
	"runtime"
)

// Options configures the zstd encoder and decoder used for fault
// dumps.
type Options struct {
	Level              uint8
	EncoderConcurrency uint8
	DecoderConcurrency uint8
}

// Returns Options initialized with recommended default values. Dumps
// are written off the hot path, so the default favors ratio slightly
// over speed.
func DefaultOptions() Options {
	return Options{
		Level:              DefaultLevel,
		EncoderConcurrency: uint8(runtime.NumCPU()),
		DecoderConcurrency: uint8(runtime.NumCPU()),
	}
}

// Checks if the options are valid and returns an error if any option
// is outside acceptable bounds.
func Validate(input Options) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}

	if input.EncoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"encoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.EncoderConcurrency,
		)
	}

	if input.DecoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}
