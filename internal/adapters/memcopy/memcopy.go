// Package memcopy exposes the checksummed copy variants behind the
// MemoryCopier port. Every variant implements the same contract; the
// registry here only selects which implementation a run drives.
package memcopy

import (
	"fmt"

	"memscrub/internal/core/domain"
	"memscrub/internal/core/ports"
)

const (
	// Baseline is the straightforward word-loop copy.
	Baseline domain.CopyVariant = "baseline"

	// Warm interleaves inert floating-point work with the copy to
	// raise CPU power draw during the pass.
	Warm domain.CopyVariant = "warm"

	// Vector is the throughput-oriented unrolled copy, the portable
	// fallback of an architecture-accelerated port.
	Vector domain.CopyVariant = "vector"
)

// Returns recommended copy settings.
func DefaultOptions() *domain.CopyOptions {
	return &domain.CopyOptions{Variant: Baseline}
}

func Validate(input *domain.CopyOptions) error {
	switch input.Variant {
	case Baseline, Warm, Vector:
		return nil
	default:
		return fmt.Errorf("unsupported copy variant: %s", input.Variant)
	}
}

// New returns the copy engine for the given variant. Validate first;
// an unknown variant falls back to the baseline engine.
func New(variant domain.CopyVariant) ports.MemoryCopier {
	switch variant {
	case Warm:
		return NewWarmCopier()
	case Vector:
		return NewVectorCopier()
	default:
		return NewBaselineCopier()
	}
}
