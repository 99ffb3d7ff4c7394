package stress

import (
	"fmt"
	"time"

	"memscrub/internal/adapters/memcopy"
	"memscrub/internal/adapters/pattern"
	"memscrub/internal/core/domain"
	"memscrub/pkg/adler"
	validation "memscrub/pkg/errors"
)

const maxWorkers = 4096

func Validate(opts *domain.StressOptions) error {
	if opts.Workers < 1 || opts.Workers > maxWorkers {
		return validation.NewValidationError(
			"workers", opts.Workers, fmt.Errorf("workers must be between 1 and %d", maxWorkers),
		)
	}

	if opts.RegionSizeBytes < MinRegionSizeBytes {
		return validation.NewValidationError(
			"region_size_bytes", opts.RegionSizeBytes,
			fmt.Errorf("region size must be at least %d bytes (one copy block)", MinRegionSizeBytes),
		)
	}

	// One copy iteration moves eight words; a region must hold whole
	// blocks or the tail would be silently skipped.
	if opts.RegionSizeBytes%MinRegionSizeBytes != 0 {
		return validation.NewValidationError(
			"region_size_bytes", opts.RegionSizeBytes,
			fmt.Errorf("region size must be a multiple of %d bytes", MinRegionSizeBytes),
		)
	}

	if words := opts.RegionSizeBytes / adler.WordSize; words > adler.MaxWords {
		return validation.NewValidationError(
			"region_size_bytes", opts.RegionSizeBytes,
			fmt.Errorf("region of %d words exceeds the checksum bound of %d words", words, adler.MaxWords),
		)
	}

	if opts.MemFraction <= 0 || opts.MemFraction > MaxMemFraction {
		return validation.NewValidationError(
			"mem_fraction", opts.MemFraction,
			fmt.Errorf("memory fraction must be in (0, %.1f]", MaxMemFraction),
		)
	}

	if opts.Duration < 0 {
		return validation.NewValidationError(
			"duration", opts.Duration, fmt.Errorf("duration must not be negative"),
		)
	}

	if opts.ProgressInterval < time.Second {
		return validation.NewValidationError(
			"progress_interval", opts.ProgressInterval,
			fmt.Errorf("progress interval must be at least 1s"),
		)
	}

	if err := memcopy.Validate(&opts.Copy); err != nil {
		return validation.NewValidationError("copy.variant", opts.Copy.Variant, err)
	}

	if err := pattern.Validate(&opts.Pattern); err != nil {
		return validation.NewValidationError("pattern.kinds", opts.Pattern.Kinds, err)
	}

	if opts.Report.Enable && opts.Report.Directory == "" {
		return validation.NewValidationError(
			"report.directory", opts.Report.Directory,
			fmt.Errorf("report directory is required when reporting is enabled"),
		)
	}

	return nil
}
