package stress

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"

	"memscrub/internal/adapters/memcopy"
	"memscrub/internal/adapters/pattern"
	"memscrub/internal/core/domain"
	"memscrub/pkg/adler"
)

const (
	// DefaultRegionSizeBytes is the largest region the checksum bound
	// allows: MaxWords 64-bit words.
	DefaultRegionSizeBytes = adler.MaxWords * adler.WordSize

	// DefaultMemFraction is the share of available host memory a run
	// may claim for its regions.
	DefaultMemFraction = 0.4

	// MaxMemFraction keeps even an explicit configuration from
	// starving the rest of the host.
	MaxMemFraction = 0.9

	// MinRegionSizeBytes is one copy block: eight words.
	MinRegionSizeBytes = 8 * adler.WordSize

	DefaultProgressInterval = 10 * time.Second
)

func prepareDefaults(opts *domain.StressOptions) *domain.StressOptions {
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	if opts.RegionSizeBytes == 0 {
		opts.RegionSizeBytes = DefaultRegionSizeBytes
	}

	if opts.MemFraction == 0 {
		opts.MemFraction = DefaultMemFraction
	}

	if opts.ProgressInterval == 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}

	if opts.Copy.Variant == "" {
		opts.Copy = *memcopy.DefaultOptions()
	}

	if len(opts.Pattern.Kinds) == 0 {
		seed := opts.Pattern.Seed
		opts.Pattern = *pattern.DefaultOptions()
		if seed != 0 {
			opts.Pattern.Seed = seed
		}
	}

	if opts.Report.Enable && opts.Report.Directory == "" {
		opts.Report.Directory = "reports"
	}

	return fitToHostMemory(opts)
}

// fitToHostMemory shrinks the worker count until the run's regions
// (two per worker) fit inside the configured fraction of currently
// available memory. Region size is the knob the operator chose
// deliberately, so the worker count gives way first.
func fitToHostMemory(opts *domain.StressOptions) *domain.StressOptions {
	vm, err := mem.VirtualMemory()
	if err != nil || vm.Available == 0 {
		// No host statistics, nothing sensible to fit against.
		return opts
	}

	budget := uint64(float64(vm.Available) * opts.MemFraction)
	perWorker := 2 * opts.RegionSizeBytes

	for opts.Workers > 1 && uint64(opts.Workers)*perWorker > budget {
		opts.Workers--
	}

	return opts
}
