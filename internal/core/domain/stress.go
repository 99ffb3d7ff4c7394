package domain

import "time"

// StressOptions is the top-level configuration for a stress run.
// Zero values are filled in with defaults derived from the host
// (memory fraction, CPU count) before the run starts.
type StressOptions struct {
	// Workers is the number of concurrent copy workers. Each worker
	// owns a disjoint source/destination region pair, so workers never
	// synchronize on the hot path. Default: number of logical CPUs.
	Workers int

	// RegionSizeBytes is the size of each region. It must be a
	// multiple of 64 bytes (eight words, one copy block) and small
	// enough that a region's word count stays within the checksum's
	// overflow-safety bound. Default: the maximum safe region size.
	RegionSizeBytes uint64

	// MemFraction is the fraction of currently available host memory
	// the run may claim when RegionSizeBytes or Workers would over-
	// commit it. Bounded to (0, 0.9]. Default: 0.4.
	MemFraction float64

	// Duration bounds the wall-clock length of the run. Zero means
	// the run is bounded by Passes instead.
	Duration time.Duration

	// Passes bounds the number of fill-copy-verify passes per worker.
	// Zero with a zero Duration means run until cancelled.
	Passes uint64

	// ProgressInterval controls how often aggregate counters are
	// logged. Default: 10s.
	ProgressInterval time.Duration

	// Copy selects and configures the copy engine.
	Copy CopyOptions

	// Pattern configures the data patterns written to source regions.
	Pattern PatternOptions

	// Report configures where and how miscompare dumps are written.
	Report ReportOptions
}

// ReportOptions configures the fault reporter.
type ReportOptions struct {
	// Enable toggles on-disk miscompare dumps. Faults are always
	// logged; dumps additionally preserve the offending region for
	// offline analysis.
	Enable bool

	// Directory is where dump files are written. Default: "reports"
	// when reporting is enabled.
	Directory string

	// Compress toggles zstd compression of dump payloads.
	Compress bool
}
