package ports

import "memscrub/internal/core/domain"

// Defines the interface for persisting detected faults. Reporting is
// off the hot path; implementations may do I/O, allocation and
// compression.
type FaultReporter interface {
	// Persists one fault record. Returns the location of the written
	// artifact (a file path for the disk reporter, empty if the
	// implementation keeps nothing).
	Report(fault *domain.Fault) (string, error)

	// Close releases reporter resources.
	Close() error
}
