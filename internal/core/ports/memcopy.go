package ports

import "memscrub/pkg/adler"

// Defines the interface for checksummed copy engines. Implementations
// are interchangeable: for identical input they must produce identical
// checksums and identical destination contents, differing only in
// throughput and side load.
type MemoryCopier interface {
	// Copies src into dst and returns the checksum of the data read
	// from src. The only reported failure is the size bound; all other
	// preconditions (disjoint buffers, dst capacity, exclusive access)
	// are the caller's to satisfy.
	Copy(dst, src []uint64) (adler.Checksum, error)

	// Name returns the variant name for logs and reports.
	Name() string

	// NonTemporal reports whether stores bypass the cache hierarchy.
	// When true the destination must not be trusted until a memory
	// fence has run; when false the copy is cache-polluting but needs
	// no fence. This is a platform capability, not a correctness knob.
	NonTemporal() bool
}
