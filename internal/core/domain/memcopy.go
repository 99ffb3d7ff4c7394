package domain

// CopyVariant selects one of the interchangeable checksummed-copy
// implementations. All variants share one contract: identical checksum
// and identical destination contents for identical input; they differ
// only in throughput and in the side load they put on the CPU.
type CopyVariant string

// CopyOptions configures the copy engine used by stress workers.
type CopyOptions struct {
	// Variant names the copy implementation to run. Defaults to the
	// baseline variant if not specified.
	Variant CopyVariant
}

// PatternKind names a data pattern used to fill source regions before
// a copy pass. Different patterns stress different failure modes:
// solid patterns catch stuck bits, alternating patterns catch coupling
// faults, random data catches pattern-sensitive cells.
type PatternKind string

// PatternOptions configures region filling for stress passes.
type PatternOptions struct {
	// Kinds lists the patterns workers cycle through, in order. An
	// empty list selects the full default rotation.
	Kinds []PatternKind

	// Seed feeds the random and address patterns so a failing run can
	// be replayed bit for bit. Zero selects a fixed default seed.
	Seed uint64
}
