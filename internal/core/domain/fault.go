package domain

import (
	"time"

	"github.com/google/uuid"
)

// FaultStage identifies which comparison caught a miscompare.
type FaultStage uint8

const (
	// FaultStageCopy means the checksum returned by the copy engine
	// differed from the checksum computed over the source just before
	// the copy: the corruption happened on the read path of the copy
	// itself.
	FaultStageCopy FaultStage = iota + 1

	// FaultStageReadBack means the copy agreed with the source but
	// re-reading the destination produced a different checksum: the
	// corruption happened on the write path or while the data sat in
	// the destination region.
	FaultStageReadBack
)

// String returns the string representation of the fault stage.
func (s FaultStage) String() string {
	switch s {
	case FaultStageCopy:
		return "copy"
	case FaultStageReadBack:
		return "read-back"
	default:
		return "unknown"
	}
}

// Fault records a single detected memory miscompare. Checksums are
// carried in their fixed hex rendering so the record is comparable
// against harness logs verbatim.
type Fault struct {
	// RunID ties the fault to one stress run.
	RunID uuid.UUID

	// Worker is the index of the worker that detected the fault.
	Worker int

	// Pass is the worker-local pass number during which the fault
	// was detected.
	Pass uint64

	// Stage says which comparison failed.
	Stage FaultStage

	// Pattern is the data pattern the source region was filled with.
	Pattern PatternKind

	// Variant is the copy implementation in use.
	Variant CopyVariant

	// Expected and Actual are the hex renderings of the reference
	// checksum and the mismatching one.
	Expected string
	Actual   string

	// DetectedAt is when the miscompare was observed.
	DetectedAt time.Time

	// Region is the destination region content at detection time.
	// Retained only until the reporter has persisted it.
	Region []uint64
}
