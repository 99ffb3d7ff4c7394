package errors

import (
	"fmt"
	"time"
)

// ErrorCategory classifies the failures a stress run can hit. The
// category drives retry decisions and shows up in logs and metrics.
type ErrorCategory int

const (
	// ErrorAllocation indicates failures while sizing or allocating
	// test regions, such as overcommitting available host memory.
	ErrorAllocation ErrorCategory = iota + 1

	// ErrorPattern indicates failures preparing a source region,
	// such as an unknown pattern kind in the rotation.
	ErrorPattern

	// ErrorCopy indicates failures in the checksummed copy itself,
	// which in practice means the region size bound was violated.
	ErrorCopy

	// ErrorIntegrity indicates a detected memory miscompare. Not an
	// operational failure of the harness: the harness did its job.
	ErrorIntegrity

	// ErrorReport indicates failures persisting a fault dump, such
	// as a full or read-only report directory.
	ErrorReport
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorAllocation:
		return "allocation"
	case ErrorPattern:
		return "pattern"
	case ErrorCopy:
		return "copy"
	case ErrorIntegrity:
		return "integrity"
	case ErrorReport:
		return "report"
	default:
		return "unknown"
	}
}

// StressError wraps an operational failure with its category, the
// operation that hit it and when.
type StressError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

func NewStressError(category ErrorCategory, operation string, err error) *StressError {
	return &StressError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *StressError) Error() string {
	return fmt.Sprintf("[%v] %s: %v : %s", e.Category, e.Operation, e.Err, e.Timestamp.String())
}

func (e *StressError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
// This helps callers decide whether to retry failed operations.
func (e *StressError) IsRetryAble() bool {
	switch e.Category {
	case ErrorAllocation:
		// Memory pressure may ease; a smaller geometry can be retried.
		return true
	case ErrorPattern:
		// A bad pattern rotation stays bad until reconfigured.
		return false
	case ErrorCopy:
		// Size-bound violations succeed after re-chunking.
		return true
	case ErrorIntegrity:
		// A miscompare is a finding, not a transient failure.
		return false
	case ErrorReport:
		// Disk conditions may clear up.
		return true
	default:
		return false
	}
}
