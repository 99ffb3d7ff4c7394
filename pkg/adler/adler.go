// Package adler implements a modified Adler checksum over 64-bit words,
// together with copy routines that checksum the source while copying it.
//
// Classic Adler-32 keeps two byte-wide running sums a and b (a starts at
// 1, b at 0; for each byte a += d, b += a). Here the data unit is a
// 64-bit word and the input is split into two interleaved streams, each
// with its own (a, b) pair, so an implementation can drive both streams
// through independent registers:
//
//	a0 += word[0]; b0 += a0
//	a0 += word[1]; b0 += a0
//	a1 += word[2]; b1 += a1
//	a1 += word[3]; b1 += a1
//
// and so on for every following group of four words. Splitting the
// stream does not weaken the error-detection properties that matter
// here: a pure running sum is sensitive to value changes and to word
// reordering across groups, which is what hardware bit corruption looks
// like. It is not a cryptographic digest.
//
// No modular reduction is performed, so the total input size must be
// bounded for the lanes to stay inside 64 bits; see MaxWords.
package adler

import (
	"errors"
	"fmt"
)

// MaxWords is the largest number of 64-bit words a single Calculate or
// Copy call accepts. A region of exactly MaxWords words is accepted;
// anything larger is rejected with ErrRegionTooLarge before any work is
// done. Keeping the region below this threshold keeps the running sums
// inside their 64-bit lanes.
const MaxWords = 1 << 19

// WordSize is the size in bytes of one checksum data unit.
const WordSize = 8

// ErrRegionTooLarge indicates a region whose word count exceeds
// MaxWords. The condition is recoverable: the caller re-chunks the
// region and retries, it must simply not trust any checksum from the
// failed call.
var ErrRegionTooLarge = errors.New("adler: region exceeds maximum word count")

// Checksum is the accumulator state of the two-stream Adler checksum.
// A[0], A[1] are the low lanes of the two streams, B[0], B[1] the high
// lanes. The zero value is NOT a valid initial state; use New.
//
// Checksum is a comparable value type: two checksums are equal iff all
// four lanes are pairwise equal, so == works directly.
type Checksum struct {
	A [2]uint64
	B [2]uint64
}

// New returns the initial checksum state: both low lanes start at 1,
// both high lanes at 0.
func New() Checksum {
	return Checksum{A: [2]uint64{1, 1}}
}

// Increment folds one four-word group into the state. d0 and d1 feed
// the first stream, d2 and d3 the second. Within a stream additions
// must happen in input order; the checksum is order-sensitive.
func (c *Checksum) Increment(d0, d1, d2, d3 uint64) {
	c.A[0] += d0
	c.B[0] += c.A[0]
	c.A[0] += d1
	c.B[0] += c.A[0]

	c.A[1] += d2
	c.B[1] += c.A[1]
	c.A[1] += d3
	c.B[1] += c.A[1]
}

// Equal reports whether both checksums have identical lanes.
func (c Checksum) Equal(other Checksum) bool {
	return c == other
}

// ToHexString renders the four lanes as lowercase hexadecimal, 16
// digits each, space separated, in the order a0 a1 b0 b1. The format is
// fixed; harness logs compare these strings verbatim.
func (c Checksum) ToHexString() string {
	return fmt.Sprintf("%016x %016x %016x %016x", c.A[0], c.A[1], c.B[0], c.B[1])
}

// Calculate computes the checksum of words in a single forward pass,
// folding consecutive four-word groups.
//
// Preconditions: len(words) must be a multiple of 4; a trailing partial
// group is not folded. len(words) must not exceed MaxWords, otherwise
// Calculate returns the zero Checksum and ErrRegionTooLarge.
func Calculate(words []uint64) (Checksum, error) {
	if len(words) > MaxWords {
		return Checksum{}, ErrRegionTooLarge
	}

	sum := New()
	for i := 0; i+3 < len(words); i += 4 {
		sum.Increment(words[i], words[i+1], words[i+2], words[i+3])
	}
	return sum, nil
}
