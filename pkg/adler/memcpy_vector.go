package adler

// CopyVector is the throughput-oriented rendition of Copy. It keeps the
// four lanes in independent locals and processes sixteen words per
// iteration so the two streams can retire through separate dependency
// chains, which is what a vectorized port does with SIMD registers.
// Per lane the additions happen in exactly the order Copy performs
// them, so the result is bit-identical to Copy for every valid input.
//
// This is the portable fallback of the accelerated strategy; an
// architecture-specific port slots in behind the same contract.
// Failure semantics are identical to Copy.
func CopyVector(dst, src []uint64) (Checksum, error) {
	if len(src) > MaxWords {
		return Checksum{}, ErrRegionTooLarge
	}

	a0, a1 := uint64(1), uint64(1)
	b0, b1 := uint64(0), uint64(0)

	n := len(src)
	i := 0
	for ; i+15 < n; i += 16 {
		blk := src[i : i+16 : i+16]

		// Stream 0 consumes even word pairs, stream 1 odd pairs,
		// two four-word groups per half block.
		a0 += blk[0]
		b0 += a0
		a0 += blk[1]
		b0 += a0
		a1 += blk[2]
		b1 += a1
		a1 += blk[3]
		b1 += a1

		a0 += blk[4]
		b0 += a0
		a0 += blk[5]
		b0 += a0
		a1 += blk[6]
		b1 += a1
		a1 += blk[7]
		b1 += a1

		a0 += blk[8]
		b0 += a0
		a0 += blk[9]
		b0 += a0
		a1 += blk[10]
		b1 += a1
		a1 += blk[11]
		b1 += a1

		a0 += blk[12]
		b0 += a0
		a0 += blk[13]
		b0 += a0
		a1 += blk[14]
		b1 += a1
		a1 += blk[15]
		b1 += a1

		copy(dst[i:i+16], blk)
	}

	// Tail of one eight-word block when the region is not a multiple
	// of sixteen words.
	for ; i+7 < n; i += 8 {
		blk := src[i : i+8 : i+8]

		a0 += blk[0]
		b0 += a0
		a0 += blk[1]
		b0 += a0
		a1 += blk[2]
		b1 += a1
		a1 += blk[3]
		b1 += a1

		a0 += blk[4]
		b0 += a0
		a0 += blk[5]
		b0 += a0
		a1 += blk[6]
		b1 += a1
		a1 += blk[7]
		b1 += a1

		copy(dst[i:i+8], blk)
	}

	return Checksum{A: [2]uint64{a0, a1}, B: [2]uint64{b0, b1}}, nil
}
