package adler

// Copy copies src into dst while computing the checksum of the data it
// reads from src. The destination is written but never read back; a
// fault introduced on the write path or while the data sits in dst is
// caught by a later Calculate over dst, not by this call.
//
// The region is processed eight words per iteration: read eight source
// words, fold them as two four-word groups, store all eight to dst.
//
// Preconditions, all the caller's responsibility:
//   - len(src) is a multiple of 8 (a trailing partial block is neither
//     folded nor copied),
//   - len(dst) >= len(src),
//   - dst and src do not overlap,
//   - nothing mutates src or touches dst until Copy returns.
//
// The only reported failure is the size bound: if len(src) exceeds
// MaxWords, Copy returns the zero Checksum and ErrRegionTooLarge
// without having written a single word. Other precondition violations
// are undefined behavior, not reported errors; this is a hot-path
// routine and the caller is trusted to have validated its buffers.
func Copy(dst, src []uint64) (Checksum, error) {
	if len(src) > MaxWords {
		return Checksum{}, ErrRegionTooLarge
	}

	sum := New()
	for i := 0; i+7 < len(src); i += 8 {
		d0, d1, d2, d3 := src[i], src[i+1], src[i+2], src[i+3]
		d4, d5, d6, d7 := src[i+4], src[i+5], src[i+6], src[i+7]

		sum.Increment(d0, d1, d2, d3)
		sum.Increment(d4, d5, d6, d7)

		dst[i], dst[i+1], dst[i+2], dst[i+3] = d0, d1, d2, d3
		dst[i+4], dst[i+5], dst[i+6], dst[i+7] = d4, d5, d6, d7
	}
	return sum, nil
}
