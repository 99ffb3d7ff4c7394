package adler

import (
	"math"
	"sync/atomic"
)

// warmSink absorbs the floating-point busywork of CopyWarm so the
// compiler cannot prove it dead. Published atomically: concurrent
// workers all run the same variant, and the sink is the one piece of
// state they would otherwise share unsynchronized. The value itself is
// never read for anything.
var warmSink atomic.Uint64

// CopyWarm behaves exactly like Copy — same checksum, same destination
// contents, same failure semantics — but interleaves functionally inert
// floating-point arithmetic with the copy loop. The extra work exists
// only to light up the FP units and raise CPU power draw and
// temperature while memory is under test; thermal stress surfaces
// marginal hardware that a cool, integer-only copy lets pass.
func CopyWarm(dst, src []uint64) (Checksum, error) {
	if len(src) > MaxWords {
		return Checksum{}, ErrRegionTooLarge
	}

	sum := New()
	heat := 1.0
	for i := 0; i+7 < len(src); i += 8 {
		d0, d1, d2, d3 := src[i], src[i+1], src[i+2], src[i+3]
		d4, d5, d6, d7 := src[i+4], src[i+5], src[i+6], src[i+7]

		sum.Increment(d0, d1, d2, d3)
		sum.Increment(d4, d5, d6, d7)

		// Divisions are the most power-hungry FP op generally
		// available; chain a few per block through data-dependent
		// values so they cannot be hoisted or vectorized away.
		heat = heat/1.000000119 + float64(d0&0xffff)*0.000001
		heat = heat/0.999999881 + float64(d4&0xffff)*0.000001

		dst[i], dst[i+1], dst[i+2], dst[i+3] = d0, d1, d2, d3
		dst[i+4], dst[i+5], dst[i+6], dst[i+7] = d4, d5, d6, d7
	}
	warmSink.Store(math.Float64bits(heat))

	return sum, nil
}
