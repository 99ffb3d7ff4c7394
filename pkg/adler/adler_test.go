package adler_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memscrub/pkg/adler"
)

func TestNewInitialState(t *testing.T) {
	t.Parallel()

	sum := adler.New()
	assert.Equal(t, uint64(1), sum.A[0])
	assert.Equal(t, uint64(1), sum.A[1])
	assert.Equal(t, uint64(0), sum.B[0])
	assert.Equal(t, uint64(0), sum.B[1])
}

func TestIncrementSingleGroup(t *testing.T) {
	t.Parallel()

	// One group [2,3,4,5] traced by hand:
	// a0: 1+2=3, b0: 0+3=3, a0: 3+3=6, b0: 3+6=9
	// a1: 1+4=5, b1: 0+5=5, a1: 5+5=10, b1: 5+10=15
	sum := adler.New()
	sum.Increment(2, 3, 4, 5)

	assert.Equal(t, uint64(6), sum.A[0])
	assert.Equal(t, uint64(10), sum.A[1])
	assert.Equal(t, uint64(9), sum.B[0])
	assert.Equal(t, uint64(15), sum.B[1])
}

func TestCalculateMatchesIncrement(t *testing.T) {
	t.Parallel()

	got, err := adler.Calculate([]uint64{2, 3, 4, 5})
	require.NoError(t, err)

	want := adler.New()
	want.Increment(2, 3, 4, 5)
	assert.Equal(t, want, got)
	assert.True(t, got.Equal(want))
}

func TestCalculateDeterminism(t *testing.T) {
	t.Parallel()

	words := randomWords(t, 4096)

	first, err := adler.Calculate(words)
	require.NoError(t, err)

	for range 10 {
		again, err := adler.Calculate(words)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCalculateOrderSensitivity(t *testing.T) {
	t.Parallel()

	words := randomWords(t, 1024)
	base, err := adler.Calculate(words)
	require.NoError(t, err)

	swapped := make([]uint64, len(words))
	copy(swapped, words)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	sum, err := adler.Calculate(swapped)
	require.NoError(t, err)
	assert.NotEqual(t, base, sum, "swapping two words should change the checksum")

	// A swap across groups must be caught too.
	crossed := make([]uint64, len(words))
	copy(crossed, words)
	crossed[3], crossed[700] = crossed[700], crossed[3]

	sum, err = adler.Calculate(crossed)
	require.NoError(t, err)
	assert.NotEqual(t, base, sum)
}

func TestCalculateSizeBound(t *testing.T) {
	t.Parallel()

	atLimit := make([]uint64, adler.MaxWords)
	_, err := adler.Calculate(atLimit)
	assert.NoError(t, err, "exactly MaxWords words must be accepted")

	overLimit := make([]uint64, adler.MaxWords+1)
	sum, err := adler.Calculate(overLimit)
	require.ErrorIs(t, err, adler.ErrRegionTooLarge)
	assert.Equal(t, adler.Checksum{}, sum, "failed call must not hand back a partial state")
}

func TestToHexString(t *testing.T) {
	t.Parallel()

	sum := adler.New()
	sum.Increment(2, 3, 4, 5)
	assert.Equal(
		t,
		"0000000000000006 000000000000000a 0000000000000009 000000000000000f",
		sum.ToHexString(),
	)

	full := adler.Checksum{
		A: [2]uint64{math.MaxUint64, 1},
		B: [2]uint64{0, 0xdeadbeef},
	}
	assert.Equal(
		t,
		"ffffffffffffffff 0000000000000001 0000000000000000 00000000deadbeef",
		full.ToHexString(),
	)
}

func TestWorstCaseInputStaysFinite(t *testing.T) {
	t.Parallel()

	// MaxWords of all-ones words is the worst case the bound is meant
	// to keep inside 64 bits per lane; it must at least complete and
	// stay deterministic.
	words := make([]uint64, adler.MaxWords)
	for i := range words {
		words[i] = math.MaxUint64
	}

	first, err := adler.Calculate(words)
	require.NoError(t, err)

	second, err := adler.Calculate(words)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func randomWords(t *testing.T, n int) []uint64 {
	t.Helper()

	rng := rand.New(rand.NewPCG(42, uint64(n)))
	words := make([]uint64, n)
	for i := range words {
		words[i] = rng.Uint64()
	}
	return words
}
