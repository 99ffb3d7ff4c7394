package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memscrub/internal/adapters/pattern"
	"memscrub/internal/core/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, pattern.Validate(pattern.DefaultOptions()))

	err := pattern.Validate(&domain.PatternOptions{Kinds: []domain.PatternKind{"galpat"}})
	assert.Error(t, err)
}

func TestFillersCoverTheRegion(t *testing.T) {
	t.Parallel()

	for _, kind := range pattern.DefaultKinds {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			words := make([]uint64, 256)
			filler := pattern.New(kind, 7)
			assert.Equal(t, string(kind), filler.Name())

			// Poison first so an unwritten word is visible for every
			// pattern, including zero.
			for i := range words {
				words[i] = 0xdeadbeefdeadbeef
			}
			filler.Fill(words, 0)

			for i, w := range words {
				require.NotEqual(t, uint64(0xdeadbeefdeadbeef), w, "word %d untouched", i)
			}
		})
	}
}

func TestSolidPatterns(t *testing.T) {
	t.Parallel()

	words := make([]uint64, 64)

	pattern.New(pattern.Zero, 0).Fill(words, 3)
	for _, w := range words {
		require.Zero(t, w)
	}

	pattern.New(pattern.Ones, 0).Fill(words, 3)
	for _, w := range words {
		require.Equal(t, ^uint64(0), w)
	}
}

func TestWalkingBitRotates(t *testing.T) {
	t.Parallel()

	words := make([]uint64, 64)
	filler := pattern.New(pattern.WalkingBit, 0)

	filler.Fill(words, 0)
	assert.Equal(t, uint64(1), words[0])
	assert.Equal(t, uint64(2), words[1])

	filler.Fill(words, 1)
	assert.Equal(t, uint64(2), words[0], "pass must advance the walking bit")
}

func TestRandomReproducibility(t *testing.T) {
	t.Parallel()

	a := make([]uint64, 512)
	b := make([]uint64, 512)

	filler := pattern.New(pattern.Random, 99)
	filler.Fill(a, 5)
	filler.Fill(b, 5)
	assert.Equal(t, a, b, "same seed and pass must reproduce the data")

	filler.Fill(b, 6)
	assert.NotEqual(t, a, b, "different pass must change the data")

	other := pattern.New(pattern.Random, 100)
	other.Fill(b, 5)
	assert.NotEqual(t, a, b, "different seed must change the data")
}

func TestUnknownKindFallsBackToZero(t *testing.T) {
	t.Parallel()

	filler := pattern.New("bogus", 0)
	assert.Equal(t, string(pattern.Zero), filler.Name())
}
