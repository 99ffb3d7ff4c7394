package memcopy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memscrub/internal/adapters/memcopy"
	"memscrub/internal/core/domain"
	"memscrub/pkg/adler"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, variant := range []domain.CopyVariant{memcopy.Baseline, memcopy.Warm, memcopy.Vector} {
		assert.NoError(t, memcopy.Validate(&domain.CopyOptions{Variant: variant}))
	}

	err := memcopy.Validate(&domain.CopyOptions{Variant: "simd512"})
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := memcopy.DefaultOptions()
	assert.Equal(t, memcopy.Baseline, opts.Variant)
	assert.NoError(t, memcopy.Validate(opts))
}

func TestNewSelectsVariant(t *testing.T) {
	t.Parallel()

	for _, variant := range []domain.CopyVariant{memcopy.Baseline, memcopy.Warm, memcopy.Vector} {
		engine := memcopy.New(variant)
		assert.Equal(t, string(variant), engine.Name())
		assert.False(t, engine.NonTemporal())
	}

	// Unknown variant falls back to baseline.
	assert.Equal(t, string(memcopy.Baseline), memcopy.New("bogus").Name())
}

func TestEnginesShareOneContract(t *testing.T) {
	t.Parallel()

	src := make([]uint64, 512)
	for i := range src {
		src[i] = uint64(i) * 0x0101010101010101
	}

	want, err := adler.Calculate(src)
	require.NoError(t, err)

	for _, variant := range []domain.CopyVariant{memcopy.Baseline, memcopy.Warm, memcopy.Vector} {
		dst := make([]uint64, len(src))
		sum, err := memcopy.New(variant).Copy(dst, src)
		require.NoError(t, err)
		assert.Equal(t, want, sum, "variant %s", variant)
		assert.Equal(t, src, dst, "variant %s", variant)
	}
}
