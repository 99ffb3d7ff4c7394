package report_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memscrub/internal/adapters/report"
	"memscrub/internal/core/domain"
)

func sampleFault(regionWords int) *domain.Fault {
	region := make([]uint64, regionWords)
	for i := range region {
		region[i] = uint64(i) * 0x0f0f0f0f0f0f0f0f
	}

	return &domain.Fault{
		RunID:      uuid.New(),
		Worker:     3,
		Pass:       41,
		Stage:      domain.FaultStageReadBack,
		Pattern:    "checkerboard",
		Variant:    "vector",
		Expected:   "0000000000000006 000000000000000a 0000000000000009 000000000000000f",
		Actual:     "0000000000000006 000000000000000a 0000000000000009 000000000000000e",
		DetectedAt: time.Unix(0, 1724900000000000000),
		Region:     region,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleFault(64)
	got, err := report.DecodeRecord(report.EncodeRecord(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := report.DecodeRecord([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}

func TestDiskReporterRoundTrip(t *testing.T) {
	t.Parallel()

	for _, compress := range []bool{false, true} {
		reporter, err := report.NewDiskReporter(&domain.ReportOptions{
			Enable:    true,
			Directory: t.TempDir(),
			Compress:  compress,
		})
		require.NoError(t, err)

		want := sampleFault(1024)
		path, err := reporter.Report(want)
		require.NoError(t, err)
		require.NotEmpty(t, path)

		got, err := report.Load(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, "compress=%v", compress)

		require.NoError(t, reporter.Close())
	}
}

func TestListDumps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reporter, err := report.NewDiskReporter(&domain.ReportOptions{Directory: dir})
	require.NoError(t, err)
	defer reporter.Close()

	// A stray file in the directory must not show up as a dump.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	var written []string
	for range 3 {
		path, err := reporter.Report(sampleFault(16))
		require.NoError(t, err)
		written = append(written, path)
	}
	sort.Strings(written)

	dumps, err := report.ListDumps(dir)
	require.NoError(t, err)
	assert.Equal(t, written, dumps)

	for _, path := range dumps {
		_, err := report.Load(path)
		require.NoError(t, err)
	}
}

func TestNewDiskReporterRejectsFilePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := report.NewDiskReporter(&domain.ReportOptions{Directory: path})
	assert.Error(t, err)
}

func TestReporterClosed(t *testing.T) {
	t.Parallel()

	reporter, err := report.NewDiskReporter(&domain.ReportOptions{Directory: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, reporter.Close())
	require.NoError(t, reporter.Close(), "close must be idempotent")

	_, err = reporter.Report(sampleFault(8))
	assert.ErrorIs(t, err, report.ErrReporterClosed)
}
