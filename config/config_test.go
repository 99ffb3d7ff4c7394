package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memscrub/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log_level: debug
stress:
  workers: 4
  region_size_bytes: 65536
  duration: 2m
  variant: warm
  patterns: [checkerboard, random]
  pattern_seed: 1234
report:
  enable: true
  directory: /tmp/memscrub-reports
  compress: false
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Stress.Workers)
	assert.Equal(t, uint64(65536), cfg.Stress.RegionSizeBytes)
	assert.Equal(t, config.Duration(2*time.Minute), cfg.Stress.Duration)
	assert.Equal(t, "warm", cfg.Stress.Variant)
	assert.Equal(t, []string{"checkerboard", "random"}, cfg.Stress.Patterns)
	assert.False(t, cfg.Report.Compress)

	opts := cfg.StressOptions()
	assert.Equal(t, 4, opts.Workers)
	assert.Equal(t, uint64(1234), opts.Pattern.Seed)
	assert.Len(t, opts.Pattern.Kinds, 2)
	assert.True(t, opts.Report.Enable)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "stress:\n  workers: 1\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "baseline", cfg.Stress.Variant)
	assert.Equal(t, config.Duration(10*time.Second), cfg.Stress.ProgressInterval)
	assert.True(t, cfg.Report.Enable)
	assert.Equal(t, "reports", cfg.Report.Directory)
}

func TestLoadConfigRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
	}{
		{"bad log level", "log_level: loud\n"},
		{"bad mem fraction", "stress:\n  mem_fraction: 1.5\n"},
		{"negative duration", "stress:\n  duration: -5s\n"},
		{"report without directory", "report:\n  enable: true\n  directory: \"\"\n"},
		{"malformed yaml", "stress: [\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tc.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
