package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Zero(t, exitCode(nil))
	assert.Equal(t, 1, exitCode(errFaultsDetected))
	assert.Equal(t, 1, exitCode(errors.New("config missing")))
}

func TestRunCommandReturnsFaultsAsError(t *testing.T) {
	t.Parallel()

	// Detected faults must surface as an error from RunE, never as a
	// direct exit that would skip deferred log flushing.
	assert.True(t, runCmd.SilenceUsage)
	assert.NotNil(t, runCmd.RunE)
	assert.EqualError(t, errFaultsDetected, "memory faults detected")
}
