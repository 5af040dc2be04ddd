package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigReportsDisabledGate(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)

	err := runConfig(configCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "interception disabled")
}

func TestRunConfigReportsMissingPort(t *testing.T) {
	t.Setenv("CONSTELLATIONFS_APP_ID", "app1")
	t.Setenv("REMOTE_VM_HOST", "u@h")

	var out bytes.Buffer
	configCmd.SetOut(&out)

	err := runConfig(configCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unresolvable")
}

func TestRunConfigReportsResolvedTarget(t *testing.T) {
	t.Setenv("CONSTELLATIONFS_APP_ID", "app1")
	t.Setenv("REMOTE_VM_HOST", "u@h:2222")

	var out bytes.Buffer
	configCmd.SetOut(&out)

	err := runConfig(configCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "u@h:2222")
}
