package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPolicyGateClosed(t *testing.T) {
	var out bytes.Buffer
	policyCmd.SetOut(&out)

	err := runPolicy(policyCmd, []string{"ls"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "fall through")
}

func TestRunPolicySSHSelfCall(t *testing.T) {
	t.Setenv("CONSTELLATIONFS_APP_ID", "app1")
	t.Setenv("REMOTE_VM_HOST", "u@h:2222")

	var out bytes.Buffer
	policyCmd.SetOut(&out)

	err := runPolicy(policyCmd, []string{"/usr/bin/ssh", "other-host", "uptime"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "fall through")
}

func TestRunPolicyIntercepts(t *testing.T) {
	t.Setenv("CONSTELLATIONFS_APP_ID", "app1")
	t.Setenv("REMOTE_VM_HOST", "u@h:2222")

	var out bytes.Buffer
	policyCmd.SetOut(&out)

	err := runPolicy(policyCmd, []string{"ls", "-la"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "intercept")
}
