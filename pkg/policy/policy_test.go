package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideGateClosed(t *testing.T) {
	cfg := Config{} // AppID unset
	d := Decide(cfg, "ls", []string{"ls", "-la"})
	assert.False(t, d.Intercept)
}

func TestDecideInterceptsOrdinaryCommand(t *testing.T) {
	cfg := Config{AppID: "app1"}
	d := Decide(cfg, "ls", []string{"ls", "-la"})
	assert.True(t, d.Intercept)
	assert.NotEmpty(t, d.CWD)
}

func TestDecideFiltersDirectSSH(t *testing.T) {
	cfg := Config{AppID: "app1"}
	for _, hint := range []string{"ssh", "/usr/bin/ssh"} {
		d := Decide(cfg, hint, []string{hint, "other-host", "uptime"})
		assert.Falsef(t, d.Intercept, "hint=%q", hint)
	}
}

func TestDecideFiltersShellWrappedSSH(t *testing.T) {
	cfg := Config{AppID: "app1"}
	d := Decide(cfg, "/bin/bash", []string{"bash", "-c", "ssh other-host uptime"})
	assert.False(t, d.Intercept)
}

func TestDecideFiltersShellWrappedSSHExactWord(t *testing.T) {
	cfg := Config{AppID: "app1"}
	d := Decide(cfg, "sh", []string{"sh", "-c", "ssh"})
	assert.False(t, d.Intercept)
}

func TestDecideDoesNotFilterUnrelatedShellCommand(t *testing.T) {
	cfg := Config{AppID: "app1"}
	d := Decide(cfg, "/bin/sh", []string{"sh", "-c", "echo hello"})
	assert.True(t, d.Intercept)
}

func TestDecideDoesNotFilterCommandMentioningSSHWithoutWordBoundary(t *testing.T) {
	cfg := Config{AppID: "app1"}
	// "sshfs" is not the word "ssh" and has no trailing space/tab/newline
	// after "ssh" within the argument, so it is not treated as an SSH call.
	d := Decide(cfg, "/bin/sh", []string{"sh", "-c", "sshfs remote: /mnt"})
	assert.True(t, d.Intercept)
}

func TestRemoteTargetPortFromHost(t *testing.T) {
	cfg := Config{RemoteHost: "u@h:2222"}
	userHost, port, err := cfg.RemoteTarget()
	require.NoError(t, err)
	assert.Equal(t, "u@h", userHost)
	assert.Equal(t, "2222", port)
}

func TestRemoteTargetPortOverride(t *testing.T) {
	cfg := Config{RemoteHost: "u@h:2222", RemotePort: "2200"}
	_, port, err := cfg.RemoteTarget()
	require.NoError(t, err)
	assert.Equal(t, "2200", port)
}

func TestRemoteTargetMissingPort(t *testing.T) {
	cfg := Config{RemoteHost: "u@h"}
	_, _, err := cfg.RemoteTarget()
	assert.ErrorIs(t, err, ErrMissingPort)
}

func TestDebugLogPathDefault(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, DefaultDebugLogPath, cfg.DebugLogPath())
}

func TestDebugLogPathOverride(t *testing.T) {
	cfg := Config{DebugLogDir: "/tmp/custom.log"}
	assert.Equal(t, "/tmp/custom.log", cfg.DebugLogPath())
}
