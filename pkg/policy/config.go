package policy

import (
	"errors"
	"os"
	"strings"
)

// DefaultDebugLogPath is the fixed location of the debug trace file. It
// can be overridden with CONSTELLATION_DEBUG_LOG, which exists only so
// tests and the operator CLI can redirect it away from a shared system
// path; it has no bearing on whether logging is active.
const DefaultDebugLogPath = "/tmp/constellation-fs-debug.log"

// ErrMissingPort is returned by Config.RemoteTarget when neither
// REMOTE_VM_HOST nor REMOTE_VM_PORT supplies a port number.
var ErrMissingPort = errors.New("policy: no port in REMOTE_VM_HOST or REMOTE_VM_PORT")

// Config is a snapshot of the environment variables this interceptor
// recognises. Load re-reads the environment on every call; nothing here
// is cached across calls, matching the requirement that interception
// state reflects the caller's environment at the moment of the exec.
type Config struct {
	AppID       string
	RemoteHost  string
	RemotePort  string
	Password    string
	Debug       bool
	DebugLogDir string
}

// Load reads the recognised environment variables fresh.
func Load() Config {
	return Config{
		AppID:       os.Getenv("CONSTELLATIONFS_APP_ID"),
		RemoteHost:  os.Getenv("REMOTE_VM_HOST"),
		RemotePort:  os.Getenv("REMOTE_VM_PORT"),
		Password:    os.Getenv("REMOTE_VM_PASSWORD"),
		Debug:       os.Getenv("CONSTELLATION_DEBUG") != "",
		DebugLogDir: os.Getenv("CONSTELLATION_DEBUG_LOG"),
	}
}

// Enabled reports whether the master gate (CONSTELLATIONFS_APP_ID) is set.
func (c Config) Enabled() bool {
	return c.AppID != ""
}

// DebugLogPath returns the path the debug logger should append to.
func (c Config) DebugLogPath() string {
	if c.DebugLogDir != "" {
		return c.DebugLogDir
	}
	return DefaultDebugLogPath
}

// RemoteTarget parses REMOTE_VM_HOST into a user@host portion and a port,
// applying REMOTE_VM_PORT as an override per §4.6: the substring of
// RemoteHost up to its last colon is the user@host portion; anything
// after that colon is a candidate port, replaced wholesale by RemotePort
// when that is set. Neither source supplying a port is an error.
func (c Config) RemoteTarget() (userHost, port string, err error) {
	userHost = c.RemoteHost
	if idx := strings.LastIndex(c.RemoteHost, ":"); idx >= 0 {
		userHost = c.RemoteHost[:idx]
		port = c.RemoteHost[idx+1:]
	}
	if c.RemotePort != "" {
		port = c.RemotePort
	}
	if port == "" {
		return "", "", ErrMissingPort
	}
	return userHost, port, nil
}
