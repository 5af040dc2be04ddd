// Package debuglog is the interceptor's own trace channel: a
// conditional, dual-sink, human-readable log distinct from any
// structured logging the host program or the operator CLI might use.
// It must survive being called from a forked child with no surrounding
// runtime state, so it opens and closes its file on every line rather
// than holding a long-lived handle.
package debuglog

import (
	"fmt"
	"os"
	"time"
)

// Logger, when active, writes trace lines to standard error and
// appends a timestamped copy to an on-disk file. An inactive Logger
// writes nothing.
type Logger struct {
	active  bool
	logPath string
}

// New returns a Logger. active should come from whether
// CONSTELLATION_DEBUG is set; logPath from Config.DebugLogPath.
func New(active bool, logPath string) *Logger {
	return &Logger{active: active, logPath: logPath}
}

// Printf writes one trace line. It is a no-op when the logger is
// inactive. Any I/O error opening or writing the log file is swallowed:
// debuglog is a diagnostic aid, never a reason to fail the caller's
// intercepted exec.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.active {
		return
	}
	line := fmt.Sprintf(format, args...)

	fmt.Fprintf(os.Stderr, "[LD_PRELOAD] %s\n", line)

	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "[%s] [LD_PRELOAD] %s\n", timestamp(), line)
}

func timestamp() string {
	now := time.Now()
	return now.Format("2006-01-02 15:04:05") + fmt.Sprintf(".%03d", now.Nanosecond()/1_000_000)
}
