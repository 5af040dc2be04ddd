package policy

import (
	"os"
	"path"
	"strings"
)

// Decision is the result of evaluating whether a given exec/system call
// should be rerouted over SSH.
type Decision struct {
	Intercept bool
	CWD       string
}

var shellBasenames = map[string]bool{
	"sh": true, "bash": true, "zsh": true, "dash": true,
}

// Decide evaluates the interception rules against a single call. hint is
// the filename/path argument for the exec family, or the command string
// itself for system. argv is nil for system (there is no argument
// vector to inspect) and for the execl/execlp forms once they have
// already been reduced to a vector it is the same shape as execv's.
//
// Rules are evaluated in order; the first that yields "do not
// intercept" wins. This mirrors the C original's should_intercept_and_get_cwd,
// split so that the environment gate and the SSH filter can be tested
// independently of the cwd capture.
func Decide(cfg Config, hint string, argv []string) Decision {
	if !cfg.Enabled() {
		return Decision{}
	}
	if isSSHSelfCall(hint, argv) {
		return Decision{}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Decision{}
	}
	return Decision{Intercept: true, CWD: cwd}
}

// isSSHSelfCall detects the two shapes of "this call is itself trying to
// invoke ssh" that the remote dispatcher's own SSH child must never be
// routed back through: a direct call to an ssh binary, or a shell
// invocation whose argument list contains the word "ssh".
func isSSHSelfCall(hint string, argv []string) bool {
	if hint == "" {
		return false
	}
	if strings.Contains(hint, "/ssh") || path.Base(hint) == "ssh" {
		return true
	}
	if !shellBasenames[path.Base(hint)] {
		return false
	}
	for _, arg := range argv {
		if arg == "ssh" || containsSSHWord(arg) {
			return true
		}
	}
	return false
}

func containsSSHWord(s string) bool {
	return strings.Contains(s, "ssh ") || strings.Contains(s, "ssh\t") || strings.Contains(s, "ssh\n")
}
