// Package dispatch builds and runs the SSH child process that actually
// carries out an intercepted command on the remote host.
package dispatch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/google/uuid"

	"github.com/aspects-ai/constellationfs-interceptor/internal/errx"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/debuglog"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/policy"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/quote"
)

// ErrStart is returned when the ssh/sshpass child could not be started
// at all (binary missing, fork/exec failure at the OS level).
var ErrStart = errors.New("dispatch: start ssh child")

// ErrWait is returned when waiting on a started child itself failed
// (distinct from the child exiting with a non-zero status, which is not
// an error — see Run).
var ErrWait = errors.New("dispatch: wait for ssh child")

// Dispatcher runs commands on the remote host named by a policy.Config.
// The zero value is not usable; construct with New.
type Dispatcher struct {
	cfg    policy.Config
	log    *debuglog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Dispatcher bound to cfg, logging through log (which may
// be nil). Stdin/Stdout/Stderr default to the process's own standard
// streams, matching the distilled spec's "the SSH client does natively"
// treatment of interactive I/O; override them in tests.
func New(cfg policy.Config, log *debuglog.Logger) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command returns the SSH argument vector (binary name plus arguments,
// binary excluded from the slice) that Run would execute for the given
// already-quoted command string and the optional working directory.
// Exposed separately so the operator CLI can print a dispatch plan
// without connecting to anything.
func (d *Dispatcher) Command(cwd, command string) (binary string, args []string, err error) {
	userHost, port, err := d.cfg.RemoteTarget()
	if err != nil {
		return "", nil, err
	}

	full := quote.WithDir(cwd, command)

	if d.cfg.Password != "" {
		binary = "sshpass"
		args = []string{
			"-p", d.cfg.Password,
			"ssh", "-o", "StrictHostKeyChecking=no", "-p", port, userHost, full,
		}
		return binary, args, nil
	}

	binary = "ssh"
	args = []string{
		"-o", "StrictHostKeyChecking=no",
		"-o", "BatchMode=yes",
		"-p", port, userHost, full,
	}
	return binary, args, nil
}

// Run executes command (already shell-quoted by the caller) on the
// configured remote host, cd'ing into cwd first if cwd is non-empty. It
// returns the remote child's real exit status on any normal exit,
// including non-zero — that is not treated as a Go error, since a
// failing remote command is a legitimate outcome the hook caller must
// be able to observe. A non-nil error means the SSH child itself could
// not be run at all, or could not be waited on.
func (d *Dispatcher) Run(ctx context.Context, cwd, command string) (int, error) {
	binary, args, err := d.Command(cwd, command)
	if err != nil {
		return -1, err
	}

	callID := uuid.New().String()[:8]
	d.log.Printf("[%s] dispatching via %s: %v", callID, binary, redactPassword(args))

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	if err := cmd.Start(); err != nil {
		return -1, errx.Wrap(ErrStart, err)
	}

	err = cmd.Wait()
	if err == nil {
		d.log.Printf("[%s] remote command exited 0", callID)
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		d.log.Printf("[%s] remote command exited with status %d", callID, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}
	return -1, errx.Wrap(ErrWait, err)
}

// redactPassword returns a copy of an sshpass argument vector with the
// password argument replaced, for safe inclusion in trace output. The
// password, when present, is always args[1] ("-p", "<password>", "ssh", ...).
func redactPassword(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	if len(out) >= 2 && out[0] == "-p" {
		out[1] = "****"
	}
	return out
}
