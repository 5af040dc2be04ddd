//go:build linux || darwin

package main

import (
	"context"

	"github.com/aspects-ai/constellationfs-interceptor/pkg/debuglog"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/dispatch"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/policy"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/quote"
)

// interceptExec evaluates the policy for an exec-family call and, if
// interception applies, quotes argv and runs it remotely. The bool
// result tells the caller (the cgo-exported hook) whether to fall
// through to the raw libc symbol at all.
func interceptExec(cfg policy.Config, log *debuglog.Logger, hint string, argv []string) (intercepted bool, status int, err error) {
	log.Printf("exec hint=%q argv=%v", hint, argv)

	decision := policy.Decide(cfg, hint, argv)
	if !decision.Intercept {
		return false, 0, nil
	}

	status, err = runRemote(cfg, log, decision.CWD, quote.Shell(argv))
	return true, status, err
}

// interceptSystem is interceptExec's analogue for system(3). Per §4.7,
// the hint passed to the policy for system is the command string
// itself, not a path/filename; there is no argv to inspect, matching
// policy.Decide's own documented contract.
func interceptSystem(cfg policy.Config, log *debuglog.Logger, command string) (intercepted bool, status int, err error) {
	log.Printf("system command=%q", command)

	if command == "" {
		return false, 0, nil
	}

	decision := policy.Decide(cfg, command, nil)
	if !decision.Intercept {
		return false, 0, nil
	}

	status, err = runRemote(cfg, log, decision.CWD, command)
	return true, status, err
}

func runRemote(cfg policy.Config, log *debuglog.Logger, cwd, command string) (int, error) {
	d := dispatch.New(cfg, log)
	return d.Run(context.Background(), cwd, command)
}

// loadHookState re-reads the environment on every call: the
// interception configuration is never cached, only the raw-symbol
// addresses are.
func loadHookState() (policy.Config, *debuglog.Logger) {
	cfg := policy.Load()
	return cfg, debuglog.New(cfg.Debug, cfg.DebugLogPath())
}
