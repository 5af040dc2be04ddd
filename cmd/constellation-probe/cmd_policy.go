package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aspects-ai/constellationfs-interceptor/pkg/policy"
)

var policyCmd = &cobra.Command{
	Use:   "policy <hint> -- <argv...>",
	Short: "Show whether a given call would be intercepted under the current environment",
	Long: `Evaluates the same should-intercept decision an exec hook would make.

hint is the filename/path argument the hook would see (for execve/execv/
execvp/execl/execlp) or the raw command string (for system); argv after
"--" is the argument vector, used only for the shell self-call filter.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPolicy,
}

func init() {
	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, args []string) error {
	hint := args[0]
	argv := args[1:]

	cfg := policy.Load()
	decision := policy.Decide(cfg, hint, argv)

	if !decision.Intercept {
		fmt.Fprintln(cmd.OutOrStdout(), "decision: fall through to raw libc symbol")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "decision: intercept, cwd=%s\n", decision.CWD)
	return nil
}
