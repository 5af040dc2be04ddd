package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/aspects-ai/constellationfs-interceptor/pkg/debuglog"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/dispatch"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/policy"
	"github.com/aspects-ai/constellationfs-interceptor/pkg/quote"
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [flags] -- <argv...>",
	Short: "Run an argv on the configured remote host exactly as an exec hook would",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDispatch,
}

func init() {
	dispatchCmd.Flags().Bool("dry-run", true, "Print the ssh argument vector instead of connecting (set --dry-run=false to actually connect)")
	dispatchCmd.Flags().Bool("prompt-password", false, "Prompt for REMOTE_VM_PASSWORD interactively instead of reading the environment")
	viper.BindPFlag("dispatch.dry-run", dispatchCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("dispatch.prompt-password", dispatchCmd.Flags().Lookup("prompt-password"))

	rootCmd.AddCommand(dispatchCmd)
}

func runDispatch(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	promptPassword, _ := cmd.Flags().GetBool("prompt-password")

	cfg := policy.Load()
	if promptPassword {
		pwd, err := readPassword(cmd)
		if err != nil {
			return err
		}
		cfg.Password = pwd
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	command := quote.Shell(args)

	log := debuglog.New(cfg.Debug, cfg.DebugLogPath())
	d := dispatch.New(cfg, log)

	if dryRun {
		binary, sshArgs, err := d.Command(cwd, command)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", binary, sshArgs)
		return nil
	}

	slog.Info("dispatching command", "command", command, "cwd", cwd)
	status, err := d.Run(context.Background(), cwd, command)
	if err != nil {
		return err
	}
	if status != 0 {
		slog.Warn("remote command exited non-zero", "status", status)
	}
	os.Exit(status)
	return nil
}

// readPassword prompts on the controlling terminal, falling back to a
// plain error when stdin isn't one (piped input, CI) rather than
// hanging on a read that will never complete.
func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotATerminal
	}

	fmt.Fprint(cmd.ErrOrStderr(), "REMOTE_VM_PASSWORD: ")
	pwd, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadPassword, err)
	}
	return string(pwd), nil
}
