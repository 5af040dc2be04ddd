package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aspects-ai/constellationfs-interceptor/pkg/policy"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the interception configuration read from the current environment",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := policy.Load()

	fmt.Fprintf(cmd.OutOrStdout(), "gate (CONSTELLATIONFS_APP_ID): %s\n", describeEnabled(cfg))
	fmt.Fprintf(cmd.OutOrStdout(), "remote host (REMOTE_VM_HOST):  %s\n", describe(cfg.RemoteHost))
	fmt.Fprintf(cmd.OutOrStdout(), "port override (REMOTE_VM_PORT): %s\n", describe(cfg.RemotePort))
	fmt.Fprintf(cmd.OutOrStdout(), "password (REMOTE_VM_PASSWORD): %s\n", describeSecret(cfg.Password))
	fmt.Fprintf(cmd.OutOrStdout(), "debug logging (CONSTELLATION_DEBUG): %v\n", cfg.Debug)
	fmt.Fprintf(cmd.OutOrStdout(), "debug log path: %s\n", cfg.DebugLogPath())

	userHost, port, err := cfg.RemoteTarget()
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "resolved target: <unresolvable: %v>\n", err)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "resolved target: %s:%s\n", userHost, port)
	return nil
}

func describeEnabled(cfg policy.Config) string {
	if cfg.Enabled() {
		return "set, interception active"
	}
	return "unset, interception disabled"
}

func describe(v string) string {
	if v == "" {
		return "<unset>"
	}
	return v
}

func describeSecret(v string) string {
	if v == "" {
		return "<unset, key auth>"
	}
	return "<set, sshpass auth>"
}
