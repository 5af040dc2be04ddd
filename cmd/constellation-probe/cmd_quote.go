package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aspects-ai/constellationfs-interceptor/pkg/quote"
)

var quoteCmd = &cobra.Command{
	Use:   "quote -- <argv...>",
	Short: "Show the shell-safe command string the interceptor would build for an argv",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), quote.Shell(args))
	return nil
}
