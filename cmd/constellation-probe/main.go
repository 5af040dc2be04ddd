// Command constellation-probe is the operator-facing companion to
// libconstellation: it evaluates the same configuration, quoting, and
// policy logic the shared library embeds, without loading it into a
// real process, so an operator can answer "what would this call do?"
// before trusting it to a LD_PRELOAD session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "constellation-probe",
	Short:         "Inspect and exercise the constellation SSH interceptor out of band",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	viper.SetEnvPrefix("")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
