package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mikekinsman/aztk/log"
)

var rootCmd = &cobra.Command{
	Use:   "aztk",
	Short: "Work with Spark clusters running on a batch service",
	Long: "Connects to Spark clusters provisioned on a batch service: opens SSH sessions to the master node " +
		"with the Spark UIs and plugin ports forwarded, and validates plugin manifests.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(cfgLogLevel)
	},
}
