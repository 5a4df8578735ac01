package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikekinsman/aztk/log"
	"github.com/mikekinsman/aztk/plugins"
)

var pluginManifestPath string

func init() {
	pluginVerifyCmd.Flags().StringVarP(&pluginManifestPath, "manifest", "m", "", "Path to the plugin manifest YAML")
}

var pluginVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate a plugin manifest YAML file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pluginManifestPath == "" {
			return errors.New("--manifest is required (path to YAML)")
		}
		def, err := plugins.LoadDefinition(pluginManifestPath)
		if err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		log.Infof("name:     %s", def.Name)
		log.Infof("runOn:    %s", def.RunOn)
		for _, p := range def.Ports {
			log.Infof("port:     %d -> %d %s", p.Remote, p.Local, p.Name)
		}
		for _, f := range def.Files {
			log.Infof("file:     %s", f)
		}
		if line := def.CommandLine(); line != "" {
			log.Infof("execute:  %s", line)
		}
		log.Green("Manifest OK")
		return nil
	},
}
