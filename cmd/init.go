package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikekinsman/aztk/cluster"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgClustersPath, "clusters", cluster.DefaultStorePath(), "Path to the cluster state file (or set AZTK_CLUSTERS)")
	rootCmd.PersistentFlags().StringVar(&cfgConfigDir, "config-dir", ".aztk", "Directory holding the local ssh.yaml")
	rootCmd.PersistentFlags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set AZTK_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "SSH password (or set AZTK_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout")
	rootCmd.PersistentFlags().StringVar(&cfgLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	for _, name := range []string{
		"clusters", "config-dir", "key", "passphrase", "password",
		"known-hosts", "strict-host-key", "conn-timeout", "log-level",
	} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	viper.SetEnvPrefix("AZTK")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("clusters"); v != "" {
			cfgClustersPath = v
		}
		if v := viper.GetString("config-dir"); v != "" {
			cfgConfigDir = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("log-level"); v != "" {
			cfgLogLevel = v
		}
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
	})

	clusterCmd.AddCommand(clusterSSHCmd)
	clusterCmd.AddCommand(clusterShowCmd)
	pluginCmd.AddCommand(pluginVerifyCmd)

	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(pluginCmd)
}
