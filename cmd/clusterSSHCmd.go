package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mikekinsman/aztk/config"
	"github.com/mikekinsman/aztk/log"
)

var errNoUsername = errors.New("please supply a username either in the ssh.yaml configuration file or with a parameter (--username)")

// clusterSSHCmd resolves the SSH settings, prints where each UI will be
// reachable, and then opens a session to the master node (or, with
// --no-connect, prints the ssh command to run instead).
var clusterSSHCmd = &cobra.Command{
	Use:   "ssh",
	Short: "SSH into the master node of a cluster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := config.Load(config.GlobalPath(), filepath.Join(cfgConfigDir, config.FileName))
		if err != nil {
			return fmt.Errorf("failed to load ssh configuration: %w", err)
		}
		sshConf := config.Merge(base, sshOverrides(cmd.Flags()))

		ctx := cmd.Context()
		client := newClusterClientFunc()
		c, err := client.GetCluster(ctx, sshConf.ClusterID)
		if err != nil {
			return translateClusterError(err)
		}

		printSSHSummary(sshConf, c)

		if sshConf.Connect && sshConf.Username == "" {
			return errNoUsername
		}

		sshCmd, err := sshInMaster(ctx, client, c, sshConf)
		if err != nil {
			return translateClusterError(err)
		}

		if !sshConf.Connect {
			log.Info("")
			log.Green("Use the following command to connect to your spark head node:")
			log.Infof("\t%s", sshCmd)
		}
		return nil
	},
}
