package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikekinsman/aztk/cluster"
	"github.com/mikekinsman/aztk/log"
)

var showClusterID string

func init() {
	clusterShowCmd.Flags().StringVar(&showClusterID, "id", "", "The unique id of your spark cluster")
}

// clusterShowCmd prints a cluster's nodes and the plugins installed on each,
// as decided by every plugin's run target.
var clusterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a cluster's nodes and installed plugins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showClusterID == "" {
			return errors.New("--id is required")
		}
		c, err := newClusterClientFunc().GetCluster(cmd.Context(), showClusterID)
		if err != nil {
			return translateClusterError(err)
		}
		printCluster(c)
		return nil
	},
}

func printCluster(c *cluster.Cluster) {
	log.Infof("Cluster         %s", c.ID)
	if c.State != "" {
		log.Infof("State:          %s", c.State)
	}
	if c.VMSize != "" {
		log.Infof("VM size:        %s", c.VMSize)
	}
	log.Infof("Nodes:          %d", len(c.Nodes))
	for _, n := range c.Nodes {
		marker := ""
		if n.ID == c.MasterNodeID {
			marker = " *"
		}
		names := make([]string, 0, len(c.Plugins()))
		for _, p := range c.PluginsFor(n) {
			names = append(names, p.Name)
		}
		installed := "-"
		if len(names) > 0 {
			installed = strings.Join(names, ", ")
		}
		log.Infof("  %s%s  %s  %s:%d  plugins: %s", n.ID, marker, n.Role, n.IP, n.Port, installed)
	}
	printPluginPorts(c)
}
