package cmd

import (
	"github.com/mikekinsman/aztk/cluster"
	"github.com/mikekinsman/aztk/config"
	"github.com/mikekinsman/aztk/log"
)

const httpPrefix = "http://localhost:"

const summaryRule = "-------------------------------------------"

// printSSHSummary logs the resolved settings and where each UI will be
// reachable once the session is up.
func printSSHSummary(sshConf config.SSHConfig, c *cluster.Cluster) {
	log.Info(summaryRule)
	log.Infof("spark cluster id:    %s", sshConf.ClusterID)
	log.Infof("open webui:          %s%d", httpPrefix, sshConf.WebUIPort)
	log.Infof("open jobui:          %s%d", httpPrefix, sshConf.JobUIPort)
	log.Infof("open jobhistoryui:   %s%d", httpPrefix, sshConf.JobHistoryUIPort)
	log.Infof("open namenodeui:     %s%d", httpPrefix, sshConf.NameNodeUIPort)
	printPluginPorts(c)
	log.Infof("ssh username:        %s", sshConf.Username)
	log.Infof("connect:             %t", sshConf.Connect)
	log.Info(summaryRule)
}

// printPluginPorts writes the header as is and each port line as an
// "open" instruction.
func printPluginPorts(c *cluster.Cluster) {
	lines := renderPluginPorts(c)
	if len(lines) == 0 {
		return
	}
	log.Info(lines[0])
	for _, l := range lines[1:] {
		log.Infof("  - open %s", l)
	}
}
