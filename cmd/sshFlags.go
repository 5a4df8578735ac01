package cmd

import (
	"github.com/spf13/pflag"

	"github.com/mikekinsman/aztk/config"
)

// sshFlags holds the raw `cluster ssh` flag values. Only flags the user
// actually passed become overrides.
var sshFlags struct {
	clusterID         string
	username          string
	webUIPort         int
	jobUIPort         int
	jobHistoryUIPort  int
	jupyterPort       int
	nameNodeUIPort    int
	rstudioServerPort int
	host              bool
	noConnect         bool
}

func init() {
	f := clusterSSHCmd.Flags()
	f.StringVar(&sshFlags.clusterID, "id", "", "The unique id of your spark cluster")
	f.IntVar(&sshFlags.webUIPort, "webui", 0, "Local port to port spark's master UI to")
	f.IntVar(&sshFlags.jobUIPort, "jobui", 0, "Local port to port spark's job UI to")
	f.IntVar(&sshFlags.jobHistoryUIPort, "jobhistoryui", 0, "Local port to port spark's job history UI to")
	f.IntVar(&sshFlags.jupyterPort, "jupyter", 0, "Local port to port jupyter to")
	f.IntVar(&sshFlags.nameNodeUIPort, "namenodeui", 0, "Local port to port HDFS NameNode UI to")
	f.IntVar(&sshFlags.rstudioServerPort, "rstudioserver", 0, "Local port to port rstudio server to")
	f.StringVarP(&sshFlags.username, "username", "u", "", "Username to spark cluster")
	f.BoolVar(&sshFlags.host, "host", false, "Connect to the host of the Spark container")
	f.BoolVar(&sshFlags.noConnect, "no-connect", false, "Do not create the ssh session. Only print out the command to run.")
}

// sshOverrides turns the flags present on the command line into config
// overrides. Flags left at their defaults are absent, so ssh.yaml values
// survive.
func sshOverrides(flags *pflag.FlagSet) config.Overrides {
	var o config.Overrides
	if flags.Changed("id") {
		o.ClusterID = config.String(sshFlags.clusterID)
	}
	if flags.Changed("username") {
		o.Username = config.String(sshFlags.username)
	}
	ports := []struct {
		flag string
		val  int
		dst  **int
	}{
		{"webui", sshFlags.webUIPort, &o.WebUIPort},
		{"jobui", sshFlags.jobUIPort, &o.JobUIPort},
		{"jobhistoryui", sshFlags.jobHistoryUIPort, &o.JobHistoryUIPort},
		{"jupyter", sshFlags.jupyterPort, &o.JupyterPort},
		{"namenodeui", sshFlags.nameNodeUIPort, &o.NameNodeUIPort},
		{"rstudioserver", sshFlags.rstudioServerPort, &o.RStudioServerPort},
	}
	for _, p := range ports {
		if flags.Changed(p.flag) {
			*p.dst = config.Int(p.val)
		}
	}
	if flags.Changed("host") {
		o.Host = config.Bool(sshFlags.host)
	}
	if flags.Changed("no-connect") {
		o.Connect = config.Bool(!sshFlags.noConnect)
	}
	return o
}
