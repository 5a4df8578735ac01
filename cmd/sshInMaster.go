package cmd

import (
	"context"

	"github.com/mikekinsman/aztk/cluster"
	"github.com/mikekinsman/aztk/config"
	"github.com/mikekinsman/aztk/remote"
)

// Ports the Spark services listen on inside the cluster.
const (
	sparkWebUIPort        = 8080
	sparkJobUIPort        = 4040
	sparkJobHistoryUIPort = 18080
	sparkNameNodeUIPort   = 50070
)

// sparkContainerShell opens a shell in the spark container instead of on
// the node itself.
const sparkContainerShell = "sudo docker exec -it spark /bin/bash"

// sshInMaster builds the session to c's master node, opens it when
// sshConf.Connect is set, and returns the equivalent ssh command.
func sshInMaster(ctx context.Context, client cluster.Client, c *cluster.Cluster, sshConf config.SSHConfig) (string, error) {
	login, err := client.GetRemoteLoginSettings(ctx, c.ID, c.MasterNodeID)
	if err != nil {
		return "", err
	}
	target := masterTarget(login, c, sshConf)

	if sshConf.Connect {
		auth := remote.Auth{
			KeyPath:        cfgKeyPath,
			Passphrase:     cfgPassphrase,
			Password:       cfgPassword,
			KnownHostsPath: cfgKnownHosts,
			StrictHostKey:  cfgStrictHost,
			DialTimeout:    cfgConnTimeout,
		}
		if err := connectFunc(ctx, target, auth, streamsFunc()); err != nil {
			return "", err
		}
	}
	return target.Command(), nil
}

// masterTarget forwards the four Spark UIs (skipping any with no local
// port) and then every plugin port, in plugin then declaration order.
func masterTarget(login cluster.RemoteLogin, c *cluster.Cluster, sshConf config.SSHConfig) remote.Target {
	t := remote.Target{
		Host: login.IP,
		Port: login.Port,
		User: sshConf.Username,
	}
	for _, f := range []remote.Forward{
		{Local: sshConf.WebUIPort, Remote: sparkWebUIPort},
		{Local: sshConf.JobUIPort, Remote: sparkJobUIPort},
		{Local: sshConf.JobHistoryUIPort, Remote: sparkJobHistoryUIPort},
		{Local: sshConf.NameNodeUIPort, Remote: sparkNameNodeUIPort},
	} {
		if f.Local > 0 {
			t.Forwards = append(t.Forwards, f)
		}
	}
	for _, p := range c.Plugins() {
		for _, port := range p.Definition.Ports {
			t.Forwards = append(t.Forwards, remote.Forward{Local: port.Local, Remote: port.Remote})
		}
	}
	if !sshConf.Host {
		t.RemoteCommand = sparkContainerShell
	}
	return t
}
