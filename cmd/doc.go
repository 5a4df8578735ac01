// Package cmd implements the aztk command-line interface.
//
// The package organizes the cobra subcommands (cluster ssh, cluster show,
// plugin verify) and the glue between them: resolving SSH settings from
// ssh.yaml files and flags, looking clusters up through the cluster
// service, rendering the connection summary, and handing the session to
// the remote package.
//
// New contributors should start with init.go to see how cobra and viper
// are wired, then clusterSSHCmd.go for the main flow.
package cmd
