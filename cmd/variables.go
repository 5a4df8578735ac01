package cmd

import (
	"time"

	"github.com/mikekinsman/aztk/cluster"
	"github.com/mikekinsman/aztk/remote"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	cfgClustersPath string
	cfgConfigDir    string
	cfgKeyPath      string
	cfgPassphrase   string
	cfgPassword     string
	cfgKnownHosts   string
	cfgStrictHost   bool
	cfgConnTimeout  time.Duration
	cfgLogLevel     string
)

// Allow tests to stub the cluster service and the SSH session
var (
	newClusterClientFunc = func() cluster.Client { return cluster.NewStore(cfgClustersPath) }
	connectFunc          = remote.Connect
	streamsFunc          = remote.StdStreams
)
