package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/mikekinsman/aztk/cluster"
	"github.com/mikekinsman/aztk/log"
	"github.com/mikekinsman/aztk/remote"
)

// writeTemp creates a temp file with content and returns its path.
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetConfig clears global configuration so tests don't leak state
func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.SetEnvPrefix("AZTK")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
	for _, fs := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		clusterSSHCmd.Flags(),
		clusterShowCmd.Flags(),
		pluginVerifyCmd.Flags(),
	} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	cfgClustersPath = ""
	cfgConfigDir = ".aztk"
	cfgKeyPath = ""
	cfgPassphrase = ""
	cfgPassword = ""
	cfgKnownHosts = ""
	cfgStrictHost = true
	cfgConnTimeout = 0
	cfgLogLevel = "info"

	origClient, origConnect, origStreams := newClusterClientFunc, connectFunc, streamsFunc
	t.Cleanup(func() {
		newClusterClientFunc, connectFunc, streamsFunc = origClient, origConnect, origStreams
	})
	connectFunc = func(context.Context, remote.Target, remote.Auth, remote.Streams) error {
		t.Fatalf("unexpected ssh connection")
		return nil
	}
	streamsFunc = func() remote.Streams { return remote.Streams{} }
}

// captureLog redirects the log sink into a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Output()
	prevNoColor := color.NoColor
	log.SetOutput(&buf)
	color.NoColor = true
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetLevel("info")
		color.NoColor = prevNoColor
	})
	return &buf
}

// isolateHome points HOME at an empty temp dir so a developer's own
// ~/.aztk/ssh.yaml cannot leak into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// stubClient is an in-memory cluster.Client.
type stubClient struct {
	cluster  *cluster.Cluster
	login    cluster.RemoteLogin
	getErr   error
	loginErr error
	gets     int
}

func (s *stubClient) GetCluster(_ context.Context, id string) (*cluster.Cluster, error) {
	s.gets++
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.cluster == nil || s.cluster.ID != id {
		return nil, &cluster.BatchError{Code: cluster.CodePoolNotFound}
	}
	return s.cluster, nil
}

func (s *stubClient) GetRemoteLoginSettings(context.Context, string, string) (cluster.RemoteLogin, error) {
	if s.loginErr != nil {
		return cluster.RemoteLogin{}, s.loginErr
	}
	return s.login, nil
}

func useClient(c cluster.Client) {
	newClusterClientFunc = func() cluster.Client { return c }
}

// recordConnect replaces the SSH session with a recorder.
type connectCall struct {
	target remote.Target
	auth   remote.Auth
}

func recordConnect(t *testing.T, err error) *[]connectCall {
	t.Helper()
	calls := &[]connectCall{}
	connectFunc = func(_ context.Context, tg remote.Target, a remote.Auth, _ remote.Streams) error {
		*calls = append(*calls, connectCall{target: tg, auth: a})
		return err
	}
	return calls
}

const storeYAML = `
clusters:
  - id: spark-1
    state: steady
    vm_size: standard_d2_v2
    master_node_id: tvm-0
    nodes:
      - id: tvm-0
        role: master
        ip: 10.0.0.4
        port: 50000
      - id: tvm-1
        role: worker
        ip: 10.0.0.5
        port: 50001
    configuration:
      plugins:
        - name: jupyter
          definition:
            name: jupyter
            ports:
              - remote: 8888
                local: 8888
                name: notebook
        - name: spark-ui-proxy
          definition:
            name: spark-ui-proxy
            ports:
              - remote: 9999
                local: 9999
        - name: node-exporter
          definition:
            name: node-exporter
            runOn: all-nodes
  - id: bare
    master_node_id: tvm-0
    nodes:
      - id: tvm-0
        role: master
        ip: 10.0.1.4
        port: 50000
`
