package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikekinsman/aztk/cluster"
	"github.com/mikekinsman/aztk/remote"
)

const sparkShellQuoted = "'sudo docker exec -it spark /bin/bash'"

// runSSH executes `aztk cluster ssh` against a store file in a temp dir and
// an empty local config dir.
func runSSH(t *testing.T, dir string, args ...string) error {
	t.Helper()
	store := writeTemp(t, dir, "clusters.yaml", storeYAML)
	base := []string{"cluster", "ssh", "--clusters", store, "--config-dir", filepath.Join(dir, "local")}
	rootCmd.SetArgs(append(base, args...))
	return rootCmd.Execute()
}

func TestClusterSSH_NoConnectPrintsSummaryAndCommand(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	buf := captureLog(t)

	err := runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark", "--no-connect")
	require.NoError(t, err)

	want := strings.Join([]string{
		summaryRule,
		"spark cluster id:    spark-1",
		"open webui:          http://localhost:8080",
		"open jobui:          http://localhost:4040",
		"open jobhistoryui:   http://localhost:18080",
		"open namenodeui:     http://localhost:50070",
		"Plugins:",
		"  - open jupyter notebook: http://localhost:8888",
		"  - open spark-ui-proxy : http://localhost:9999",
		"ssh username:        spark",
		"connect:             false",
		summaryRule,
		"",
		"Use the following command to connect to your spark head node:",
		"\tssh -L 8080:localhost:8080 -L 4040:localhost:4040 -L 18080:localhost:18080 -L 50070:localhost:50070" +
			" -L 8888:localhost:8888 -L 9999:localhost:9999 -t spark@10.0.0.4 -p 50000 " + sparkShellQuoted,
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestClusterSSH_NoConnectWithoutUsernameUsesPlaceholder(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	buf := captureLog(t)

	require.NoError(t, runSSH(t, t.TempDir(), "--id", "bare", "--no-connect"))
	out := buf.String()
	assert.NotContains(t, out, "Plugins:")
	assert.Contains(t, out, "ssh username:        \n")
	assert.Contains(t, out, "-t "+remote.UsernamePlaceholder+"@10.0.1.4 -p 50000 "+sparkShellQuoted)
}

func TestClusterSSH_ConnectOpensSessionWithForwards(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	buf := captureLog(t)
	calls := recordConnect(t, nil)

	require.NoError(t, runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark", "--webui", "9080", "--key", "/keys/id_rsa"))
	require.Len(t, *calls, 1)

	got := (*calls)[0]
	require.Equal(t, "10.0.0.4", got.target.Host)
	require.Equal(t, 50000, got.target.Port)
	require.Equal(t, "spark", got.target.User)
	require.Equal(t, []remote.Forward{
		{Local: 9080, Remote: 8080},
		{Local: 4040, Remote: 4040},
		{Local: 18080, Remote: 18080},
		{Local: 50070, Remote: 50070},
		{Local: 8888, Remote: 8888},
		{Local: 9999, Remote: 9999},
	}, got.target.Forwards)
	require.Equal(t, sparkContainerShell, got.target.RemoteCommand)
	require.Equal(t, "/keys/id_rsa", got.auth.KeyPath)
	require.True(t, got.auth.StrictHostKey)

	out := buf.String()
	require.Contains(t, out, "connect:             true")
	require.NotContains(t, out, "Use the following command")
}

func TestClusterSSH_HostSkipsContainerShell(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	captureLog(t)
	calls := recordConnect(t, nil)

	require.NoError(t, runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark", "--host"))
	require.Len(t, *calls, 1)
	require.Empty(t, (*calls)[0].target.RemoteCommand)
	require.True(t, strings.HasSuffix((*calls)[0].target.Command(), "-t spark@10.0.0.4 -p 50000"))
}

func TestClusterSSH_UnknownClusterIsClusterNotFound(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	buf := captureLog(t)

	err := runSSH(t, t.TempDir(), "--id", "nope", "-u", "spark")
	require.ErrorIs(t, err, cluster.ErrClusterNotFound)
	require.Equal(t, "the cluster you are trying to connect to does not exist", err.Error())
	require.Empty(t, buf.String())
}

func TestClusterSSH_MissingIDIsClusterNotFound(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	captureLog(t)

	err := runSSH(t, t.TempDir(), "-u", "spark", "--no-connect")
	require.ErrorIs(t, err, cluster.ErrClusterNotFound)
}

func TestClusterSSH_ConnectRequiresUsername(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	buf := captureLog(t)

	err := runSSH(t, t.TempDir(), "--id", "spark-1")
	require.ErrorIs(t, err, errNoUsername)
	// the summary is still shown before the rejection
	require.Contains(t, buf.String(), "spark cluster id:    spark-1")
}

func TestClusterSSH_PersistedConfigAndFlagPrecedence(t *testing.T) {
	resetConfig(t)
	home := isolateHome(t)
	buf := captureLog(t)
	dir := t.TempDir()

	writeTemp(t, home, ".aztk/ssh.yaml", "cluster_id: spark-1\nusername: global-user\nweb_ui_port: 7000\njob_ui_port: 7001\n")
	writeTemp(t, dir, "local/ssh.yaml", "username: local-user\njob_ui_port: 7101\nconnect: false\n")

	require.NoError(t, runSSH(t, dir, "--jobui", "7201"))
	out := buf.String()
	assert.Contains(t, out, "spark cluster id:    spark-1")
	assert.Contains(t, out, "open webui:          http://localhost:7000")
	assert.Contains(t, out, "open jobui:          http://localhost:7201")
	assert.Contains(t, out, "ssh username:        local-user")
	assert.Contains(t, out, "connect:             false")
	assert.Contains(t, out, "-L 7000:localhost:8080 -L 7201:localhost:4040")
}

func TestClusterSSH_EmptyUsernameFlagKeepsPersistedValue(t *testing.T) {
	resetConfig(t)
	home := isolateHome(t)
	buf := captureLog(t)

	writeTemp(t, home, ".aztk/ssh.yaml", "username: spark\n")
	require.NoError(t, runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "", "--no-connect"))
	require.Contains(t, buf.String(), "ssh username:        spark")
}

func TestClusterSSH_LookupErrorPassesThrough(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	captureLog(t)
	boom := errors.New("service unavailable")
	useClient(&stubClient{getErr: boom})

	err := runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark")
	require.True(t, err == boom, "expected the lookup error unchanged, got %v", err)
}

func TestClusterSSH_SessionErrorsAreTranslated(t *testing.T) {
	c := &cluster.Cluster{ID: "spark-1", MasterNodeID: "tvm-0"}

	t.Run("pool not found on login lookup", func(t *testing.T) {
		resetConfig(t)
		isolateHome(t)
		captureLog(t)
		useClient(&stubClient{cluster: c, loginErr: &cluster.BatchError{Code: cluster.CodePoolNotFound}})
		err := runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark", "--no-connect")
		require.ErrorIs(t, err, cluster.ErrClusterNotFound)
	})

	t.Run("node not found passes through", func(t *testing.T) {
		resetConfig(t)
		isolateHome(t)
		captureLog(t)
		nodeErr := &cluster.BatchError{Code: cluster.CodeNodeNotFound}
		useClient(&stubClient{cluster: c, loginErr: nodeErr})
		err := runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark", "--no-connect")
		require.True(t, err == nodeErr, "expected the node error unchanged, got %v", err)
	})

	t.Run("connection failure passes through", func(t *testing.T) {
		resetConfig(t)
		isolateHome(t)
		captureLog(t)
		dialErr := errors.New("dial tcp: connection refused")
		useClient(&stubClient{cluster: c, login: cluster.RemoteLogin{IP: "10.0.0.4", Port: 22}})
		calls := recordConnect(t, dialErr)
		err := runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark")
		require.Len(t, *calls, 1)
		require.True(t, err == dialErr, "expected the dial error unchanged, got %v", err)
	})

	t.Run("pool not found while connecting", func(t *testing.T) {
		resetConfig(t)
		isolateHome(t)
		captureLog(t)
		useClient(&stubClient{cluster: c, login: cluster.RemoteLogin{IP: "10.0.0.4", Port: 22}})
		recordConnect(t, fmt.Errorf("open session: %w", &cluster.BatchError{Code: cluster.CodePoolNotFound}))
		err := runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark")
		require.ErrorIs(t, err, cluster.ErrClusterNotFound)
	})
}

// TestClusterSSH_FlagsDoNotLeakBetweenRuns guards the test harness itself:
// after a --no-connect run, a reset run connects again.
func TestClusterSSH_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	captureLog(t)
	require.NoError(t, runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark", "--no-connect"))

	resetConfig(t)
	calls := recordConnect(t, nil)
	require.NoError(t, runSSH(t, t.TempDir(), "--id", "spark-1", "-u", "spark"))
	require.Len(t, *calls, 1)
}

func TestClusterSSH_ZeroUIPortIsNotForwarded(t *testing.T) {
	resetConfig(t)
	isolateHome(t)
	captureLog(t)
	calls := recordConnect(t, nil)

	require.NoError(t, runSSH(t, t.TempDir(), "--id", "bare", "-u", "spark", "--namenodeui", "0"))
	require.Len(t, *calls, 1)
	for _, f := range (*calls)[0].target.Forwards {
		require.NotEqual(t, sparkNameNodeUIPort, f.Remote)
	}
	require.Len(t, (*calls)[0].target.Forwards, 3)
}
