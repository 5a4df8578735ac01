package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the name of a persisted SSH configuration file.
const FileName = "ssh.yaml"

// Keys of ssh.yaml.
const (
	keyClusterID         = "cluster_id"
	keyUsername          = "username"
	keyJobUIPort         = "job_ui_port"
	keyJobHistoryUIPort  = "job_history_ui_port"
	keyWebUIPort         = "web_ui_port"
	keyJupyterPort       = "jupyter_port"
	keyNameNodeUIPort    = "name_node_ui_port"
	keyRStudioServerPort = "rstudio_server_port"
	keyHost              = "host"
	keyConnect           = "connect"
)

// GlobalPath is the per-user ssh.yaml, ~/.aztk/ssh.yaml. It is empty when
// the home directory cannot be determined.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aztk", FileName)
}

// Load starts from Default and merges every existing file in paths, in
// order, so later files win. Empty paths and missing files are skipped.
func Load(paths ...string) (SSHConfig, error) {
	cfg := Default()
	for _, p := range paths {
		if p == "" {
			continue
		}
		o, err := readOverrides(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return SSHConfig{}, fmt.Errorf("failed to read %s: %w", p, err)
		}
		cfg = Merge(cfg, o)
	}
	return cfg, nil
}

// readOverrides parses one ssh.yaml. Only keys present in the file become
// overrides.
func readOverrides(path string) (Overrides, error) {
	if _, err := os.Stat(path); err != nil {
		return Overrides{}, err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Overrides{}, err
	}

	var o Overrides
	str := func(key string) *string {
		if !v.IsSet(key) {
			return nil
		}
		return String(v.GetString(key))
	}
	num := func(key string) (*int, error) {
		if !v.IsSet(key) {
			return nil, nil
		}
		n, err := castPort(v.Get(key))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return &n, nil
	}
	flag := func(key string) *bool {
		if !v.IsSet(key) {
			return nil
		}
		return Bool(v.GetBool(key))
	}

	o.ClusterID = str(keyClusterID)
	o.Username = str(keyUsername)
	var err error
	for _, f := range []struct {
		key string
		dst **int
	}{
		{keyJobUIPort, &o.JobUIPort},
		{keyJobHistoryUIPort, &o.JobHistoryUIPort},
		{keyWebUIPort, &o.WebUIPort},
		{keyJupyterPort, &o.JupyterPort},
		{keyNameNodeUIPort, &o.NameNodeUIPort},
		{keyRStudioServerPort, &o.RStudioServerPort},
	} {
		if *f.dst, err = num(f.key); err != nil {
			return Overrides{}, err
		}
	}
	o.Host = flag(keyHost)
	o.Connect = flag(keyConnect)
	return o, nil
}
