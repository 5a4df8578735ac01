package cluster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is a Client backed by a YAML document of the form
//
//	clusters:
//	  - id: spark-1
//	    master_node_id: tvm-0
//	    nodes: [...]
//	    configuration:
//	      plugins: [...]
//
// The file is read on every call, so edits take effect without a restart.
type Store struct {
	path string
}

type storeFile struct {
	Clusters []Cluster `yaml:"clusters"`
}

// NewStore returns a Store reading path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStorePath is ~/.aztk/clusters.yaml, or clusters.yaml in the working
// directory when the home directory is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clusters.yaml"
	}
	return filepath.Join(home, ".aztk", "clusters.yaml")
}

// Path returns the file the store reads.
func (s *Store) Path() string {
	return s.path
}

// GetCluster implements Client.
func (s *Store) GetCluster(ctx context.Context, id string) (*Cluster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range f.Clusters {
		if f.Clusters[i].ID == id {
			c := f.Clusters[i]
			return &c, nil
		}
	}
	return nil, &BatchError{Code: CodePoolNotFound, Message: fmt.Sprintf("the specified pool %q does not exist", id)}
}

// GetRemoteLoginSettings implements Client.
func (s *Store) GetRemoteLoginSettings(ctx context.Context, clusterID, nodeID string) (RemoteLogin, error) {
	c, err := s.GetCluster(ctx, clusterID)
	if err != nil {
		return RemoteLogin{}, err
	}
	for _, n := range c.Nodes {
		if n.ID == nodeID {
			return RemoteLogin{IP: n.IP, Port: n.Port}, nil
		}
	}
	return RemoteLogin{}, &BatchError{Code: CodeNodeNotFound, Message: fmt.Sprintf("node %q not found in pool %q", nodeID, clusterID)}
}

// read loads the store file. A missing file is an empty store, so lookups
// report PoolNotFound rather than an I/O error.
func (s *Store) read() (*storeFile, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &storeFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cluster store: %w", err)
	}
	f := &storeFile{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("parse cluster store %s: %w", s.path, err)
	}
	return f, nil
}
