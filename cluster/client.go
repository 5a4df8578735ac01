package cluster

import "context"

// Client looks clusters up in the batch service.
type Client interface {
	// GetCluster returns the cluster with the given id, or a *BatchError
	// with CodePoolNotFound when there is none.
	GetCluster(ctx context.Context, id string) (*Cluster, error)
	// GetRemoteLoginSettings returns the SSH address of one node.
	GetRemoteLoginSettings(ctx context.Context, clusterID, nodeID string) (RemoteLogin, error)
}
