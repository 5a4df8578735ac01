package cmd

import "github.com/mikekinsman/aztk/cluster"

// translateClusterError turns the batch service's "pool not found" into
// cluster.ErrClusterNotFound. Every other error, including nil, is returned
// as is.
func translateClusterError(err error) error {
	if cluster.HasCode(err, cluster.CodePoolNotFound) {
		return cluster.ErrClusterNotFound
	}
	return err
}
