// Package cluster is the boundary to the batch service that owns clusters.
//
// Client is the contract the CLI depends on. Store is a file-backed
// implementation that reads cluster state from a YAML document, so the CLI
// can run without a live batch account.
package cluster
