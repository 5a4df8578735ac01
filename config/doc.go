// Package config resolves the SSH connection settings used by `cluster ssh`.
//
// Settings come from three layers, lowest precedence first: built-in
// defaults, persisted ssh.yaml files (global then local), and explicit
// command-line overrides. Every layer is applied with Merge.
package config
