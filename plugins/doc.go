// Package plugins defines the manifest a cluster plugin ships with: the
// ports it wants forwarded, the files uploaded to the node, the command run
// after upload, and which node roles it is installed on.
//
// A PluginDefinition is built once, when the installer loads the plugin, and
// is treated as read-only afterwards. Collections are never nil so callers
// can range over them without checks.
package plugins
