package cmd

import "strings"

// envKeyReplacer maps flag names to environment names, e.g. known-hosts to
// AZTK_KNOWN_HOSTS.
var envKeyReplacer = strings.NewReplacer("-", "_")
