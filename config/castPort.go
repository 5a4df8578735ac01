package config

import (
	"fmt"

	"github.com/spf13/cast"
)

// castPort accepts ports written either as numbers or as quoted strings,
// both of which appear in hand-written ssh.yaml files.
func castPort(v interface{}) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("invalid port %v", v)
	}
	return n, nil
}
