package cluster

import (
	"errors"
	"fmt"
)

// Error codes reported by the batch service.
const (
	CodePoolNotFound = "PoolNotFound"
	CodeNodeNotFound = "NodeNotFound"
)

// ErrClusterNotFound is what users see when they target a cluster that does
// not exist.
var ErrClusterNotFound = errors.New("the cluster you are trying to connect to does not exist")

// BatchError is an error reported by the batch service.
type BatchError struct {
	Code    string
	Message string
}

// Error returns the error message
func (e *BatchError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("batch error %s", e.Code)
	}
	return fmt.Sprintf("batch error %s: %s", e.Code, e.Message)
}

// HasCode reports whether err is, or wraps, a *BatchError with the given
// code.
func HasCode(err error, code string) bool {
	var be *BatchError
	return errors.As(err, &be) && be.Code == code
}
