package abi

import "fmt"

// InvalidHandleError indicates a shim call used a handle that was never
// issued or has already been dropped.
type InvalidHandleError struct {
	Handle Handle
}

func (e InvalidHandleError) Error() string {
	return fmt.Sprintf("abi: invalid handle %d", e.Handle)
}
