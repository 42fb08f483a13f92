// Package abi is the C ABI shim collaborator from §6: an opaque per-algorithm
// state handle, exposed as a plain Go integer rather than a raw pointer
// since this module carries no cgo boundary. Update here deliberately only
// consumes whole blocks and reports the count actually consumed — a
// different contract from hash.Hash.Update, which never fails to consume
// everything. Callers across an FFI boundary must resubmit whatever bytes
// were not reported consumed.
package abi

import (
	"sync"
	"sync/atomic"

	"github.com/dromara/chksum/hash"
)

// Handle identifies one live Hash across the shim boundary.
type Handle uintptr

var (
	nextHandle atomic.Uint64
	states     sync.Map // Handle -> *hash.Hash
)

// New allocates a Hash for algo and returns its opaque handle.
func New(algo hash.Algorithm) Handle {
	h := Handle(nextHandle.Add(1))
	states.Store(h, hash.New(algo))
	return h
}

// Update consumes as many whole blocks of data as the algorithm's block
// size allows, returning the number of bytes actually consumed. The
// trailing remainder (len(data) - consumed, always < block size) must be
// resubmitted by the caller in a later Update call — unlike hash.Hash,
// which buffers the remainder itself.
func Update(h Handle, data []byte) (consumed int, err error) {
	hsh, err := lookup(h)
	if err != nil {
		return 0, err
	}
	bs := hsh.Algorithm().BlockSize()
	n := (len(data) / bs) * bs
	if n > 0 {
		hsh.Update(data[:n])
	}
	return n, nil
}

// Digest returns the current digest bytes for h, without resetting it.
func Digest(h Handle) ([]byte, error) {
	hsh, err := lookup(h)
	if err != nil {
		return nil, err
	}
	return hsh.Digest().Bytes(), nil
}

// HexDigest returns the current digest as lowercase hex.
func HexDigest(h Handle) (string, error) {
	hsh, err := lookup(h)
	if err != nil {
		return "", err
	}
	return hsh.Digest().LowerHex(), nil
}

// Drop releases h. Using h after Drop returns InvalidHandleError.
func Drop(h Handle) {
	states.Delete(h)
}

func lookup(h Handle) (*hash.Hash, error) {
	v, ok := states.Load(h)
	if !ok {
		return nil, InvalidHandleError{Handle: h}
	}
	return v.(*hash.Hash), nil
}
