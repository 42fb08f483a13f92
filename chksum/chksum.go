// Package chksum implements the blocking path hasher (L4): depth-first
// traversal of a filesystem path, chunked reads, optional path-name
// injection, feeding a hash.Hash. See chksumasync for the cooperative
// (non-blocking) execution mode sharing this same traversal algorithm.
package chksum

import (
	"context"
	"io"

	"github.com/dromara/chksum/chksum/chksumio"
	"github.com/dromara/chksum/config"
	"github.com/dromara/chksum/digest"
	"github.com/dromara/chksum/hash"
)

// Sum hashes path with the default Config (64KB chunks, no path mixing).
// If path is a regular file, h is updated with its content; if it is a
// directory, h is updated with the content of every descendant, visited in
// ascending lexicographic order (spec §4.4). On any error the traversal
// stops immediately and h is left in an unspecified (but safe) state —
// call h.Reset() before reusing it.
func Sum(path string, h *hash.Hash) (digest.Digest, error) {
	return SumWithConfig(path, h, config.New())
}

// SumWithConfig hashes path exactly as Sum does, but under an explicit
// Config.
func SumWithConfig(path string, h *hash.Hash, cfg config.Config) (digest.Digest, error) {
	return Walk(context.Background(), chksumio.OS{}, h, cfg, syncReadChunk, path)
}

// SumReader hashes the entirety of r into h, without going through the
// filesystem at all. Not part of spec.md's distilled L4 contract, but
// present in the original chksum crate's bytes/str entry points
// (chksum/tests/bytes_tests.rs) — added here as a thin wrapper over the
// same chunked-update loop the file-read branch of Sum uses, so it obeys
// the same chunk-invariance and concatenation properties.
func SumReader(r io.Reader, h *hash.Hash) (digest.Digest, error) {
	buf := make([]byte, config.DefaultChunkSize)
	for {
		n, err := r.Read(buf)
		h.Update(buf[:n])
		if err != nil && err != io.EOF {
			return nil, IOError{Path: "<reader>", Err: err}
		}
		if n == 0 {
			break
		}
	}
	return h.Digest(), nil
}

// SumBytes hashes b directly into h.
func SumBytes(b []byte, h *hash.Hash) (digest.Digest, error) {
	h.Update(b)
	return h.Digest(), nil
}

// Result is one path's outcome from SumAll.
type Result struct {
	Digest digest.Digest
	Err    error
}

// SumAll hashes each of paths independently, one fresh Hash per path built
// by newHash (a Hash is single-owner per spec §5, so paths cannot share
// one). Mirrored from the original chksum-cli's multi-path loop
// (chksum-cli/src/main.rs) and chksum-async's multi-file example: the CLI
// and any batch caller can drive this instead of re-implementing the
// per-path loop themselves.
func SumAll(paths []string, newHash func() *hash.Hash, cfg config.Config) map[string]Result {
	results := make(map[string]Result, len(paths))
	for _, p := range paths {
		d, err := SumWithConfig(p, newHash(), cfg)
		results[p] = Result{Digest: d, Err: err}
	}
	return results
}
