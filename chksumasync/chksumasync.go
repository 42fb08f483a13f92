// Package chksumasync implements the cooperative (non-blocking) path hasher:
// the same depth-first traversal and digest as package chksum, but every
// filesystem call is run on its own goroutine and raced against
// ctx.Done(), so cancellation is honored at each suspension point named by
// spec §5 (stat, open, read, read_dir). The two packages share the
// traversal algorithm in chksum/walk.go and differ only in how a facade
// call is driven.
package chksumasync

import (
	"context"
	"io/fs"

	"github.com/dromara/chksum/chksum"
	"github.com/dromara/chksum/chksum/chksumio"
	"github.com/dromara/chksum/config"
	"github.com/dromara/chksum/digest"
	"github.com/dromara/chksum/hash"
)

// Sum hashes path with the default Config, honoring ctx cancellation at
// every suspension point. If ctx is cancelled mid-traversal, h is left in
// an unspecified state per spec §5 — the caller must Reset() before reuse.
func Sum(ctx context.Context, path string, h *hash.Hash) (digest.Digest, error) {
	return SumWithConfig(ctx, path, h, config.New())
}

// SumWithConfig hashes path exactly as Sum does, but under an explicit
// Config.
func SumWithConfig(ctx context.Context, path string, h *hash.Hash, cfg config.Config) (digest.Digest, error) {
	fsys := ctxFS{ctx: ctx, fsys: chksumio.OS{}}
	return chksum.Walk(ctx, fsys, h, cfg, readChunk, path)
}

// ctxFS wraps a synchronous chksumio.FS so each call runs on its own
// goroutine and loses the race to ctx.Done() if the caller cancels first.
// This is the suspension point: stat, open and read_dir all go through it.
type ctxFS struct {
	ctx  context.Context
	fsys chksumio.FS
}

func (c ctxFS) Stat(path string) (fs.FileInfo, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	type outcome struct {
		info fs.FileInfo
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		info, err := c.fsys.Stat(path)
		ch <- outcome{info, err}
	}()
	select {
	case <-c.ctx.Done():
		return nil, c.ctx.Err()
	case o := <-ch:
		return o.info, o.err
	}
}

func (c ctxFS) Open(path string) (fs.File, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	type outcome struct {
		f   fs.File
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		f, err := c.fsys.Open(path)
		ch <- outcome{f, err}
	}()
	select {
	case <-c.ctx.Done():
		return nil, c.ctx.Err()
	case o := <-ch:
		return o.f, o.err
	}
}

func (c ctxFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	type outcome struct {
		entries []fs.DirEntry
		err     error
	}
	ch := make(chan outcome, 1)
	go func() {
		entries, err := c.fsys.ReadDir(path)
		ch <- outcome{entries, err}
	}()
	select {
	case <-c.ctx.Done():
		return nil, c.ctx.Err()
	case o := <-ch:
		return o.entries, o.err
	}
}

// readChunk is the cooperative chksum.ReadChunkFunc: the read itself still
// runs on a goroutine so a cancelled ctx can return before it completes.
func readChunk(ctx context.Context, f fs.File, buf []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	type outcome struct {
		n   int
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		n, err := f.Read(buf)
		ch <- outcome{n, err}
	}()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case o := <-ch:
		return o.n, o.err
	}
}
