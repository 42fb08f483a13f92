package chksum

import (
	"context"
	"io"
	"io/fs"
	"path"
	"sort"
	"unicode/utf8"

	"github.com/dromara/chksum/chksum/chksumio"
	"github.com/dromara/chksum/config"
	"github.com/dromara/chksum/digest"
	"github.com/dromara/chksum/hash"
	"github.com/dromara/chksum/utils"
)

// ReadChunkFunc performs one chunked read of f into buf. The blocking
// walker calls f.Read directly; the cooperative walker (chksumasync) races
// the same call against ctx.Done(). Together with the chksumio.FS facade,
// it is the seam between the two execution modes — the rest of the
// traversal algorithm below is shared.
type ReadChunkFunc func(ctx context.Context, f fs.File, buf []byte) (int, error)

// Walk runs the shared depth-first traversal against fsys, feeding h, under
// cfg, reading file content through readChunk. chksum.SumWithConfig and
// chksumasync.SumWithConfig are both thin wrappers over this one function —
// the walker type itself stays unexported so neither package can reach
// into its internals, only drive it through this entry point.
func Walk(ctx context.Context, fsys chksumio.FS, h *hash.Hash, cfg config.Config, readChunk ReadChunkFunc, root string) (digest.Digest, error) {
	w := &walker{fsys: fsys, h: h, cfg: cfg, readChunk: readChunk}
	return w.run(ctx, root)
}

// walker drives one chksum call. It owns the traversal stack exclusively
// for the duration of one Sum/SumWithConfig call, per spec §3's "Traversal
// stack" invariant.
type walker struct {
	fsys      chksumio.FS
	h         *hash.Hash
	cfg       config.Config
	readChunk ReadChunkFunc
}

// run executes the depth-first traversal of root described in spec §4.4:
// pop the stack front, mix the path in if configured, stat it, and either
// stream a regular file's content or push its directory entries (in
// reverse-sorted order, so pop-front yields ascending lexicographic
// order) back onto the stack.
func (w *walker) run(ctx context.Context, root string) (digest.Digest, error) {
	stack := []string{root}

	for len(stack) > 0 {
		p := stack[0]
		stack = stack[1:]

		if w.cfg.WithPaths {
			if !utf8.ValidString(p) {
				return nil, PathUnicodeError{Path: p}
			}
			w.h.Update(utils.String2Bytes(p))
		}

		info, err := w.fsys.Stat(p)
		if err != nil {
			return nil, MetadataError{Path: p, Err: err}
		}

		switch {
		case info.Mode().IsRegular():
			if err := w.readFile(ctx, p); err != nil {
				return nil, err
			}
		case info.IsDir():
			children, err := w.listChildren(p)
			if err != nil {
				return nil, err
			}
			stack = append(children, stack...)
		default:
			return nil, NetherFileNorDirectoryError{Path: p}
		}
	}

	return w.h.Digest(), nil
}

func (w *walker) listChildren(dir string) ([]string, error) {
	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		return nil, ReadError{Path: dir, Err: err}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	children := make([]string, len(entries))
	for i, e := range entries {
		children[i] = path.Join(dir, e.Name())
	}
	return children, nil
}

func (w *walker) readFile(ctx context.Context, p string) error {
	f, err := w.fsys.Open(p)
	if err != nil {
		return OpenError{Path: p, Err: err}
	}
	defer f.Close()

	chunkSize := w.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = config.DefaultChunkSize
	}
	buf := make([]byte, chunkSize)

	for {
		n, err := w.readChunk(ctx, f, buf)
		if err != nil && err != io.EOF {
			return ReadError{Path: p, Err: err}
		}
		// The final zero-byte read is forwarded as hash.Update(nil), which
		// is a no-op beyond incrementing the byte counter by zero.
		w.h.Update(buf[:n])
		if n == 0 {
			return nil
		}
	}
}

// syncReadChunk is the blocking ReadChunkFunc: a direct, synchronous
// f.Read call on the calling thread.
func syncReadChunk(_ context.Context, f fs.File, buf []byte) (int, error) {
	return f.Read(buf)
}
