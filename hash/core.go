package hash

import (
	"github.com/dromara/chksum/core/md5"
	"github.com/dromara/chksum/core/sha1"
	"github.com/dromara/chksum/core/sha2"
)

// core is the narrow interface Hash needs from a compression state: feed it
// one full block, read the current digest bytes, reset it, and clone it
// for non-destructive Digest() calls. Each algorithm's State satisfies it
// through a small wrapper, so Hash itself never imports core/* directly
// beyond this file.
type core interface {
	updateBlock(block []byte)
	bytes() []byte
	reset()
	clone() core
}

func newCore(a Algorithm) core {
	switch a {
	case MD5:
		s := md5.New()
		return &coreMD5{s: s}
	case SHA1:
		s := sha1.New()
		return &coreSHA1{s: s}
	case SHA224:
		s := sha2.New224()
		return &coreSHA224{s: s}
	case SHA256:
		s := sha2.New256()
		return &coreSHA256{s: s}
	case SHA384:
		s := sha2.New384()
		return &coreSHA384{s: s}
	case SHA512:
		s := sha2.New512()
		return &coreSHA512{s: s}
	default:
		panic("hash: unknown algorithm")
	}
}

type coreMD5 struct{ s md5.State }

func (c *coreMD5) updateBlock(b []byte) {
	var blk [md5.BlockSize]byte
	copy(blk[:], b)
	c.s.Update(&blk)
}
func (c *coreMD5) bytes() []byte { out := c.s.Bytes(); return out[:] }
func (c *coreMD5) reset()        { c.s.Reset() }
func (c *coreMD5) clone() core   { cp := c.s; return &coreMD5{s: cp} }

type coreSHA1 struct{ s sha1.State }

func (c *coreSHA1) updateBlock(b []byte) {
	var blk [sha1.BlockSize]byte
	copy(blk[:], b)
	c.s.Update(&blk)
}
func (c *coreSHA1) bytes() []byte { out := c.s.Bytes(); return out[:] }
func (c *coreSHA1) reset()        { c.s.Reset() }
func (c *coreSHA1) clone() core   { cp := c.s; return &coreSHA1{s: cp} }

type coreSHA224 struct{ s sha2.State224 }

func (c *coreSHA224) updateBlock(b []byte) {
	var blk [sha2.BlockSize32]byte
	copy(blk[:], b)
	c.s.Update(&blk)
}
func (c *coreSHA224) bytes() []byte { out := c.s.Bytes(); return out[:] }
func (c *coreSHA224) reset()        { c.s.Reset() }
func (c *coreSHA224) clone() core   { cp := c.s; return &coreSHA224{s: cp} }

type coreSHA256 struct{ s sha2.State256 }

func (c *coreSHA256) updateBlock(b []byte) {
	var blk [sha2.BlockSize32]byte
	copy(blk[:], b)
	c.s.Update(&blk)
}
func (c *coreSHA256) bytes() []byte { out := c.s.Bytes(); return out[:] }
func (c *coreSHA256) reset()        { c.s.Reset() }
func (c *coreSHA256) clone() core   { cp := c.s; return &coreSHA256{s: cp} }

type coreSHA384 struct{ s sha2.State384 }

func (c *coreSHA384) updateBlock(b []byte) {
	var blk [sha2.BlockSize64]byte
	copy(blk[:], b)
	c.s.Update(&blk)
}
func (c *coreSHA384) bytes() []byte { out := c.s.Bytes(); return out[:] }
func (c *coreSHA384) reset()        { c.s.Reset() }
func (c *coreSHA384) clone() core   { cp := c.s; return &coreSHA384{s: cp} }

type coreSHA512 struct{ s sha2.State512 }

func (c *coreSHA512) updateBlock(b []byte) {
	var blk [sha2.BlockSize64]byte
	copy(blk[:], b)
	c.s.Update(&blk)
}
func (c *coreSHA512) bytes() []byte { out := c.s.Bytes(); return out[:] }
func (c *coreSHA512) reset()        { c.s.Reset() }
func (c *coreSHA512) clone() core   { cp := c.s; return &coreSHA512{s: cp} }
