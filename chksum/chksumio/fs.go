// Package chksumio is the small filesystem facade the blocking (chksum)
// and cooperative (chksumasync) traversal routines are both written
// against: stat, open, read directory. Together with chksum.ReadChunkFunc
// (which performs the chunked file reads), it is the seam between the two
// execution modes — each supplies its own implementation of FS, but the
// traversal algorithm itself (chksum/walk.go) is written once.
package chksumio

import "io/fs"

// FS is the capability set path traversal needs from a filesystem.
type FS interface {
	Stat(path string) (fs.FileInfo, error)
	Open(path string) (fs.File, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}
