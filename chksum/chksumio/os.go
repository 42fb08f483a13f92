package chksumio

import (
	"io/fs"
	"os"
)

// OS is the synchronous FS implementation backing the blocking traversal
// (chksum.Sum): every call is a direct syscall on the calling thread.
type OS struct{}

func (OS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (OS) Open(path string) (fs.File, error) { return os.Open(path) }

func (OS) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }
