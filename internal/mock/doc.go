// Package mock provides an in-memory chksumio.FS implementation and
// error-injecting file doubles, used to drive chksum's traversal and error
// paths in tests without touching the real filesystem.
package mock
