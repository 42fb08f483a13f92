package chksum

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromara/chksum/config"
	"github.com/dromara/chksum/hash"
	"github.com/dromara/chksum/internal/mock"
)

func TestSumFileMatchesDirectUpdate(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	content := []byte("the quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(p, content, 0o644))

	got, err := Sum(p, hash.New(hash.SHA256))
	require.NoError(t, err)

	want := hash.New(hash.SHA256)
	want.Update(content)
	assert.True(t, got.Equal(want.Digest()))
}

func TestSumDirectoryOrderIndependentOfListingOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0o644))

	got, err := Sum(dir, hash.New(hash.SHA256))
	require.NoError(t, err)

	want := hash.New(hash.SHA256)
	want.Update([]byte("a"))
	want.Update([]byte("b"))
	want.Update([]byte("c"))
	assert.True(t, got.Equal(want.Digest()))
}

func TestSumNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "x.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("t"), 0o644))

	got, err := Sum(dir, hash.New(hash.SHA256))
	require.NoError(t, err)

	want := hash.New(hash.SHA256)
	want.Update([]byte("x"))
	want.Update([]byte("t"))
	assert.True(t, got.Equal(want.Digest()))
}

func TestSumChunkSizeInvariance(t *testing.T) {
	dir := t.TempDir()
	content := bytes.Repeat([]byte{0x5a}, 10000)
	p := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(p, content, 0o644))

	whole, err := SumWithConfig(p, hash.New(hash.SHA256), config.New(config.WithChunkSize(1<<20)))
	require.NoError(t, err)

	tiny, err := SumWithConfig(p, hash.New(hash.SHA256), config.New(config.WithChunkSize(7)))
	require.NoError(t, err)

	assert.True(t, whole.Equal(tiny))
}

func TestSumWithPathsMixesPathBytes(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(p, []byte("a"), 0o644))

	withPaths, err := SumWithConfig(p, hash.New(hash.SHA256), config.New(config.WithPaths(true)))
	require.NoError(t, err)

	withoutPaths, err := Sum(p, hash.New(hash.SHA256))
	require.NoError(t, err)

	assert.False(t, withPaths.Equal(withoutPaths))
}

func TestSumReader(t *testing.T) {
	got, err := SumReader(bytes.NewReader([]byte("hello")), hash.New(hash.SHA256))
	require.NoError(t, err)

	want := hash.New(hash.SHA256)
	want.Update([]byte("hello"))
	assert.True(t, got.Equal(want.Digest()))
}

func TestSumBytes(t *testing.T) {
	got, err := SumBytes([]byte("hello"), hash.New(hash.SHA256))
	require.NoError(t, err)

	want := hash.New(hash.SHA256)
	want.Update([]byte("hello"))
	assert.True(t, got.Equal(want.Digest()))
}

func TestSumAll(t *testing.T) {
	dir := t.TempDir()
	pA := filepath.Join(dir, "a.txt")
	pB := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(pA, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(pB, []byte("b"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	results := SumAll([]string{pA, pB, missing}, func() *hash.Hash { return hash.New(hash.SHA256) }, config.New())

	require.NoError(t, results[pA].Err)
	require.NoError(t, results[pB].Err)
	assert.Error(t, results[missing].Err)

	var metaErr MetadataError
	assert.True(t, errors.As(results[missing].Err, &metaErr))
}

func TestWalkMetadataError(t *testing.T) {
	fsys := mock.NewFS().AddFile("a.txt", []byte("a")).FailStat("a.txt", errors.New("boom"))

	w := &walker{fsys: fsys, h: hash.New(hash.SHA256), cfg: config.New(), readChunk: syncReadChunk}
	_, err := w.run(context.Background(), "a.txt")

	var metaErr MetadataError
	assert.True(t, errors.As(err, &metaErr))
}

func TestWalkOpenError(t *testing.T) {
	openErr := errors.New("cannot open")
	fsys := mock.NewFS().AddFile("a.txt", []byte("a")).FailOpen("a.txt", openErr)

	w := &walker{fsys: fsys, h: hash.New(hash.SHA256), cfg: config.New(), readChunk: syncReadChunk}
	_, err := w.run(context.Background(), "a.txt")

	var openedErr OpenError
	assert.True(t, errors.As(err, &openedErr))
}

func TestWalkReadDirError(t *testing.T) {
	readDirErr := errors.New("cannot list")
	fsys := mock.NewFS().AddDir("d").FailReadDir("d", readDirErr)

	w := &walker{fsys: fsys, h: hash.New(hash.SHA256), cfg: config.New(), readChunk: syncReadChunk}
	_, err := w.run(context.Background(), "d")

	var readErr ReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestWalkNetherFileNorDirectory(t *testing.T) {
	fsys := mock.NewFS().AddOther("dev/null")

	w := &walker{fsys: fsys, h: hash.New(hash.SHA256), cfg: config.New(), readChunk: syncReadChunk}
	_, err := w.run(context.Background(), "dev/null")

	var neitherErr NetherFileNorDirectoryError
	assert.True(t, errors.As(err, &neitherErr))
}

func TestWalkPathUnicodeError(t *testing.T) {
	badPath := string([]byte{0xff, 0xfe})
	fsys := mock.NewFS().AddFile(badPath, []byte("x"))

	w := &walker{fsys: fsys, h: hash.New(hash.SHA256), cfg: config.New(config.WithPaths(true)), readChunk: syncReadChunk}
	_, err := w.run(context.Background(), badPath)

	var unicodeErr PathUnicodeError
	assert.True(t, errors.As(err, &unicodeErr))
}

func TestWalkOrderingMatchesSortedNames(t *testing.T) {
	fsys := mock.NewFS().
		AddFile("root/c.txt", []byte("c")).
		AddFile("root/a.txt", []byte("a")).
		AddFile("root/b.txt", []byte("b"))

	h := hash.New(hash.SHA256)
	w := &walker{fsys: fsys, h: h, cfg: config.New(), readChunk: syncReadChunk}
	got, err := w.run(context.Background(), "root")
	require.NoError(t, err)

	want := hash.New(hash.SHA256)
	want.Update([]byte("a"))
	want.Update([]byte("b"))
	want.Update([]byte("c"))
	assert.True(t, got.Equal(want.Digest()))
}
