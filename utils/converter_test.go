package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString2Bytes(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, []byte(""), String2Bytes(""))
	})

	t.Run("ascii string", func(t *testing.T) {
		assert.Equal(t, []byte("hello"), String2Bytes("hello"))
	})

	t.Run("unicode string", func(t *testing.T) {
		s := "chksum/路径"
		assert.Equal(t, []byte(s), String2Bytes(s))
	})

	t.Run("matches a conventional conversion byte for byte", func(t *testing.T) {
		for _, s := range []string{"", "a", "/var/log/app.log", "sub/dir/file.txt"} {
			assert.Equal(t, []byte(s), String2Bytes(s))
		}
	})
}

func BenchmarkString2Bytes(b *testing.B) {
	s := "sub/dir/with/several/path/segments/file.txt"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = String2Bytes(s)
	}
}
