package lane

import "golang.org/x/sys/cpu"

// Wide4Supported reports whether the host advertises a SIMD feature set
// (SSE4.1 or AVX2) wide enough to make 4-wide lane hashing worthwhile.
// Vec4's element-wise Go arithmetic is correct regardless of this flag; it
// only exists so a caller deciding whether to fan four independent files
// into one State4 instead of four separate States can skip the overhead
// when the host would gain nothing from it. Per spec §L1 this selection may
// be a compile-time feature gate or a runtime fallback; we choose runtime
// detection once at package init, which is cheaper to test and does not
// require build-tag-specific source files per architecture.
var wide4Supported = detectWide4Supported()

func detectWide4Supported() bool {
	return cpu.X86.HasSSE41 || cpu.X86.HasAVX2
}

// Wide4Supported reports the cached detection result.
func Wide4Supported() bool { return wide4Supported }
