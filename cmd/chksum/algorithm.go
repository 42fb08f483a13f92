package main

import (
	"fmt"
	"strings"

	"github.com/dromara/chksum/hash"
)

// parseAlgorithm maps the §6 alias set onto a hash.Algorithm. Input is
// normalized (uppercased, hyphens and spaces dropped) before matching, so "SHA256",
// "SHA-256" and "SHA2 256" all resolve the same way.
func parseAlgorithm(name string) (hash.Algorithm, error) {
	norm := strings.ToUpper(name)
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, " ", "")
	switch norm {
	case "MD5":
		return hash.MD5, nil
	case "SHA1":
		return hash.SHA1, nil
	case "SHA224", "SHA2224":
		return hash.SHA224, nil
	case "SHA256", "SHA2256":
		return hash.SHA256, nil
	case "SHA384", "SHA2384":
		return hash.SHA384, nil
	case "SHA512", "SHA2512":
		return hash.SHA512, nil
	default:
		return 0, fmt.Errorf("chksum: unknown hash algorithm %q", name)
	}
}
