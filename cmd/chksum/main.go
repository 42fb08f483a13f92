// Command chksum hashes one or more files or directories, printing one
// line of lowercase-hex digest per successful path. This is the §6 CLI
// collaborator: argument parsing and output formatting live here, never in
// the core library.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dromara/chksum/chksum"
	"github.com/dromara/chksum/config"
	"github.com/dromara/chksum/hash"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("chksum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var algoName string
	var chunkSizeStr string
	var withPaths bool
	fs.StringVar(&algoName, "H", "SHA256", "hash algorithm")
	fs.StringVar(&algoName, "hash", "SHA256", "hash algorithm")
	fs.StringVar(&chunkSizeStr, "s", "", "chunk size (K/M/G 1024-based suffix)")
	fs.StringVar(&chunkSizeStr, "chunk-size", "", "chunk size (K/M/G 1024-based suffix)")
	fs.BoolVar(&withPaths, "with-paths", false, "mix visited path names into the digest")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "chksum: no paths given")
		return 2
	}

	algo, err := parseAlgorithm(algoName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	opts := []config.Option{config.WithPaths(withPaths)}
	if chunkSizeStr != "" {
		n, err := parseChunkSize(chunkSizeStr)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		opts = append(opts, config.WithChunkSize(n))
	}
	cfg := config.New(opts...)

	results := chksum.SumAll(paths, func() *hash.Hash { return hash.New(algo) }, cfg)

	exitCode := 0
	for _, p := range paths {
		r := results[p]
		if r.Err != nil {
			fmt.Fprintf(stderr, "chksum: %s: %v\n", p, r.Err)
			exitCode = 1
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", r.Digest.LowerHex(), p)
	}
	return exitCode
}
