// Command gen-preflop-cache builds the heads-up preflop equity cache and
// writes it to disk in the binary format internal/preflopcache reads back.
// It is the sibling of the teacher's cmd/gen-preflop, adapted from
// generating a Go source file to generating the binary blob spec.md's
// wire contract actually demands.
//
//go:generate go run . -output=preflop.bin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/preflopcache"
)

func main() {
	output := flag.String("output", "preflop.bin", "output path for the binary cache")
	flag.Parse()

	logger := log.New(os.Stderr)

	cache, err := preflopcache.Build()
	if err != nil {
		logger.Fatal("failed to build preflop cache", "error", err)
	}

	data := cache.Dump()
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		logger.Fatal("failed to write cache file", "error", err, "path", *output)
	}

	fmt.Fprintf(os.Stderr, "wrote %d entries (%d bytes) to %s\n", cache.Len(), len(data), *output)
}
