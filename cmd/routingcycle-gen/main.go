// Command routingcycle-gen writes a synthetic routing-claim input file,
// for manual testing and benchmarking of the main routingcycle binary. A
// standalone flag-based main, in the style of accum/demo/main.go and
// carreader/demo/main.go, rather than a urfave/cli subcommand, since it's
// a throwaway tool and not part of the primary CLI surface.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/routingcycle/routingcycle/gen"
)

func main() {
	out := flag.String("out", "", "path to write the generated input file to (required)")
	numKeys := flag.Int("num-keys", gen.DefaultOptions.NumKeys, "number of distinct (claim_id, status_code) keys")
	nodesPerKey := flag.Int("nodes-per-key", gen.DefaultOptions.NodesPerKey, "distinct node names per key")
	edgesPerKey := flag.Int("edges-per-key", gen.DefaultOptions.EdgesPerKey, "edges generated per key")
	cycleFraction := flag.Float64("cycle-fraction", gen.DefaultOptions.CycleFraction, "fraction of edges biased toward closing a cycle, in [0,1]")
	seed := flag.Int64("seed", 1, "seed for the random source; fixed seed gives reproducible output")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "routingcycle-gen: -out is required")
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "routingcycle-gen: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	opts := gen.Options{
		NumKeys:       *numKeys,
		NodesPerKey:   *nodesPerKey,
		EdgesPerKey:   *edgesPerKey,
		CycleFraction: *cycleFraction,
	}

	if err := gen.Write(f, opts, rand.New(rand.NewSource(*seed))); err != nil {
		fmt.Fprintf(os.Stderr, "routingcycle-gen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote synthetic input to %s\n", *out)
}
