// Command routingcycle-bench generates a synthetic input file and drives a
// full routingcycle run against it, reporting generate/search timings and
// the input size. A standalone flag-based main, matching routingcycle-gen and
// the accum/carreader demo binaries rather than the main CLI surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/routingcycle/routingcycle/bench"
	"github.com/routingcycle/routingcycle/gen"
	"github.com/routingcycle/routingcycle/schedule"
)

func main() {
	numKeys := flag.Int("num-keys", gen.DefaultOptions.NumKeys, "number of distinct (claim_id, status_code) keys")
	nodesPerKey := flag.Int("nodes-per-key", gen.DefaultOptions.NodesPerKey, "distinct node names per key")
	edgesPerKey := flag.Int("edges-per-key", gen.DefaultOptions.EdgesPerKey, "edges generated per key")
	cycleFraction := flag.Float64("cycle-fraction", gen.DefaultOptions.CycleFraction, "fraction of edges biased toward closing a cycle, in [0,1]")
	seed := flag.Int64("seed", 1, "seed for the random source")
	executor := flag.String("executor", "auto", "one of auto, threads, processes, serial")
	flag.Parse()

	opts := gen.Options{
		NumKeys:       *numKeys,
		NodesPerKey:   *nodesPerKey,
		EdgesPerKey:   *edgesPerKey,
		CycleFraction: *cycleFraction,
	}

	report, err := bench.Run(opts, schedule.Kind(*executor), *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "routingcycle-bench: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(report.String())
}
