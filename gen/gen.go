// Package gen produces synthetic routing-claim input files for manual
// testing and benchmarking, grounded on gsfa/worker.go's workerDemoLoad:
// a loop generating random keys/signatures and pushing them through the
// real write path. Here that becomes random (source, destination,
// claim_id, status_code) tuples, written directly as pipe-delimited lines.
package gen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
)

// Options controls the shape of a generated input file.
type Options struct {
	// NumKeys is the number of distinct (claim_id, status_code) groups.
	NumKeys int
	// NodesPerKey is how many distinct source/destination node names each
	// key's subgraph draws from.
	NodesPerKey int
	// EdgesPerKey is how many edges each key's subgraph gets.
	EdgesPerKey int
	// CycleFraction, in [0, 1], is the probability that an edge's
	// destination is drawn from the key's NodesPerKey node pool (so it can
	// close a cycle) rather than being a fresh dead-end node.
	CycleFraction float64
}

// DefaultOptions mirrors the scale workerDemoLoad uses for its demo index:
// enough keys and edges to be a meaningful smoke test without being slow.
var DefaultOptions = Options{
	NumKeys:       1000,
	NodesPerKey:   8,
	EdgesPerKey:   12,
	CycleFraction: 0.3,
}

// Write generates opts-shaped synthetic records, deterministically from
// rng, and writes them as pipe-delimited lines to w.
func Write(w io.Writer, opts Options, rng *rand.Rand) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	defer bw.Flush()

	for k := 0; k < opts.NumKeys; k++ {
		claimID, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return fmt.Errorf("gen: generate claim id: %w", err)
		}
		statusCode := fmt.Sprintf("S%d", rng.Intn(5))

		nodes := make([]string, opts.NodesPerKey)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("N%d-%d", k, i)
		}

		for e := 0; e < opts.EdgesPerKey; e++ {
			source := nodes[rng.Intn(len(nodes))]
			var destination string
			if rng.Float64() < opts.CycleFraction {
				destination = nodes[rng.Intn(len(nodes))]
			} else {
				destination = fmt.Sprintf("N%d-extra%d", k, e)
			}
			line := fmt.Sprintf("%s|%s|%s|%s\n", source, destination, claimID.String(), statusCode)
			if _, err := bw.WriteString(line); err != nil {
				return fmt.Errorf("gen: write record: %w", err)
			}
		}
	}

	return bw.Flush()
}
