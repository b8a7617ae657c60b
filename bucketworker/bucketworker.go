// Package bucketworker composes graph construction and cycle detection
// over one bucket file, in the style of gsfa/worker.go: a thin function
// that wires lower components together and returns a plain value, touching
// no global state.
package bucketworker

import (
	"fmt"
	"time"

	"github.com/routingcycle/routingcycle/cycle"
	"github.com/routingcycle/routingcycle/graph"
	"github.com/routingcycle/routingcycle/metrics"
)

// Result is a candidate winner discovered in one bucket.
type Result struct {
	ClaimID     string
	StatusCode  string
	CycleLength int
}

// Process builds every per-key graph in bucketPath and returns the bucket's
// best (longest-cycle) result, or found=false if every per-key graph in
// the bucket is acyclic.
func Process(bucketPath string) (result Result, found bool, err error) {
	start := time.Now()
	defer func() {
		metrics.BucketProcessDuration.Observe(time.Since(start).Seconds())
		metrics.BucketsProcessed.Inc()
	}()

	graphs, err := graph.Build(bucketPath)
	if err != nil {
		return Result{}, false, fmt.Errorf("bucketworker: %w", err)
	}

	var best Result
	bestFound := false
	for key, g := range graphs {
		length, ok := cycle.Longest(g)
		if !ok {
			continue
		}
		if !bestFound || length > best.CycleLength {
			best = Result{ClaimID: key.ClaimID, StatusCode: key.StatusCode, CycleLength: length}
			bestFound = true
		}
	}

	return best, bestFound, nil
}
