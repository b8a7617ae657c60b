// Package schedule selects a bucket-pass executor and reduces the
// per-bucket results it produces down to one global winner.
//
// Go's runtime always gives goroutines shared memory, so a goroutine pool
// is the practical default; an isolated-heap mode is implemented as a pool
// of re-exec'd child processes for environments that want a hard memory
// boundary between workers (or that pin GOMAXPROCS=1, treated here as
// cooperative single-threaded). Both, plus a plain serial loop used for
// testing, share the Dispatch contract below.
package schedule

import (
	"os"
	"runtime"
	"strings"

	"github.com/routingcycle/routingcycle/bucketworker"
)

// Executor submits a set of bucket tasks, receives results, and reduces
// them to one winner.
type Executor interface {
	// Dispatch runs bucketworker.Process over every path in bucketPaths
	// and reduces the results to the single longest-cycle winner.
	// onBucketDone, if non-nil, is called once per bucket as it finishes,
	// in no particular order, purely for progress reporting.
	Dispatch(bucketPaths []string, onBucketDone func()) (bucketworker.Result, bool, error)
	// Name identifies the executor for logging/metrics.
	Name() string
}

// Kind names an executor selection.
type Kind string

const (
	KindAuto      Kind = "auto"
	KindThreads   Kind = "threads"
	KindProcesses Kind = "processes"
	KindSerial    Kind = "serial"
)

// Select resolves a Kind (honoring KindAuto) to a concrete Executor.
// override, when non-empty, takes precedence over the RC_EXECUTOR
// environment variable; both take precedence over GOMAXPROCS-based
// auto-detection.
func Select(override Kind, numWorkers int, processBatchSize int, selfPath string) Executor {
	kind := resolveKind(override)
	switch kind {
	case KindThreads:
		return NewThreadPool(numWorkers)
	case KindProcesses:
		return NewProcessPool(numWorkers, processBatchSize, selfPath)
	case KindSerial:
		return NewSerial()
	default:
		if runtime.GOMAXPROCS(0) <= 1 {
			return NewSerial()
		}
		return NewThreadPool(numWorkers)
	}
}

func resolveKind(override Kind) Kind {
	if override != "" && override != KindAuto {
		return override
	}
	if env := strings.ToLower(strings.TrimSpace(os.Getenv("RC_EXECUTOR"))); env != "" {
		switch Kind(env) {
		case KindThreads, KindProcesses, KindSerial:
			return Kind(env)
		}
	}
	return KindAuto
}

// reduce folds a stream of (result, found) pairs into the single maximum
// by CycleLength. Ties resolve to whichever arrived first. Arrival order is
// not fixed (bucketworker.Process ranges over a map of keys, and process-pool
// children report in the order they finish), so between equal-length cycles
// the reported key can differ from run to run and between executors.
func reduce(results <-chan workerOutcome) (bucketworker.Result, bool, error) {
	var best bucketworker.Result
	bestFound := false
	for out := range results {
		if out.err != nil {
			return bucketworker.Result{}, false, out.err
		}
		if !out.found {
			continue
		}
		if !bestFound || out.result.CycleLength > best.CycleLength {
			best, bestFound = out.result, true
		}
	}
	return best, bestFound, nil
}

type workerOutcome struct {
	result bucketworker.Result
	found  bool
	err    error
}
