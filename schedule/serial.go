package schedule

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/routingcycle/routingcycle/bucketworker"
)

// Serial runs every bucket one at a time, in the order given. It exists for
// tests and for --executor=serial, where deterministic, easily-debugged
// ordering matters more than throughput. Uses the same
// errgroup.Group.SetLimit(1) idiom as multiepoch-getSignaturesForAddress.go,
// capped to one goroutine at a time and cancel-on-first-error: once a bucket
// fails, the buckets after it are not processed.
type Serial struct{}

func NewSerial() *Serial { return &Serial{} }

func (s *Serial) Name() string { return "serial" }

func (s *Serial) Dispatch(bucketPaths []string, onBucketDone func()) (bucketworker.Result, bool, error) {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(1)

	var mu sync.Mutex
	var best bucketworker.Result
	bestFound := false

	for _, path := range bucketPaths {
		path := path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			result, found, err := bucketworker.Process(path)
			if err != nil {
				return err
			}
			if onBucketDone != nil {
				onBucketDone()
			}
			if found {
				mu.Lock()
				if !bestFound || result.CycleLength > best.CycleLength {
					best, bestFound = result, true
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return bucketworker.Result{}, false, fmt.Errorf("schedule: %w", err)
	}
	return best, bestFound, nil
}
