package schedule

import (
	"context"
	"fmt"
	"runtime"

	concurrently "github.com/tejzpr/ordered-concurrently/v3"

	"github.com/routingcycle/routingcycle/bucketworker"
)

// ThreadPool dispatches bucket tasks across a fixed pool of goroutines
// sharing the process address space, using the same tejzpr/ordered-concurrently
// pattern as cmd-x-index-sig-to-epoch.go: a WorkFunction per task fed into
// concurrently.Process, consumed from its output channel.
type ThreadPool struct {
	poolSize int
}

// NewThreadPool returns a ThreadPool sized to poolSize goroutines. A
// poolSize <= 0 defaults to runtime.NumCPU().
func NewThreadPool(poolSize int) *ThreadPool {
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	return &ThreadPool{poolSize: poolSize}
}

func (t *ThreadPool) Name() string { return "threads" }

type bucketWork struct {
	path string
}

// Run implements concurrently.WorkFunction.
func (w bucketWork) Run(ctx context.Context) interface{} {
	result, found, err := bucketworker.Process(w.path)
	return workerOutcome{result: result, found: found, err: err}
}

func (t *ThreadPool) Dispatch(bucketPaths []string, onBucketDone func()) (bucketworker.Result, bool, error) {
	if len(bucketPaths) == 0 {
		return bucketworker.Result{}, false, nil
	}

	inputChan := make(chan concurrently.WorkFunction, len(bucketPaths))
	outputChan := concurrently.Process(context.Background(), inputChan, &concurrently.Options{
		PoolSize:         t.poolSize,
		OutChannelBuffer: len(bucketPaths),
	})

	for _, path := range bucketPaths {
		inputChan <- bucketWork{path: path}
	}
	close(inputChan)

	outcomes := make(chan workerOutcome, len(bucketPaths))
	for out := range outputChan {
		oc, ok := out.Value.(workerOutcome)
		if !ok {
			outcomes <- workerOutcome{err: fmt.Errorf("schedule: unexpected worker result type %T", out.Value)}
			continue
		}
		outcomes <- oc
		if onBucketDone != nil {
			onBucketDone()
		}
	}
	close(outcomes)

	return reduce(outcomes)
}
