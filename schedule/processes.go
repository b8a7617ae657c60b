package schedule

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/routingcycle/routingcycle/bucketworker"
)

// bucketWorkerFlag is the hidden subcommand name main.go registers; a child
// process is invoked as `<selfPath> bucket-worker`.
const bucketWorkerFlag = "bucket-worker"

// workerBatch is one line of the child's stdin contract.
type workerBatch struct {
	BucketPaths []string `json:"bucket_paths"`
}

// workerResult is one line of the child's stdout contract. An empty struct
// (zero value, all fields omitted by the child) means no cycle was found in
// that batch.
type workerResult struct {
	ClaimID     string `json:"claim_id,omitempty"`
	StatusCode  string `json:"status_code,omitempty"`
	CycleLength int    `json:"length,omitempty"`
}

// ProcessPool dispatches bucket tasks to isolated child processes, each a
// re-exec of the running binary under the hidden bucket-worker
// subcommand, communicating over stdin/stdout NDJSON. This is the
// message-passing substitute for the threaded pool's shared memory.
type ProcessPool struct {
	numWorkers int
	batchSize  int
	selfPath   string
}

// NewProcessPool returns a ProcessPool with numWorkers children, each fed
// batches of batchSize bucket paths at a time. selfPath is the executable
// to re-exec (main.go passes os.Executable(), falling back to os.Args[0]).
func NewProcessPool(numWorkers, batchSize int, selfPath string) *ProcessPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if batchSize <= 0 {
		batchSize = 16
	}
	return &ProcessPool{numWorkers: numWorkers, batchSize: batchSize, selfPath: selfPath}
}

func (p *ProcessPool) Name() string { return "processes" }

func (p *ProcessPool) Dispatch(bucketPaths []string, onBucketDone func()) (bucketworker.Result, bool, error) {
	if len(bucketPaths) == 0 {
		return bucketworker.Result{}, false, nil
	}

	batches := batchPaths(bucketPaths, p.batchSize)
	numWorkers := p.numWorkers
	if numWorkers > len(batches) {
		numWorkers = len(batches)
	}

	batchChan := make(chan []string, len(batches))
	for _, b := range batches {
		batchChan <- b
	}
	close(batchChan)

	outcomes := make(chan workerOutcome, len(batches))
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runChild(batchChan, outcomes, onBucketDone)
		}()
	}
	wg.Wait()
	close(outcomes)

	return reduce(outcomes)
}

// runChild owns one child process for the lifetime of batchChan: it drains
// batches, sends each as one NDJSON line on the child's stdin, and reads
// back one NDJSON result line per batch.
func (p *ProcessPool) runChild(batchChan <-chan []string, outcomes chan<- workerOutcome, onBucketDone func()) {
	cmd := exec.Command(p.selfPath, bucketWorkerFlag)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		outcomes <- workerOutcome{err: fmt.Errorf("schedule: child stdin: %w", err)}
		return
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		outcomes <- workerOutcome{err: fmt.Errorf("schedule: child stdout: %w", err)}
		return
	}
	if err := cmd.Start(); err != nil {
		outcomes <- workerOutcome{err: fmt.Errorf("schedule: child start: %w", err)}
		return
	}

	reader := bufio.NewReaderSize(stdout, 1<<16)
	for batch := range batchChan {
		line, err := jsoniter.Marshal(workerBatch{BucketPaths: batch})
		if err != nil {
			outcomes <- workerOutcome{err: fmt.Errorf("schedule: encode batch: %w", err)}
			continue
		}
		if _, err := stdin.Write(append(line, '\n')); err != nil {
			outcomes <- workerOutcome{err: fmt.Errorf("schedule: write batch: %w", err)}
			continue
		}

		respLine, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			outcomes <- workerOutcome{err: fmt.Errorf("schedule: read result: %w", err)}
			continue
		}
		if len(respLine) == 0 {
			outcomes <- workerOutcome{err: fmt.Errorf("schedule: child closed stdout early")}
			continue
		}

		var result workerResult
		if err := jsoniter.Unmarshal(respLine, &result); err != nil {
			outcomes <- workerOutcome{err: fmt.Errorf("schedule: decode result: %w", err)}
			continue
		}
		if result.ClaimID == "" && result.StatusCode == "" && result.CycleLength == 0 {
			outcomes <- workerOutcome{found: false}
		} else {
			outcomes <- workerOutcome{
				found: true,
				result: bucketworker.Result{
					ClaimID:     result.ClaimID,
					StatusCode:  result.StatusCode,
					CycleLength: result.CycleLength,
				},
			}
		}
		if onBucketDone != nil {
			for range batch {
				onBucketDone()
			}
		}
	}

	stdin.Close()
	_ = cmd.Wait()
}

func batchPaths(paths []string, size int) [][]string {
	var batches [][]string
	for i := 0; i < len(paths); i += size {
		end := i + size
		if end > len(paths) {
			end = len(paths)
		}
		batches = append(batches, paths[i:end])
	}
	return batches
}

// RunBucketWorker implements the child side of the bucket-worker
// contract: read NDJSON batches from r, process each bucket, write one
// NDJSON result line per batch to w. Exported so main.go's hidden
// subcommand can call it directly.
func RunBucketWorker(r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, 1<<16)
	writer := bufio.NewWriterSize(w, 1<<16)
	defer writer.Flush()

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("bucket-worker: read batch: %w", err)
		}

		var batch workerBatch
		if err := jsoniter.Unmarshal(line, &batch); err != nil {
			return fmt.Errorf("bucket-worker: decode batch: %w", err)
		}

		var best workerResult
		bestFound := false
		for _, path := range batch.BucketPaths {
			result, found, err := bucketworker.Process(path)
			if err != nil {
				return fmt.Errorf("bucket-worker: %w", err)
			}
			if !found {
				continue
			}
			if !bestFound || result.CycleLength > best.CycleLength {
				best = workerResult{ClaimID: result.ClaimID, StatusCode: result.StatusCode, CycleLength: result.CycleLength}
				bestFound = true
			}
		}

		encoded, err := jsoniter.Marshal(best)
		if err != nil {
			return fmt.Errorf("bucket-worker: encode result: %w", err)
		}
		if _, err := writer.Write(append(encoded, '\n')); err != nil {
			return fmt.Errorf("bucket-worker: write result: %w", err)
		}
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("bucket-worker: flush: %w", err)
		}

		if err == io.EOF {
			return nil
		}
	}
}
