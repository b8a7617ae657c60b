// Package partition streams the input file once and routes each record to
// its bucket, keyed by a stable hash of (claim_id, status_code). It
// mirrors the sharding scheme in package preindex, which shards (key,
// offset) pairs across temporary files the same way (xxhash of the key,
// masked down to a shard count); this version swaps preindex's
// unconditional per-shard in-memory buffer for the bounded-handle LRU in
// package bucket, to keep an explicit cap on open handles rather than one
// handle per shard.
package partition

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/routingcycle/routingcycle/bucket"
	"github.com/routingcycle/routingcycle/metrics"
	"github.com/routingcycle/routingcycle/recordio"
)

// Result is the outcome of partitioning one input file.
type Result struct {
	// NonEmptyBuckets is the sorted list of bucket indices that received
	// at least one record.
	NonEmptyBuckets []int
	RecordsRouted   int64
	RecordsSkipped  int64
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// BucketIndex computes the bucket a (claim_id, status_code) key routes to.
// numBuckets must be a power of two; the index is h & (numBuckets-1).
func BucketIndex(claimID, statusCode []byte, numBuckets int) int {
	h := xxhash.New()
	h.Write(claimID)
	h.Write([]byte{'|'})
	h.Write(statusCode)
	return int(h.Sum64() & uint64(numBuckets-1))
}

// Partition reads inputPath as a stream of LF- or CRLF-terminated lines,
// parses each as a recordio.Record, and appends well-formed lines
// (original bytes, freshly newline-terminated) to their target bucket
// file via w. It requires numBuckets to be a power of two. A write
// failure on any bucket handle is a fatal I/O failure and is returned
// immediately.
func Partition(inputPath string, numBuckets int, w *bucket.Writer) (Result, error) {
	if !IsPowerOfTwo(numBuckets) {
		return Result{}, fmt.Errorf("partition: numBuckets %d is not a power of two", numBuckets)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("open input %s: %w", inputPath, err)
	}
	defer f.Close()

	seen := make(map[int]bool)
	var res Result

	reader := bufio.NewReaderSize(f, 1<<20)
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			trimmed := recordio.TrimTerminator(line)
			if len(trimmed) > 0 {
				rec, ok := recordio.Parse(trimmed)
				if !ok {
					res.RecordsSkipped++
					metrics.RecordsMalformed.Inc()
				} else {
					idx := BucketIndex(rec.ClaimID, rec.StatusCode, numBuckets)
					if err := w.Write(idx, trimmed); err != nil {
						return Result{}, fmt.Errorf("partition: %w", err)
					}
					seen[idx] = true
					res.RecordsRouted++
					metrics.RecordsPartitioned.Inc()
					metrics.BucketHandlesOpen.Set(float64(w.Len()))
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return Result{}, fmt.Errorf("read input %s: %w", inputPath, readErr)
		}
	}

	if err := w.CloseAll(); err != nil {
		return Result{}, fmt.Errorf("close buckets: %w", err)
	}

	res.NonEmptyBuckets = make([]int, 0, len(seen))
	for idx := range seen {
		res.NonEmptyBuckets = append(res.NonEmptyBuckets, idx)
	}
	sort.Ints(res.NonEmptyBuckets)
	return res, nil
}
