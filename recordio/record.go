// Package recordio parses the pipe-separated routing-claim lines shared by
// the partitioner and the per-key graph builder. It never allocates a
// string: every field stays a []byte slice into the caller's buffer, so the
// hot path that sees tens of millions of lines never pays for UTF-8
// decoding it doesn't need.
package recordio

import "bytes"

// Record is a single parsed input line. Source, Destination, ClaimID and
// StatusCode are slices into the line the caller passed to Parse; the
// caller owns the backing array and must copy out whatever it needs to
// keep past the next Parse call.
type Record struct {
	Source      []byte
	Destination []byte
	ClaimID     []byte
	StatusCode  []byte
}

// Key returns the (claim_id, status_code) grouping key as a byte slice
// pair. Keys are compared and hashed as raw bytes.
func (r Record) Key() (claimID, statusCode []byte) {
	return r.ClaimID, r.StatusCode
}

// Parse splits one line (with any trailing \r and \n already stripped) on
// "|" into exactly four fields. It reports ok=false for lines that don't
// yield exactly four fields, per the malformed-line policy: callers skip
// those silently.
func Parse(line []byte) (rec Record, ok bool) {
	// source|destination|claim_id|status_code — three splits, four fields.
	i1 := bytes.IndexByte(line, '|')
	if i1 < 0 {
		return Record{}, false
	}
	rest := line[i1+1:]
	i2 := bytes.IndexByte(rest, '|')
	if i2 < 0 {
		return Record{}, false
	}
	rest2 := rest[i2+1:]
	i3 := bytes.IndexByte(rest2, '|')
	if i3 < 0 {
		return Record{}, false
	}
	// A fourth "|" inside the remainder is not a new split point: splitting
	// stops at 3, so everything after the third "|" is the status_code
	// field, pipes and all.
	statusCode := rest2[i3+1:]
	return Record{
		Source:      line[:i1],
		Destination: rest[:i2],
		ClaimID:     rest2[:i3],
		StatusCode:  statusCode,
	}, true
}

// TrimTerminator strips a trailing "\r\n" or "\n" from a raw line.
func TrimTerminator(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line
}
