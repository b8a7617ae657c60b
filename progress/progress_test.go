package progress

import (
	"io"
	"testing"
)

func TestNewAndIncrementDoesNotPanic(t *testing.T) {
	bar := New(io.Discard, "test", 3)
	bar.Increment(1)
	bar.Increment(2)
	bar.Done()
}
