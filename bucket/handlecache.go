// Package bucket implements the bounded-memory on-disk bucket writer: an
// LRU cache of append-mode file handles, plus the bucket-file naming
// convention shared by the partitioner and every downstream reader.
//
// The design mirrors gsfa/store/filecache (an LRU of *os.File keyed by
// path, container/list for eviction order), simplified to the
// single-writer contract the partitioner actually needs: one goroutine,
// append-only, no reference counting.
package bucket

import (
	"container/list"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultHandleCacheSize is the default cap on simultaneously open bucket
// file handles.
const DefaultHandleCacheSize = 128

// FileName returns the on-disk name of bucket i under dir.
func FileName(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("bucket_%d.bin", index))
}

type entry struct {
	index  int
	handle *os.File
}

// Writer is a single-threaded LRU cache of open append-mode bucket file
// handles. Concurrent callers are not supported.
type Writer struct {
	dir      string
	capacity int
	ll       *list.List
	elems    map[int]*list.Element
}

// NewWriter creates a Writer rooted at dir with the given handle-cache
// capacity. A capacity <= 0 is treated as DefaultHandleCacheSize.
func NewWriter(dir string, capacity int) *Writer {
	if capacity <= 0 {
		capacity = DefaultHandleCacheSize
	}
	return &Writer{
		dir:      dir,
		capacity: capacity,
		ll:       list.New(),
		elems:    make(map[int]*list.Element),
	}
}

// Write appends line followed by a single '\n' to bucket index, opening
// the bucket file (evicting the LRU handle if the cache is full) as
// needed.
func (w *Writer) Write(index int, line []byte) error {
	f, err := w.handle(index)
	if err != nil {
		return err
	}
	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("write bucket %d: %w", index, err)
	}
	if _, err := f.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("write bucket %d: %w", index, err)
	}
	return nil
}

func (w *Writer) handle(index int) (*os.File, error) {
	if elem, ok := w.elems[index]; ok {
		w.ll.MoveToFront(elem)
		return elem.Value.(*entry).handle, nil
	}

	if w.ll.Len() >= w.capacity {
		w.evictOldest()
	}

	path := FileName(w.dir, index)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open bucket %d at %s: %w", index, path, err)
	}

	elem := w.ll.PushFront(&entry{index: index, handle: f})
	w.elems[index] = elem
	return f, nil
}

func (w *Writer) evictOldest() {
	oldest := w.ll.Back()
	if oldest == nil {
		return
	}
	ent := oldest.Value.(*entry)
	ent.handle.Close()
	delete(w.elems, ent.index)
	w.ll.Remove(oldest)
}

// Len reports how many handles are currently open.
func (w *Writer) Len() int {
	return w.ll.Len()
}

// CloseAll flushes (via Close, these are unbuffered os.File handles) and
// closes every open handle. Every byte accepted by Write is durable in its
// target bucket file once CloseAll returns without error.
func (w *Writer) CloseAll() error {
	var firstErr error
	for e := w.ll.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry)
		if err := ent.handle.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close bucket %d: %w", ent.index, err)
		}
	}
	w.ll.Init()
	w.elems = make(map[int]*list.Element)
	return firstErr
}
