// Package filebuf loads a file's contents for reading, choosing between
// a plain heap read and a memory mapping based on size. A mapped buffer
// avoids copying large inputs; the private variant additionally lets
// the caller scribble on the bytes without the edits ever reaching the
// file.
package filebuf

import (
	"fmt"
	"io"
	"os"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/mapping"
)

// mapThreshold is the size at or above which a file is mapped rather
// than read. Small files are cheaper to read outright than to map.
const mapThreshold = 16 * 1024

// Buffer holds a file's contents. Close releases the mapping when one
// backs the bytes; closing a heap-backed buffer is a no-op.
type Buffer struct {
	data   []byte
	region *mapping.Region
}

// options for Open.
type options struct {
	writable    bool
	forceRead   bool
	mapSmallest int64
}

// Option adjusts how a file is opened.
type Option func(*options)

// WithPrivateCopy makes the returned bytes writable. Mutations stay in
// memory and never reach the file.
func WithPrivateCopy() Option {
	return func(o *options) { o.writable = true }
}

// WithoutMapping forces a heap read regardless of size, for files whose
// backing storage may change or vanish while the buffer is alive.
func WithoutMapping() Option {
	return func(o *options) { o.forceRead = true }
}

// Open loads the file at path.
func Open(path string, opts ...Option) (*Buffer, error) {
	o := options{mapSmallest: mapThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fsys.Classify(err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fsys.Classify(err)
	}

	if !o.forceRead && info.Size() >= o.mapSmallest {
		mode := mapping.ReadOnly
		if o.writable {
			mode = mapping.Private
		}
		region, err := mapping.NewRegion(file, mode, 0, 0)
		if err == nil {
			return &Buffer{data: region.Bytes(), region: region}, nil
		}
		// Mapping can fail on filesystems without mmap support; the
		// heap read below covers those.
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, fsys.Classify(err))
	}
	return &Buffer{data: data}, nil
}

// Bytes returns the file contents. The slice is valid until Close.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Mapped reports whether the contents are backed by a mapping rather
// than the heap.
func (b *Buffer) Mapped() bool {
	return b.region != nil
}

// Close releases the backing mapping, if any. Idempotent.
func (b *Buffer) Close() error {
	b.data = nil
	if b.region == nil {
		return nil
	}
	region := b.region
	b.region = nil
	return region.Close()
}
