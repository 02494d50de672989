// Package mapping exposes a file's bytes as a window in the process
// address space, in one of three access modes.
package mapping

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/deploymenttheory/go-pathkit/internal/fatal"
	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
)

// Mode selects how the mapped bytes behave.
type Mode int

const (
	// ReadOnly maps the file for reading only.
	ReadOnly Mode = iota
	// ReadWrite maps shared: writes reach the underlying file and are
	// visible to every other mapper. Callers owning a ReadWrite region
	// are assumed to be its sole writer; no locking is provided.
	ReadWrite
	// Private maps copy-on-write: writes stay in this mapping and never
	// reach the file.
	Private
)

// File is the descriptor a region can be built from. *os.File satisfies
// it; purely in-memory file handles do not, and cannot be mapped.
type File interface {
	Fd() uintptr
	Stat() (fs.FileInfo, error)
	Truncate(size int64) error
}

// Region owns exactly one mapping. It is not safe for concurrent
// mutation and must not be copied; release it with Close.
type Region struct {
	data   []byte
	length int64
	mode   Mode
	fatal  interfaces.FatalHandler

	// view is the platform mapping handle where one exists beyond the
	// byte slice itself. Zero on unix.
	view uintptr
}

// Option adjusts region construction.
type Option func(*Region)

// WithFatalHandler substitutes the handler invoked on API misuse.
func WithFatalHandler(handler interfaces.FatalHandler) Option {
	return func(r *Region) { r.fatal = handler }
}

// NewRegion maps length bytes of file starting at offset. A zero length
// adopts the file's current size. When the file is smaller than a
// requested nonzero length it is grown first, so the caller can write
// into the full extent; growth persists even if the mapping then fails,
// since it is non-destructive. An empty file with no requested length
// yields an empty region without a mapping, since zero bytes cannot be
// mapped.
func NewRegion(file File, mode Mode, length, offset int64, options ...Option) (*Region, error) {
	if length < 0 || offset < 0 || uint64(length) > math.MaxInt {
		return nil, fmt.Errorf("mapping length %d offset %d: %w", length, offset, fsys.ErrInvalidArgument)
	}

	region := &Region{mode: mode, fatal: fatal.Exit}
	for _, option := range options {
		option(region)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("sizing file before mapping: %w", fsys.Classify(err))
	}
	fileSize := info.Size()

	if length == 0 {
		length = fileSize
	} else if fileSize < length {
		if err := file.Truncate(length); err != nil {
			return nil, fmt.Errorf("growing file to %d bytes: %w", length, fsys.Classify(err))
		}
	}
	region.length = length

	if length == 0 {
		region.data = []byte{}
		return region, nil
	}

	if err := region.mapFile(file, length, offset); err != nil {
		return nil, fmt.Errorf("mapping %d bytes: %w", length, fsys.Classify(err))
	}
	return region, nil
}

// Bytes returns the mapped window. The slice is only valid until Close;
// asking a released region for data is a programming error.
func (r *Region) Bytes() []byte {
	if r.data == nil {
		r.fatal.Fatal("mapping: Bytes called on a released region")
	}
	return r.data
}

// Size returns the length of the mapped window in bytes.
func (r *Region) Size() int64 {
	return r.length
}

// AccessMode returns the mode the region was mapped with.
func (r *Region) AccessMode() Mode {
	return r.mode
}

// Close unmaps the region. Flushing dirty pages becomes the operating
// system's responsibility. Close is idempotent; a region whose mapping
// was already released is a no-op.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	if r.length == 0 {
		// Empty regions never held a mapping.
		r.data = nil
		return nil
	}
	err := r.unmap()
	r.data = nil
	r.view = 0
	if err != nil {
		return fmt.Errorf("unmapping region: %w", err)
	}
	return nil
}
