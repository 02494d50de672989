// Package output implements crash-safe whole-file production: bytes are
// written through a memory mapping of a hidden temporary file and
// published with a single atomic rename, so a concurrent reader of the
// final path sees either the previous state or the fully committed new
// state, never anything partial.
package output

import (
	"fmt"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/mapping"
	"github.com/deploymenttheory/go-pathkit/internal/tempfiles"
	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// KeepSize passed to Commit leaves the file at its created size.
const KeepSize int64 = -1

// Buffer is an in-progress file. While it lives, the content and
// existence of the final path are undefined: creating a Buffer for an
// existing file removes that file immediately.
type Buffer struct {
	fs        interfaces.FileSystem
	region    *mapping.Region
	finalPath string
	tempPath  string
	size      int64
	committed bool
	discarded bool
}

// Create allocates a buffer of size bytes that will become the file at
// finalPath when committed. The final path must currently be a regular
// file or nothing at all; anything else cannot be replaced by a mapped
// temporary. When executable is set the resulting file carries execute
// permission.
func Create(filesystem interfaces.FileSystem, allocator *tempfiles.Allocator, finalPath string, size int64, executable bool) (*Buffer, error) {
	status, err := filesystem.Status(finalPath)
	switch {
	case err == nil && status.IsRegularFile():
		// Will be replaced on commit.
	case fsys.IsNotFound(err):
		// Will be created on commit.
	case err != nil:
		return nil, err
	default:
		return nil, fmt.Errorf("cannot buffer output over %s entity %q: %w",
			status.Type, finalPath, fsys.ErrPermission)
	}

	if _, err := filesystem.Remove(finalPath); err != nil {
		return nil, err
	}

	perm := types.AllRead | types.AllWrite
	if executable {
		perm |= types.AllExe
	}

	// The temporary lives in the final path's directory so the commit
	// rename never crosses a filesystem boundary.
	file, tempPath, err := allocator.CreateUniqueFile(finalPath+".tmp%%%%%%%", perm)
	if err != nil {
		return nil, err
	}

	mappable, ok := file.(mapping.File)
	if !ok {
		file.Close()
		filesystem.Remove(tempPath)
		return nil, fmt.Errorf("backend file %q cannot be memory mapped: %w",
			tempPath, fsys.ErrInvalidArgument)
	}

	region, err := mapping.NewRegion(mappable, mapping.ReadWrite, size, 0)
	// The mapping outlives the descriptor either way.
	file.Close()
	if err != nil {
		filesystem.Remove(tempPath)
		return nil, err
	}

	return &Buffer{
		fs:        filesystem,
		region:    region,
		finalPath: finalPath,
		tempPath:  tempPath,
		size:      size,
	}, nil
}

// Bytes returns the writable window the caller fills with the file's
// final content.
func (b *Buffer) Bytes() []byte {
	return b.region.Bytes()
}

// Size returns the buffer length in bytes.
func (b *Buffer) Size() int64 {
	return b.size
}

// Path returns where the file will appear once committed.
func (b *Buffer) Path() string {
	return b.finalPath
}

// Commit publishes the buffer: the region is unmapped (dirty pages
// become the OS's to flush), the temporary is optionally shrunk to
// newSize, and a single rename moves it onto the final path. A failed
// commit leaves the buffer uncommitted: the temporary stays, Discard
// still cleans it up, and Commit may be retried.
func (b *Buffer) Commit(newSize int64) error {
	if b.committed {
		return fmt.Errorf("buffer for %q already committed: %w", b.finalPath, fsys.ErrInvalidArgument)
	}
	if newSize != KeepSize && newSize > b.size {
		return fmt.Errorf("commit size %d exceeds buffer size %d (only shrinking is supported): %w",
			newSize, b.size, fsys.ErrInvalidArgument)
	}

	if err := b.region.Close(); err != nil {
		return err
	}

	if newSize != KeepSize {
		if err := b.fs.ResizeFile(b.tempPath, newSize); err != nil {
			return err
		}
	}

	if err := b.fs.Rename(b.tempPath, b.finalPath); err != nil {
		return err
	}

	b.committed = true
	return nil
}

// Discard abandons an uncommitted buffer, releasing the mapping and
// deleting the temporary file. The final path is untouched: it was
// never written. After a successful Commit, Discard is a no-op, so it
// is safe to defer unconditionally.
func (b *Buffer) Discard() error {
	if b.committed || b.discarded {
		return nil
	}
	b.discarded = true

	err := b.region.Close()
	if _, removeErr := b.fs.Remove(b.tempPath); err == nil {
		err = removeErr
	}
	return err
}
