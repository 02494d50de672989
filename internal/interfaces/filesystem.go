package interfaces

import (
	"io"
	"io/fs"

	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// File is the handle returned for filesystem objects that were opened or
// exclusively created. It is satisfied by *os.File and by afero.File.
type File interface {
	io.ReadWriteCloser
	io.Seeker

	// Name returns the path the file was opened with.
	Name() string

	// Stat queries the open file.
	Stat() (fs.FileInfo, error)

	// Truncate changes the size of the open file.
	Truncate(size int64) error
}

// DirectoryEntry is one immediate child of a directory being iterated.
type DirectoryEntry struct {
	// Path is the full path of the entry (parent joined with the name).
	Path string

	// Name is the bare entry name. Never "." or "..".
	Name string
}

// FileSystem is the OS-backed collaborator the core components consume.
// Implementations must distinguish success, "already exists" and
// "not found" through the fsys error classification sentinels.
type FileSystem interface {
	// Status queries the filesystem entity at path. A missing entity is
	// reported as a FileNotFound status together with a not-found error.
	Status(path string) (types.FileStatus, error)

	// StatusFile queries an open file handle.
	StatusFile(file File) (types.FileStatus, error)

	// Exists reports whether an entity is present at path. Errors other
	// than not-found are returned.
	Exists(path string) (bool, error)

	// OpenExclusive creates and opens a new file at path for reading and
	// writing. It fails with an exists-classified error when the path is
	// already taken.
	OpenExclusive(path string, perm types.Permissions) (File, error)

	// OpenRead opens an existing file for reading.
	OpenRead(path string) (File, error)

	// CreateDirectory creates a single directory. existed reports whether
	// the directory was already present, which is not an error.
	CreateDirectory(path string) (existed bool, err error)

	// Remove deletes a single file or empty directory. existed reports
	// whether there was anything to delete; removing an absent entity is
	// not an error.
	Remove(path string) (existed bool, err error)

	// Rename replaces newpath with oldpath. The OS-backed implementation
	// is atomic: a concurrent reader of newpath sees the old content or
	// the new, never a gap. Backends without native clobbering may
	// emulate with remove-then-rename, which opens a window where
	// newpath is briefly absent; such backends cannot provide crash-safe
	// publication.
	Rename(oldpath, newpath string) error

	// ResizeFile truncates or extends the file at path to size bytes.
	ResizeFile(path string, size int64) error

	// ReadDirectory returns the immediate entries of a directory,
	// excluding "." and "..".
	ReadDirectory(path string) ([]DirectoryEntry, error)

	// CurrentDirectory returns the process working directory.
	CurrentDirectory() (string, error)
}
