package fsys

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/paths"
	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// osFileSystem implements the FileSystem contract directly over the
// operating system.
type osFileSystem struct {
	style paths.Style
}

// NewOSFileSystem creates the OS-backed FileSystem. Paths are joined
// using the native path grammar.
func NewOSFileSystem() interfaces.FileSystem {
	return &osFileSystem{style: paths.Native}
}

// Status queries the entity at path without following a final symlink,
// so links are classified as links rather than as their targets.
func (o *osFileSystem) Status(path string) (types.FileStatus, error) {
	info, err := os.Lstat(path)
	if err != nil {
		err = Classify(err)
		if IsNotFound(err) {
			return types.FileStatus{Type: types.FileNotFound}, err
		}
		return types.FileStatus{Type: types.StatusError}, err
	}
	return statusFromInfo(info), nil
}

func (o *osFileSystem) StatusFile(file interfaces.File) (types.FileStatus, error) {
	info, err := file.Stat()
	if err != nil {
		return types.FileStatus{Type: types.StatusError}, Classify(err)
	}
	return statusFromInfo(info), nil
}

func (o *osFileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err != nil {
		err = Classify(err)
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (o *osFileSystem) OpenExclusive(path string, perm types.Permissions) (interfaces.File, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, os.FileMode(perm))
	if err != nil {
		return nil, Classify(err)
	}
	return file, nil
}

func (o *osFileSystem) OpenRead(path string) (interfaces.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Classify(err)
	}
	return file, nil
}

func (o *osFileSystem) CreateDirectory(path string) (bool, error) {
	if err := os.Mkdir(path, 0o770); err != nil {
		err = Classify(err)
		if IsExists(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Remove deletes a single entity. Only regular files, directories and
// symlinks are removable; refusing device nodes and the like keeps a
// stray path from erasing something such as /dev/null.
func (o *osFileSystem) Remove(path string) (bool, error) {
	status, err := o.Status(path)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if !status.IsRegularFile() && !status.IsDirectory() && !status.IsSymlink() {
		return false, &classifiedError{
			kind: ErrPermission,
			err:  fmt.Errorf("refusing to remove %s entity %q", status.Type, path),
		}
	}

	if err := os.Remove(path); err != nil {
		err = Classify(err)
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (o *osFileSystem) Rename(oldpath, newpath string) error {
	if err := os.Rename(oldpath, newpath); err != nil {
		return Classify(err)
	}
	return nil
}

func (o *osFileSystem) ResizeFile(path string, size int64) error {
	if err := os.Truncate(path, size); err != nil {
		return Classify(err)
	}
	return nil
}

func (o *osFileSystem) ReadDirectory(path string) ([]interfaces.DirectoryEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, Classify(err)
	}

	out := make([]interfaces.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, interfaces.DirectoryEntry{
			Path: o.style.Append(path, entry.Name()),
			Name: entry.Name(),
		})
	}
	return out, nil
}

func (o *osFileSystem) CurrentDirectory() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", Classify(err)
	}
	return dir, nil
}

// typeFromMode classifies a file mode into the status taxonomy.
func typeFromMode(mode fs.FileMode) types.FileType {
	switch {
	case mode.IsRegular():
		return types.RegularFile
	case mode.IsDir():
		return types.DirectoryFile
	case mode&fs.ModeSymlink != 0:
		return types.SymlinkFile
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		return types.CharacterFile
	case mode&fs.ModeDevice != 0:
		return types.BlockFile
	case mode&fs.ModeNamedPipe != 0:
		return types.FifoFile
	case mode&fs.ModeSocket != 0:
		return types.SocketFile
	default:
		return types.TypeUnknown
	}
}
