package fsys

import (
	"os"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/paths"
	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// aferoFileSystem adapts an afero.Fs to the FileSystem contract. It is
// the backend used by the in-memory tests and by callers that already
// route their I/O through afero.
type aferoFileSystem struct {
	fs    afero.Fs
	style paths.Style
}

// NewAferoFileSystem wraps an afero filesystem. The single-rooted path
// grammar is used for joining, matching afero's own behavior.
func NewAferoFileSystem(backing afero.Fs) interfaces.FileSystem {
	return &aferoFileSystem{fs: backing, style: paths.Posix}
}

func (a *aferoFileSystem) Status(path string) (types.FileStatus, error) {
	var (
		info os.FileInfo
		err  error
	)
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(path)
	} else {
		info, err = a.fs.Stat(path)
	}
	if err != nil {
		err = Classify(err)
		if IsNotFound(err) {
			return types.FileStatus{Type: types.FileNotFound}, err
		}
		return types.FileStatus{Type: types.StatusError}, err
	}

	// afero backends expose no device/inode identity.
	return types.FileStatus{
		Type:    typeFromMode(info.Mode()),
		Perms:   types.Permissions(info.Mode().Perm()),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}, nil
}

func (a *aferoFileSystem) StatusFile(file interfaces.File) (types.FileStatus, error) {
	info, err := file.Stat()
	if err != nil {
		return types.FileStatus{Type: types.StatusError}, Classify(err)
	}
	return types.FileStatus{
		Type:    typeFromMode(info.Mode()),
		Perms:   types.Permissions(info.Mode().Perm()),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}, nil
}

func (a *aferoFileSystem) Exists(path string) (bool, error) {
	exists, err := afero.Exists(a.fs, path)
	if err != nil {
		return false, Classify(err)
	}
	return exists, nil
}

func (a *aferoFileSystem) OpenExclusive(path string, perm types.Permissions) (interfaces.File, error) {
	file, err := a.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, os.FileMode(perm))
	if err != nil {
		return nil, Classify(err)
	}
	return file, nil
}

func (a *aferoFileSystem) OpenRead(path string) (interfaces.File, error) {
	file, err := a.fs.Open(path)
	if err != nil {
		return nil, Classify(err)
	}
	return file, nil
}

func (a *aferoFileSystem) CreateDirectory(path string) (bool, error) {
	if exists, err := afero.DirExists(a.fs, path); err != nil {
		return false, Classify(err)
	} else if exists {
		return true, nil
	}

	if err := a.fs.Mkdir(path, 0o770); err != nil {
		err = Classify(err)
		if IsExists(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (a *aferoFileSystem) Remove(path string) (bool, error) {
	if exists, err := a.Exists(path); err != nil {
		return false, err
	} else if !exists {
		return false, nil
	}

	if err := a.fs.Remove(path); err != nil {
		return false, Classify(err)
	}
	return true, nil
}

func (a *aferoFileSystem) Rename(oldpath, newpath string) error {
	// afero's in-memory rename refuses to clobber; replicate the POSIX
	// replace semantics the contract requires.
	if exists, err := a.Exists(newpath); err == nil && exists {
		if err := a.fs.Remove(newpath); err != nil {
			return Classify(err)
		}
	}
	if err := a.fs.Rename(oldpath, newpath); err != nil {
		return Classify(err)
	}
	return nil
}

func (a *aferoFileSystem) ResizeFile(path string, size int64) error {
	file, err := a.fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return Classify(err)
	}
	defer file.Close()

	if err := file.Truncate(size); err != nil {
		return Classify(err)
	}
	return nil
}

func (a *aferoFileSystem) ReadDirectory(path string) ([]interfaces.DirectoryEntry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, Classify(err)
	}

	out := make([]interfaces.DirectoryEntry, 0, len(infos))
	for _, info := range infos {
		out = append(out, interfaces.DirectoryEntry{
			Path: a.style.Append(path, info.Name()),
			Name: info.Name(),
		})
	}
	return out, nil
}

func (a *aferoFileSystem) CurrentDirectory() (string, error) {
	return "/", nil
}
