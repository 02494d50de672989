package fsys

import (
	"fmt"

	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// RemoveAll removes path and, when it is a directory, everything below
// it, depth-first: files before their containing directory. The count
// includes every entity removed, directories included. The first
// failure aborts the walk; entities already removed stay removed.
func RemoveAll(fsys interfaces.FileSystem, path string) (int, error) {
	status, err := fsys.Status(path)
	if err != nil {
		return 0, err
	}

	count := 0
	if err := removeAllRecursive(fsys, path, status.Type, &count); err != nil {
		return count, err
	}
	return count, nil
}

func removeAllRecursive(fsys interfaces.FileSystem, path string, fileType types.FileType, count *int) error {
	if fileType == types.DirectoryFile {
		entries, err := fsys.ReadDirectory(path)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			status, err := fsys.Status(entry.Path)
			if err != nil {
				return err
			}
			if err := removeAllRecursive(fsys, entry.Path, status.Type, count); err != nil {
				return err
			}
		}
	}

	existed, err := fsys.Remove(path)
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("entity %q vanished during removal", path)
	}
	*count++
	return nil
}
