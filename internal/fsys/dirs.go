package fsys

import (
	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/paths"
)

// CreateDirectories creates every missing directory on path, parents
// first.
func CreateDirectories(fsys interfaces.FileSystem, style paths.Style, path string) error {
	parent := style.ParentPath(path)
	if parent != "" {
		exists, err := fsys.Exists(parent)
		if err != nil {
			return err
		}
		if !exists {
			if err := CreateDirectories(fsys, style, parent); err != nil {
				return err
			}
		}
	}

	_, err := fsys.CreateDirectory(path)
	return err
}

// Equivalent reports whether two paths name the same filesystem entity,
// by comparing identity tuples.
func Equivalent(fsys interfaces.FileSystem, a, b string) (bool, error) {
	statusA, err := fsys.Status(a)
	if err != nil {
		return false, err
	}
	statusB, err := fsys.Status(b)
	if err != nil {
		return false, err
	}
	return statusA.ID.Equal(statusB.ID), nil
}

// MakeAbsolute resolves path against the process working directory.
func MakeAbsolute(fsys interfaces.FileSystem, style paths.Style, path string) (string, error) {
	if style.IsAbsolute(path) {
		return path, nil
	}

	current, err := fsys.CurrentDirectory()
	if err != nil {
		return "", err
	}
	return style.MakeAbsolute(path, current), nil
}
