//go:build !windows

package fsys

import (
	"io/fs"
	"syscall"

	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// statusFromInfo converts a stat result into a FileStatus, including
// the device+inode identity tuple.
func statusFromInfo(info fs.FileInfo) types.FileStatus {
	status := types.FileStatus{
		Type:    typeFromMode(info.Mode()),
		Perms:   types.Permissions(info.Mode().Perm()),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}

	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		status.ID = types.UniqueID{
			Device: uint64(sys.Dev),
			Inode:  uint64(sys.Ino),
		}
	}
	return status
}
