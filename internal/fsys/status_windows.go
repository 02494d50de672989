//go:build windows

package fsys

import (
	"io/fs"

	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// statusFromInfo converts a stat result into a FileStatus. The
// attribute data a stat query yields on this platform carries no
// volume-serial/file-index identity, so the tuple stays zero; identity
// comparisons must go through an opened handle.
func statusFromInfo(info fs.FileInfo) types.FileStatus {
	return types.FileStatus{
		Type:    typeFromMode(info.Mode()),
		Perms:   types.Permissions(info.Mode().Perm()),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}
}
