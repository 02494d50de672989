//go:build !windows

package fsys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// classifyErrno maps raw errno values that the io/fs sentinels do not
// cover into the taxonomy.
func classifyErrno(err error) error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return nil
	}

	switch errno {
	case unix.ENOSPC, unix.EDQUOT, unix.EMFILE, unix.ENFILE, unix.ENOMEM:
		return ErrExhausted
	case unix.EINVAL, unix.ENAMETOOLONG, unix.EOVERFLOW:
		return ErrInvalidArgument
	case unix.EPERM, unix.EACCES, unix.EROFS:
		return ErrPermission
	}
	return nil
}
