//go:build windows

package fsys

import (
	"errors"

	"golang.org/x/sys/windows"
)

// classifyErrno maps raw Windows error codes that the io/fs sentinels
// do not cover into the taxonomy.
func classifyErrno(err error) error {
	var code windows.Errno
	if !errors.As(err, &code) {
		return nil
	}

	switch code {
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL,
		windows.ERROR_TOO_MANY_OPEN_FILES, windows.ERROR_NOT_ENOUGH_MEMORY,
		windows.ERROR_OUTOFMEMORY:
		return ErrExhausted
	case windows.ERROR_INVALID_PARAMETER, windows.ERROR_FILENAME_EXCED_RANGE:
		return ErrInvalidArgument
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_WRITE_PROTECT:
		return ErrPermission
	}
	return nil
}
