//go:build windows

package mapping

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapFile establishes the mapping through a file-mapping object held in
// r.view for the lifetime of the region.
func (r *Region) mapFile(file File, length, offset int64) error {
	var pageProtection, viewAccess uint32
	switch r.mode {
	case ReadOnly:
		pageProtection = windows.PAGE_READONLY
		viewAccess = windows.FILE_MAP_READ
	case ReadWrite:
		pageProtection = windows.PAGE_READWRITE
		viewAccess = windows.FILE_MAP_WRITE
	case Private:
		pageProtection = windows.PAGE_WRITECOPY
		viewAccess = windows.FILE_MAP_COPY
	}

	end := uint64(offset) + uint64(length)
	mapping, err := windows.CreateFileMapping(windows.Handle(file.Fd()), nil,
		pageProtection, uint32(end>>32), uint32(end), nil)
	if err != nil {
		return err
	}

	address, err := windows.MapViewOfFile(mapping, viewAccess,
		uint32(uint64(offset)>>32), uint32(offset), uintptr(length))
	if err != nil {
		windows.CloseHandle(mapping)
		return err
	}

	r.view = uintptr(mapping)
	r.data = unsafe.Slice((*byte)(unsafe.Pointer(address)), length)
	return nil
}

func (r *Region) unmap() error {
	address := uintptr(unsafe.Pointer(&r.data[0]))
	err := windows.UnmapViewOfFile(address)
	if closeErr := windows.CloseHandle(windows.Handle(r.view)); err == nil {
		err = closeErr
	}
	return err
}
