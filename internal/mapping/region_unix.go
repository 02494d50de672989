//go:build !windows

package mapping

import "golang.org/x/sys/unix"

// mapFile establishes the mapping. Shared only for ReadWrite; ReadOnly
// and Private both map private, differing in write protection.
func (r *Region) mapFile(file File, length, offset int64) error {
	prot := unix.PROT_READ | unix.PROT_WRITE
	if r.mode == ReadOnly {
		prot = unix.PROT_READ
	}

	flags := unix.MAP_PRIVATE
	if r.mode == ReadWrite {
		flags = unix.MAP_SHARED
	}

	data, err := unix.Mmap(int(file.Fd()), offset, int(length), prot, flags)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

func (r *Region) unmap() error {
	return unix.Munmap(r.data)
}
