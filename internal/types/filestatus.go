package types

import "time"

// FileType classifies a filesystem entity as reported by a status query.
type FileType int

const (
	// StatusError indicates the status query itself failed for a reason
	// other than the entity being absent.
	StatusError FileType = iota
	// FileNotFound indicates the entity does not exist.
	FileNotFound
	// RegularFile is an ordinary data file.
	RegularFile
	// DirectoryFile is a directory.
	DirectoryFile
	// SymlinkFile is a symbolic link.
	SymlinkFile
	// BlockFile is a block special device.
	BlockFile
	// CharacterFile is a character special device.
	CharacterFile
	// FifoFile is a named pipe.
	FifoFile
	// SocketFile is a unix domain socket.
	SocketFile
	// TypeUnknown is an entity that exists but could not be classified.
	TypeUnknown
)

// String returns a human-readable name for the file type.
func (t FileType) String() string {
	switch t {
	case StatusError:
		return "status-error"
	case FileNotFound:
		return "not-found"
	case RegularFile:
		return "regular"
	case DirectoryFile:
		return "directory"
	case SymlinkFile:
		return "symlink"
	case BlockFile:
		return "block-device"
	case CharacterFile:
		return "character-device"
	case FifoFile:
		return "fifo"
	case SocketFile:
		return "socket"
	default:
		return "unknown"
	}
}

// Permissions is a POSIX-style permission bit set.
type Permissions uint32

const (
	OwnerRead  Permissions = 0o400
	OwnerWrite Permissions = 0o200
	OwnerExe   Permissions = 0o100
	GroupRead  Permissions = 0o040
	GroupWrite Permissions = 0o020
	GroupExe   Permissions = 0o010
	OtherRead  Permissions = 0o004
	OtherWrite Permissions = 0o002
	OtherExe   Permissions = 0o001

	AllRead  = OwnerRead | GroupRead | OtherRead
	AllWrite = OwnerWrite | GroupWrite | OtherWrite
	AllExe   = OwnerExe | GroupExe | OtherExe
	AllAll   = AllRead | AllWrite | AllExe

	PermsNotKnown Permissions = 0xFFFF
)

// UniqueID is the platform identity tuple of a filesystem entity. Two
// paths refer to the same entity exactly when their UniqueIDs are equal.
type UniqueID struct {
	Device uint64
	Inode  uint64
}

// Equal reports whether two identity tuples name the same entity.
func (id UniqueID) Equal(other UniqueID) bool {
	return id.Device == other.Device && id.Inode == other.Inode
}

// FileStatus is the result of a single status query. It is never cached
// beyond the call that produced it.
type FileStatus struct {
	Type    FileType
	Perms   Permissions
	ID      UniqueID
	ModTime time.Time
	Size    int64
}

// Exists reports whether the status describes an entity that is present.
func (s FileStatus) Exists() bool {
	return s.Known() && s.Type != FileNotFound
}

// Known reports whether the status query produced a usable answer.
func (s FileStatus) Known() bool {
	return s.Type != StatusError
}

// IsDirectory reports whether the entity is a directory.
func (s FileStatus) IsDirectory() bool {
	return s.Type == DirectoryFile
}

// IsRegularFile reports whether the entity is a regular file.
func (s FileStatus) IsRegularFile() bool {
	return s.Type == RegularFile
}

// IsSymlink reports whether the entity is a symbolic link.
func (s FileStatus) IsSymlink() bool {
	return s.Type == SymlinkFile
}

// IsOther reports whether the entity exists but is neither a regular
// file, a directory, nor a symlink.
func (s FileStatus) IsOther() bool {
	return s.Exists() && !s.IsRegularFile() && !s.IsDirectory() && !s.IsSymlink()
}
