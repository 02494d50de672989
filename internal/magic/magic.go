// Package magic identifies well-known object-file and archive formats
// from their leading bytes.
package magic

import (
	"encoding/binary"
	"io"

	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
)

// Kind is a recognized file format.
type Kind int

const (
	Unknown Kind = iota
	Bitcode
	Archive
	ELFRelocatable
	ELFExecutable
	ELFSharedObject
	ELFCore
	MachOObject
	MachOExecutable
	MachOSharedLib
	MachOCore
	MachODSYMCompanion
	MachOUniversalBinary
	COFFObject
	PECOFFExecutable
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Bitcode:
		return "bitcode"
	case Archive:
		return "archive"
	case ELFRelocatable:
		return "elf-relocatable"
	case ELFExecutable:
		return "elf-executable"
	case ELFSharedObject:
		return "elf-shared-object"
	case ELFCore:
		return "elf-core"
	case MachOObject:
		return "macho-object"
	case MachOExecutable:
		return "macho-executable"
	case MachOSharedLib:
		return "macho-shared-lib"
	case MachOCore:
		return "macho-core"
	case MachODSYMCompanion:
		return "macho-dsym-companion"
	case MachOUniversalBinary:
		return "macho-universal-binary"
	case COFFObject:
		return "coff-object"
	case PECOFFExecutable:
		return "pecoff-executable"
	default:
		return "unknown"
	}
}

// SniffLength is how many leading bytes Identify wants to see; shorter
// inputs are classified on a best-effort basis.
const SniffLength = 64

// Identify classifies data by its leading bytes.
func Identify(data []byte) Kind {
	if len(data) < 4 {
		return Unknown
	}

	switch data[0] {
	case 0xDE: // 0x0B17C0DE, wrapped bitcode
		if data[1] == 0xC0 && data[2] == 0x17 && data[3] == 0x0B {
			return Bitcode
		}

	case 'B':
		if data[1] == 'C' && data[2] == 0xC0 && data[3] == 0xDE {
			return Bitcode
		}

	case '!':
		if len(data) >= 8 && string(data[:8]) == "!<arch>\n" {
			return Archive
		}

	case 0x7F:
		if len(data) >= 18 && data[1] == 'E' && data[2] == 'L' && data[3] == 'F' {
			return identifyELF(data)
		}

	case 0xCA:
		if data[1] == 0xFE && data[2] == 0xBA && data[3] == 0xBE {
			// Overlaps the Java class file magic; fat Mach-O headers
			// keep the architecture count small.
			if len(data) >= 8 && data[7] < 43 {
				return MachOUniversalBinary
			}
		}

	case 0xFE, 0xCE, 0xCF:
		return identifyMachO(data)

	case 0x4D: // possible MS-DOS stub
		if data[1] == 0x5A && len(data) >= 0x40 {
			offset := binary.LittleEndian.Uint32(data[0x3C:])
			if int(offset)+4 <= len(data) && string(data[offset:offset+4]) == "PE\x00\x00" {
				return PECOFFExecutable
			}
		}

	case 0x64: // x86-64 COFF
		if data[1] == 0x86 {
			return COFFObject
		}

	case 0x4C: // i386 COFF
		if data[1] == 0x01 {
			return COFFObject
		}
	}
	return Unknown
}

func identifyELF(data []byte) Kind {
	bigEndian := data[5] == 2
	high, low := 16, 17
	if !bigEndian {
		high, low = 17, 16
	}
	if data[high] != 0 {
		return Unknown
	}

	switch data[low] {
	case 1:
		return ELFRelocatable
	case 2:
		return ELFExecutable
	case 3:
		return ELFSharedObject
	case 4:
		return ELFCore
	}
	return Unknown
}

func identifyMachO(data []byte) Kind {
	var fileType uint16

	switch {
	case data[0] == 0xFE && data[1] == 0xED && data[2] == 0xFA &&
		(data[3] == 0xCE || data[3] == 0xCF):
		// Native endian header.
		if len(data) >= 16 {
			fileType = uint16(data[14])<<8 | uint16(data[15])
		}
	case (data[0] == 0xCE || data[0] == 0xCF) &&
		data[1] == 0xFA && data[2] == 0xED && data[3] == 0xFE:
		// Byte-swapped header.
		if len(data) >= 14 {
			fileType = uint16(data[13])<<8 | uint16(data[12])
		}
	default:
		return Unknown
	}

	switch fileType {
	case 1:
		return MachOObject
	case 2:
		return MachOExecutable
	case 3, 6:
		return MachOSharedLib
	case 4:
		return MachOCore
	case 10:
		return MachODSYMCompanion
	}
	return Unknown
}

// IdentifyFile classifies the file at path using the given filesystem.
func IdentifyFile(fsys interfaces.FileSystem, path string) (Kind, error) {
	file, err := fsys.OpenRead(path)
	if err != nil {
		return Unknown, err
	}
	defer file.Close()

	header := make([]byte, SniffLength)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, err
	}
	return Identify(header[:n]), nil
}
