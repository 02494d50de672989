// Package paths implements pure lexical decomposition of filesystem
// paths. Every function is a pure function of the input bytes: no
// operation touches the filesystem, and malformed byte sequences are
// accepted as opaque bytes. Results are substrings of the input, never
// copies, except where joining necessarily builds a new string.
package paths

import "strings"

// findFirstComponent returns the leading component of path. The component
// is, in order of precedence: empty, a drive letter ("C:"), a network
// prefix ("//net"), a root directory ("/"), "." or "..", or a plain name.
func (st Style) findFirstComponent(path string) string {
	if path == "" {
		return path
	}

	if st.driveLetters && len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		return path[:2]
	}

	// Exactly two leading separators followed by a non-separator form a
	// network prefix; the prefix runs to the next separator.
	if len(path) > 2 && st.IsSeparator(path[0]) && path[0] == path[1] && !st.IsSeparator(path[2]) {
		if end := st.indexOfSeparator(path, 2); end >= 0 {
			return path[:end]
		}
		return path
	}

	if st.IsSeparator(path[0]) {
		return path[:1]
	}

	if strings.HasPrefix(path, "..") {
		return path[:2]
	}

	if path[0] == '.' {
		return path[:1]
	}

	if end := st.indexOfSeparator(path, 0); end >= 0 {
		return path[:end]
	}
	return path
}

// filenamePos returns the offset where the final component begins.
func (st Style) filenamePos(path string) int {
	if len(path) == 2 && st.IsSeparator(path[0]) && path[0] == path[1] {
		return 0
	}

	if len(path) > 0 && st.IsSeparator(path[len(path)-1]) {
		return len(path) - 1
	}

	pos := st.lastIndexOfSeparator(path, len(path))

	if pos < 0 && st.driveLetters {
		// Drive-relative paths such as "C:name": the name starts right
		// after the colon.
		pos = strings.LastIndexByte(path[:max(len(path)-1, 0)], ':')
	}

	if pos < 0 || (pos == 1 && st.IsSeparator(path[0])) {
		return 0
	}
	return pos + 1
}

// rootDirStart returns the offset of the root directory separator, or -1
// when the path has none.
func (st Style) rootDirStart(path string) int {
	// "c:/"
	if st.driveLetters && len(path) > 2 && path[1] == ':' && st.IsSeparator(path[2]) {
		return 2
	}

	// "//" alone is a root directory, not a network prefix.
	if len(path) == 2 && st.IsSeparator(path[0]) && path[0] == path[1] {
		return -1
	}

	// "//net": the root directory is the separator ending the prefix.
	if len(path) > 3 && st.IsSeparator(path[0]) && path[0] == path[1] && !st.IsSeparator(path[2]) {
		return st.indexOfSeparator(path, 2)
	}

	// "/"
	if len(path) > 0 && st.IsSeparator(path[0]) {
		return 0
	}
	return -1
}

// parentPathEnd returns the length of the parent path, or -1 when the
// path has no parent.
func (st Style) parentPathEnd(path string) int {
	endPos := st.filenamePos(path)

	filenameWasSep := len(path) > 0 && endPos < len(path) && st.IsSeparator(path[endPos])

	// Skip separators except for the root directory itself.
	rootDirPos := st.rootDirStart(path[:endPos])
	for endPos > 0 && endPos-1 != rootDirPos && st.IsSeparator(path[endPos-1]) {
		endPos--
	}

	if endPos == 1 && rootDirPos == 0 && filenameWasSep {
		return -1
	}
	return endPos
}

// RootName returns the drive-letter or network prefix of path, or ""
// when the path has neither.
func (st Style) RootName(path string) string {
	first := st.findFirstComponent(path)
	if first == "" {
		return ""
	}

	hasNet := len(first) > 2 && st.IsSeparator(first[0]) && first[1] == first[0]
	hasDrive := st.driveLetters && strings.HasSuffix(first, ":")

	if hasNet || hasDrive {
		return first
	}
	return ""
}

// RootDirectory returns the separator that marks the start of the
// absolute part of path, or "" when the path is relative to some
// location.
func (st Style) RootDirectory(path string) string {
	it := st.Begin(path)
	if it.Done() {
		return ""
	}
	first := it.Component()

	hasNet := len(first) > 2 && st.IsSeparator(first[0]) && first[1] == first[0]
	hasDrive := st.driveLetters && strings.HasSuffix(first, ":")

	if hasNet || hasDrive {
		it.Next()
		if !it.Done() && st.IsSeparator(it.Component()[0]) {
			return it.Component()
		}
		return ""
	}

	if !hasNet && st.IsSeparator(first[0]) {
		return first
	}
	return ""
}

// RootPath returns the root name joined with the root directory.
func (st Style) RootPath(path string) string {
	it := st.Begin(path)
	if it.Done() {
		return ""
	}
	first := it.Component()

	hasNet := len(first) > 2 && st.IsSeparator(first[0]) && first[1] == first[0]
	hasDrive := st.driveLetters && strings.HasSuffix(first, ":")

	if hasNet || hasDrive {
		it.Next()
		if !it.Done() && st.IsSeparator(it.Component()[0]) {
			return path[:len(first)+len(it.Component())]
		}
		return first
	}

	if st.IsSeparator(first[0]) {
		return first
	}
	return ""
}

// RelativePath returns everything after the root path.
func (st Style) RelativePath(path string) string {
	return path[len(st.RootPath(path)):]
}

// ParentPath returns path with its final component and the separators
// immediately preceding it removed. A sole root directory is preserved;
// a path that is just a root has no parent and yields "".
func (st Style) ParentPath(path string) string {
	endPos := st.parentPathEnd(path)
	if endPos < 0 {
		return ""
	}
	return path[:endPos]
}

// Filename returns the final component of path as produced by backward
// iteration; a trailing separator yields the synthesized ".".
func (st Style) Filename(path string) string {
	it := st.End(path)
	it.Prev()
	return it.Component()
}

// Stem returns the filename with its extension removed. "." and ".."
// are never split.
func (st Style) Stem(path string) string {
	name := st.Filename(path)
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 || name == "." || name == ".." {
		return name
	}
	return name[:pos]
}

// Extension returns the filename's extension including the leading dot,
// or "" when there is none. "." and ".." never have extensions.
func (st Style) Extension(path string) string {
	name := st.Filename(path)
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 || name == "." || name == ".." {
		return ""
	}
	return name[pos:]
}

// Append joins parts onto path, inserting exactly one preferred
// separator between components unless the left side already ends in a
// separator or the right side is a root name. Leading separators are
// stripped from a part being appended onto a path that already ends in
// one.
func (st Style) Append(path string, parts ...string) string {
	buf := []byte(path)

	for _, part := range parts {
		pathHasSep := len(buf) > 0 && st.IsSeparator(buf[len(buf)-1])
		componentHasSep := len(part) > 0 && st.IsSeparator(part[0])
		isRootName := st.HasRootName(part)

		if pathHasSep {
			buf = append(buf, strings.TrimLeft(part, st.separators)...)
			continue
		}

		if !componentHasSep && !(len(buf) == 0 || isRootName) {
			buf = append(buf, st.preferred)
		}
		buf = append(buf, part...)
	}
	return string(buf)
}

// RemoveFilename returns path with its final component removed, keeping
// the parent intact.
func (st Style) RemoveFilename(path string) string {
	endPos := st.parentPathEnd(path)
	if endPos < 0 {
		return path
	}
	return path[:endPos]
}

// ReplaceExtension returns path with its extension replaced. A leading
// dot is added to the new extension when missing; an empty extension
// strips the old one.
func (st Style) ReplaceExtension(path, extension string) string {
	result := path

	if pos := strings.LastIndexByte(path, '.'); pos >= 0 && pos >= st.filenamePos(path) {
		result = path[:pos]
	}

	if extension != "" && extension[0] != '.' {
		result += "."
	}
	return result + extension
}

// ToNative rewrites every separator in path to the style's preferred
// one. Under the single-rooted grammar this is the identity.
func (st Style) ToNative(path string) string {
	if len(st.separators) == 1 {
		return path
	}
	buf := []byte(path)
	for i, b := range buf {
		if st.IsSeparator(b) {
			buf[i] = st.preferred
		}
	}
	return string(buf)
}

// HasRootName reports whether path begins with a drive-letter or network
// prefix.
func (st Style) HasRootName(path string) bool {
	return st.RootName(path) != ""
}

// HasRootDirectory reports whether path contains a root directory.
func (st Style) HasRootDirectory(path string) bool {
	return st.RootDirectory(path) != ""
}

// HasRootPath reports whether path has any root at all.
func (st Style) HasRootPath(path string) bool {
	return st.RootPath(path) != ""
}

// HasRelativePath reports whether anything follows the root path.
func (st Style) HasRelativePath(path string) bool {
	return st.RelativePath(path) != ""
}

// HasFilename reports whether path has a final component.
func (st Style) HasFilename(path string) bool {
	return st.Filename(path) != ""
}

// HasParentPath reports whether path has a parent.
func (st Style) HasParentPath(path string) bool {
	return st.ParentPath(path) != ""
}

// IsAbsolute reports whether path fully names its location. Under the
// drive-letter grammar this requires both a root name and a root
// directory; under the single-rooted grammar a root directory alone
// suffices.
func (st Style) IsAbsolute(path string) bool {
	rootDir := st.HasRootDirectory(path)

	rootName := true
	if st.rootNameRequired {
		rootName = st.HasRootName(path)
	}

	return rootDir && rootName
}

// IsRelative reports whether path is not absolute.
func (st Style) IsRelative(path string) bool {
	return !st.IsAbsolute(path)
}

// MakeAbsolute resolves path against base, which must itself be
// absolute. An already absolute path is returned unchanged.
func (st Style) MakeAbsolute(path, base string) string {
	rootDir := st.HasRootDirectory(path)
	rootName := true
	if st.rootNameRequired {
		rootName = st.HasRootName(path)
	}

	switch {
	case rootName && rootDir:
		return path

	case !rootName && !rootDir:
		return st.Append(base, path)

	case !rootName && rootDir:
		// Keep the base's root name, take the path's absolute part.
		return st.Append(st.RootName(base), path)

	default: // rootName && !rootDir
		return st.Append(st.RootName(path),
			st.RootDirectory(base), st.RelativePath(base), st.RelativePath(path))
	}
}
