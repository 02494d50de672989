package paths

import "runtime"

// Style captures the lexical rules of one path grammar. The differences
// between the single-rooted and the drive-letter grammars are data, not
// code: every decomposition function takes its rules from the Style it is
// called on.
type Style struct {
	// separators lists every byte accepted as a component separator.
	separators string

	// preferred is the separator inserted when joining components.
	preferred byte

	// driveLetters enables recognition of "C:" root names.
	driveLetters bool

	// rootNameRequired makes absoluteness demand a root name in addition
	// to a root directory. This asymmetry is deliberate: on drive-letter
	// systems "\foo" is only drive-relative, while on single-rooted
	// systems "/foo" is fully absolute.
	rootNameRequired bool
}

// Posix is the single-rooted, single-separator grammar.
var Posix = Style{
	separators:       "/",
	preferred:        '/',
	driveLetters:     false,
	rootNameRequired: false,
}

// Windows is the drive-letter/UNC, dual-separator grammar.
var Windows = Style{
	separators:       "\\/",
	preferred:        '\\',
	driveLetters:     true,
	rootNameRequired: true,
}

// Native is the grammar of the host platform.
var Native = nativeStyle()

func nativeStyle() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// IsSeparator reports whether value is a component separator under this
// style.
func (st Style) IsSeparator(value byte) bool {
	for i := 0; i < len(st.separators); i++ {
		if st.separators[i] == value {
			return true
		}
	}
	return false
}

// PreferredSeparator returns the separator inserted by Append.
func (st Style) PreferredSeparator() byte {
	return st.preferred
}

// indexOfSeparator returns the offset of the first separator at or after
// from, or -1 when there is none.
func (st Style) indexOfSeparator(path string, from int) int {
	for i := from; i < len(path); i++ {
		if st.IsSeparator(path[i]) {
			return i
		}
	}
	return -1
}

// lastIndexOfSeparator returns the offset of the last separator strictly
// before limit, or -1 when there is none.
func (st Style) lastIndexOfSeparator(path string, limit int) int {
	if limit > len(path) {
		limit = len(path)
	}
	for i := limit - 1; i >= 0; i-- {
		if st.IsSeparator(path[i]) {
			return i
		}
	}
	return -1
}

func isDriveLetter(value byte) bool {
	return (value >= 'a' && value <= 'z') || (value >= 'A' && value <= 'Z')
}
