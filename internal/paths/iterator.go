package paths

// Iterator is a bidirectional cursor over the components of a path.
// Components include root markers ("/", "//net", "C:", "C:/" pieces),
// "." and "..", and plain names. A path ending in a separator produces a
// synthetic trailing "." component when stepping backward from the end.
//
// Next and Prev are inverses of each other everywhere except at that
// synthetic trailing-"." state.
type Iterator struct {
	style     Style
	path      string
	component string
	position  int
}

// Begin returns an iterator positioned on the first component of path.
// For an empty path the iterator is already done.
func (st Style) Begin(path string) *Iterator {
	return &Iterator{
		style:     st,
		path:      path,
		component: st.findFirstComponent(path),
		position:  0,
	}
}

// End returns the one-past-the-last iterator for path.
func (st Style) End(path string) *Iterator {
	return &Iterator{
		style:    st,
		path:     path,
		position: len(path),
	}
}

// Component returns the component the iterator is positioned on.
func (it *Iterator) Component() string {
	return it.component
}

// Position returns the byte offset of the current component within the
// path.
func (it *Iterator) Position() int {
	return it.position
}

// Done reports whether the iterator has moved past the last component.
func (it *Iterator) Done() bool {
	return it.position == len(it.path) && it.component == ""
}

// Next advances the iterator to the following component. Advancing a
// done iterator is a programming error.
func (it *Iterator) Next() *Iterator {
	if it.Done() {
		panic("paths: Next called on iterator past the end")
	}

	st := it.style

	// Move past the current component.
	it.position += len(it.component)

	if it.position == len(it.path) {
		it.component = ""
		return it
	}

	// Paths beginning with exactly two separators carry a network prefix
	// whose following separator is its own root-directory component.
	wasNet := len(it.component) > 2 &&
		st.IsSeparator(it.component[0]) &&
		it.component[1] == it.component[0] &&
		!st.IsSeparator(it.component[2])

	if st.IsSeparator(it.path[it.position]) {
		wasDrive := st.driveLetters && it.component != "" &&
			it.component[len(it.component)-1] == ':'

		if wasNet || wasDrive {
			it.component = it.path[it.position : it.position+1]
			return it
		}

		// Skip runs of separators.
		for it.position != len(it.path) && st.IsSeparator(it.path[it.position]) {
			it.position++
		}

		// A trailing separator stands for the current directory.
		if it.position == len(it.path) {
			it.position--
			it.component = "."
			return it
		}
	}

	end := st.indexOfSeparator(it.path, it.position)
	if end < 0 {
		end = len(it.path)
	}
	it.component = it.path[it.position:end]
	return it
}

// Prev moves the iterator to the preceding component. Stepping before
// the first component is a programming error.
func (it *Iterator) Prev() *Iterator {
	st := it.style

	// Stepping back from the end of a path with a trailing separator
	// lands on the synthetic "." component, unless that separator is a
	// root directory (or directly follows a drive name).
	if it.position == len(it.path) &&
		len(it.path) > 1 &&
		st.IsSeparator(it.path[it.position-1]) &&
		!(st.driveLetters && it.path[it.position-2] == ':') {
		it.position--
		it.component = "."
		return it
	}

	// Skip separators unless they are the root directory.
	rootDirPos := st.rootDirStart(it.path)
	endPos := it.position
	for endPos > 0 && endPos-1 != rootDirPos && st.IsSeparator(it.path[endPos-1]) {
		endPos--
	}

	if endPos == 0 && it.position == 0 {
		panic("paths: Prev called on iterator at the start")
	}

	startPos := st.filenamePos(it.path[:endPos])
	it.component = it.path[startPos:endPos]
	it.position = startPos
	return it
}

// Components returns every component of path in forward order.
func (st Style) Components(path string) []string {
	var out []string
	for it := st.Begin(path); !it.Done(); it.Next() {
		out = append(out, it.Component())
	}
	return out
}
