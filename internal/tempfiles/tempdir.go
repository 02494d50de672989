package tempfiles

import "os"

// TempDirectory returns the directory used to absolutize relative
// templates: the configured override when set, otherwise the first of
// $TMPDIR, $TMP, $TEMP, $TEMPDIR that is non-empty, otherwise /tmp.
func (a *Allocator) TempDirectory() string {
	if a.tempDir != "" {
		return a.tempDir
	}

	for _, variable := range []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"} {
		if dir := os.Getenv(variable); dir != "" {
			return dir
		}
	}
	return "/tmp"
}
