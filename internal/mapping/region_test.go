//go:build !windows

package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFatal captures misuse reports instead of exiting.
type recordingFatal struct {
	message string
}

func (r *recordingFatal) Fatal(message string) {
	r.message = message
	panic(message)
}

func newBackingFile(t *testing.T, content []byte) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "backing")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file
}

func TestReadOnlyRegionSeesFileContent(t *testing.T) {
	file := newBackingFile(t, []byte("hello mapping"))

	region, err := NewRegion(file, ReadOnly, 0, 0)
	require.NoError(t, err)
	defer region.Close()

	assert.Equal(t, "hello mapping", string(region.Bytes()))
	assert.Equal(t, int64(13), region.Size())
	assert.Equal(t, ReadOnly, region.AccessMode())
}

func TestReadWriteRegionPersistsWrites(t *testing.T) {
	file := newBackingFile(t, []byte("xxxx"))

	region, err := NewRegion(file, ReadWrite, 0, 0)
	require.NoError(t, err)

	copy(region.Bytes(), "data")
	require.NoError(t, region.Close())

	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestPrivateRegionWritesStayPrivate(t *testing.T) {
	file := newBackingFile(t, []byte("original"))

	region, err := NewRegion(file, Private, 0, 0)
	require.NoError(t, err)
	defer region.Close()

	copy(region.Bytes(), "scribble")
	assert.Equal(t, "scribble", string(region.Bytes()))

	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Equal(t, "original", string(content), "private writes must never reach the file")
}

func TestZeroLengthAdoptsFileSize(t *testing.T) {
	file := newBackingFile(t, []byte("12345678"))

	region, err := NewRegion(file, ReadOnly, 0, 0)
	require.NoError(t, err)
	defer region.Close()

	assert.Equal(t, int64(8), region.Size())
	assert.Len(t, region.Bytes(), 8)
}

func TestEmptyFileYieldsEmptyRegion(t *testing.T) {
	file := newBackingFile(t, nil)

	region, err := NewRegion(file, ReadWrite, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), region.Size())
	assert.Empty(t, region.Bytes())

	require.NoError(t, region.Close())
	require.NoError(t, region.Close())
}

func TestSmallFileGrowsToRequestedLength(t *testing.T) {
	file := newBackingFile(t, []byte("ab"))

	region, err := NewRegion(file, ReadWrite, 64, 0)
	require.NoError(t, err)
	defer region.Close()

	assert.Equal(t, int64(64), region.Size())

	info, err := file.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(64), info.Size())
}

func TestNegativeArgumentsAreRejected(t *testing.T) {
	file := newBackingFile(t, []byte("x"))

	_, err := NewRegion(file, ReadOnly, -1, 0)
	assert.Error(t, err)

	_, err = NewRegion(file, ReadOnly, 0, -1)
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	file := newBackingFile(t, []byte("abc"))

	region, err := NewRegion(file, ReadOnly, 0, 0)
	require.NoError(t, err)

	require.NoError(t, region.Close())
	require.NoError(t, region.Close())
}

func TestBytesAfterCloseIsFatal(t *testing.T) {
	file := newBackingFile(t, []byte("abc"))

	handler := &recordingFatal{}
	region, err := NewRegion(file, ReadOnly, 0, 0, WithFatalHandler(handler))
	require.NoError(t, err)
	require.NoError(t, region.Close())

	assert.Panics(t, func() { region.Bytes() })
	assert.Contains(t, handler.message, "released region")
}
