// pkg/filesystem/atomic_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test atomic artifact writes leave no partial output behind

package filesystem

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.md")

	require.NoError(t, WriteFileAtomic(NewOS(), path, []byte("# Title\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FilePerm), info.Mode().Perm())
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestWriteAtomic_FailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	boom := stderrors.New("boom")
	err := WriteAtomic(NewOS(), path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
	assertNoTempFiles(t, dir)
}

func TestTempPathAndCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")
	fsys := NewOS()

	tmp, err := TempPath(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(tmp))
	require.NoError(t, os.WriteFile(tmp, []byte("%PDF"), 0o644))

	require.NoError(t, Commit(fsys, tmp, path))
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
