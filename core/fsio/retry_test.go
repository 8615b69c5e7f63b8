package fsio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Retry(5, NoBackoff(), func(error) bool { return true }, func() error {
		calls++
		if calls < 3 {
			return fs.ErrPermission
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	fatal := errors.New("broken")
	calls := 0
	err := Retry(5, NoBackoff(), func(err error) bool { return errors.Is(err, fs.ErrPermission) }, func() error {
		calls++
		return fatal
	})
	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestRetryExhaustsCeiling(t *testing.T) {
	calls := 0
	err := Retry(4, NoBackoff(), func(error) bool { return true }, func() error {
		calls++
		return fs.ErrPermission
	})
	require.Error(t, err)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "gave up after 4 attempts")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, errAccessDenied, classify(fs.ErrPermission))
	assert.Equal(t, errNotFound, classify(fs.ErrNotExist))
	assert.Equal(t, errFatal, classify(errors.New("other")))
	assert.Equal(t, errFatal, classify(nil))

	// Wrapped OS errors classify through errors.Is.
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, errNotFound, classify(err))
}

func TestRecreateDirClearsContents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stale"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale", "old.ts"), []byte("x"), 0o644))

	require.NoError(t, RecreateDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.ts")
	require.NoError(t, WriteFile(path, []byte("export {};\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export {};\n", string(data))
}
