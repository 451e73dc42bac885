package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalFS_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "f.txt")

	require.NoError(t, Default.MkdirAll(filepath.Dir(path), 0o755))
	// Creating an existing directory is a no-op.
	require.NoError(t, Default.MkdirAll(filepath.Dir(path), 0o755))

	f, err := Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := Default.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(4), info.Size())

	entries, err := Default.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, Default.RemoveAll(filepath.Join(dir, "sub")))
	_, err = Default.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestFaultyFS_WriteFault(t *testing.T) {
	ffs := NewFaultyFS(nil)
	ffs.AddRule("broken", Fault{FailOnWrite: true})

	dir := t.TempDir()

	f, err := ffs.OpenFile(filepath.Join(dir, "broken.bin"), os.O_WRONLY|os.O_CREATE, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte("x"))
	require.Error(t, err)
	require.NoError(t, f.Close())

	// Paths outside the rule behave normally.
	g, err := ffs.OpenFile(filepath.Join(dir, "fine.bin"), os.O_WRONLY|os.O_CREATE, 0o644)
	require.NoError(t, err)
	_, err = g.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, g.Close())
}

func TestFaultyFS_OpenAndMkdirFaults(t *testing.T) {
	ffs := NewFaultyFS(nil)
	ffs.AddRule("denied", Fault{FailOnOpen: true, FailOnMkdir: true})

	dir := t.TempDir()

	_, err := ffs.OpenFile(filepath.Join(dir, "denied.bin"), os.O_RDONLY, 0)
	require.Error(t, err)

	require.Error(t, ffs.MkdirAll(filepath.Join(dir, "denied-dir"), 0o755))
	require.NoError(t, ffs.MkdirAll(filepath.Join(dir, "ok-dir"), 0o755))
}
