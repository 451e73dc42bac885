package refstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileResolver(t *testing.T) {
	dir := t.TempDir()
	handle := filepath.Join(dir, "source.pdf")
	require.NoError(t, os.WriteFile(handle, []byte("%PDF-1.7 content"), 0o644))

	r := NewFileResolver(nil)

	size, ok := r.Size(handle)
	require.True(t, ok)
	require.Equal(t, int64(16), size)

	mime, ok := r.MimeType(handle)
	require.True(t, ok)
	require.Equal(t, "application/pdf", mime)

	_, ok = r.Size(filepath.Join(dir, "missing"))
	require.False(t, ok)
	_, ok = r.MimeType(filepath.Join(dir, "missing"))
	require.False(t, ok)
}

func TestScheme_CopyAttachment(t *testing.T) {
	dir := t.TempDir()
	handle := filepath.Join(dir, "shared.pdf")
	require.NoError(t, os.WriteFile(handle, []byte("%PDF-1.7"), 0o644))

	s := newTestScheme(t)
	lib := UserLibrary(4)

	dst, err := s.CopyAttachment(NewFileResolver(nil), handle, lib, "ITEM", "shared.pdf")
	require.NoError(t, err)
	require.Equal(t, s.Attachment(lib, "ITEM", "shared.pdf"), dst)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7", string(got))
}

func TestScheme_CopyAttachment_MissingHandle(t *testing.T) {
	s := newTestScheme(t)

	_, err := s.CopyAttachment(NewFileResolver(nil), filepath.Join(t.TempDir(), "gone"), UserLibrary(1), "ITEM", "x.pdf")
	require.Error(t, err)
}
