package content

import (
	"bytes"
	"crypto/md5" //nolint:gosec // identity/dedup digest, not security
	"encoding/hex"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/refstack/refstore/internal/fs"
)

// pdfMagic is the fixed %PDF byte sequence opening every PDF file.
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// Inspector answers identity questions about already-resolved files.
type Inspector struct {
	fsys fs.FileSystem
}

// NewInspector creates an Inspector. A nil fsys uses the local filesystem.
func NewInspector(fsys fs.FileSystem) *Inspector {
	if fsys == nil {
		fsys = fs.Default
	}
	return &Inspector{fsys: fsys}
}

// Hash streams the file through an MD5 digest and returns the hex-encoded
// sum. The file is never loaded fully into memory. The digest identifies
// content for dedup and upload change detection; it makes no security claim.
func (i *Inspector) Hash(path string) (string, error) {
	f, err := i.fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New() //nolint:gosec
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// IsPDF reports whether the file starts with the PDF magic bytes.
//
// The check is deliberately lenient: a file shorter than four bytes, an
// unreadable file, or a failed open all report false. Callers rely on the
// sniff never raising.
func (i *Inspector) IsPDF(path string) bool {
	f, err := i.fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	defer f.Close()

	var head [4]byte
	if _, err := io.ReadFull(f, head[:]); err != nil {
		return false
	}
	return bytes.Equal(head[:], pdfMagic)
}

// MimeType sniffs the file's content type from its magic bytes, or false
// when it cannot be determined.
func (i *Inspector) MimeType(path string) (string, bool) {
	f, err := i.fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", false
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", false
	}
	return mtype.String(), true
}

// Size returns the file's size in bytes, or false when it cannot be
// determined.
func (i *Inspector) Size(path string) (int64, bool) {
	info, err := i.fsys.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// defaultInspector serves the package-level convenience functions.
var defaultInspector = NewInspector(nil)

// Hash is Inspector.Hash on the local filesystem.
func Hash(path string) (string, error) { return defaultInspector.Hash(path) }

// IsPDF is Inspector.IsPDF on the local filesystem.
func IsPDF(path string) bool { return defaultInspector.IsPDF(path) }

// MimeType is Inspector.MimeType on the local filesystem.
func MimeType(path string) (string, bool) { return defaultInspector.MimeType(path) }

// Size is Inspector.Size on the local filesystem.
func Size(path string) (int64, bool) { return defaultInspector.Size(path) }
