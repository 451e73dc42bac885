package refstore

import (
	"fmt"
	"path"
	"strings"
)

// Well-known flat file names directly under the durable root.
const (
	// SchemaFile caches the bundled object schema.
	SchemaFile = "schema.json"
	// TranslatorsFile is the bundled reference-import translator archive.
	TranslatorsFile = "translators.zip"
	// UploadsFile persists the pending background-upload queue.
	UploadsFile = "uploads"
	// ActiveSessionsFile persists identifiers of live URL sessions.
	ActiveSessionsFile = "activeUrlSessionIds"
	// ObservedSessionsFile persists session identifiers seen by the share
	// extension, which runs in a separate process.
	ObservedSessionsFile = "shareExtensionObservedUrlSessionIds"
)

// DatabaseFile returns the primary-database file name for a user.
func DatabaseFile(userID int64) string {
	return fmt.Sprintf("maindb_%d.sqlite", userID)
}

// LibraryID identifies a personal or group library.
//
// Its Folder projection is a durable path component: it is a pure function
// of the identifier, and the "user_"/"group_" prefixes keep the two
// namespaces from ever colliding.
type LibraryID struct {
	group bool
	id    int64
}

// UserLibrary returns the identifier of a personal library.
func UserLibrary(id int64) LibraryID { return LibraryID{id: id} }

// GroupLibrary returns the identifier of a shared group library.
func GroupLibrary(id int64) LibraryID { return LibraryID{group: true, id: id} }

// Folder returns the stable, filesystem-safe folder name for the library.
func (l LibraryID) Folder() string {
	if l.group {
		return fmt.Sprintf("group_%d", l.id)
	}
	return fmt.Sprintf("user_%d", l.id)
}

func (l LibraryID) String() string { return l.Folder() }

// Kind is the closed set of object categories that have per-object JSON
// caches. It only ever selects a cache sub-folder name.
type Kind uint8

const (
	KindCollection Kind = iota
	KindItem
	KindTrash
	KindSearch
	KindSettings
)

// kindFolders is the total Kind→folder table. Trashed items share the item
// folder so restoring from trash does not move the cached payload.
var kindFolders = [...]string{
	KindCollection: "collection",
	KindItem:       "item",
	KindTrash:      "item",
	KindSearch:     "search",
	KindSettings:   "settings",
}

// Folder returns the JSON-cache sub-folder for the kind.
func (k Kind) Folder() string {
	if int(k) >= len(kindFolders) {
		return kindFolders[KindItem]
	}
	return kindFolders[k]
}

// Top-level directories of the derived trees under the durable root.
const (
	downloadsDir   = "downloads"
	annotationsDir = "annotations"
	jsonsDir       = "jsons"
)

// SplitFilename splits name on its last dot. A name without a dot yields the
// whole name as stem and an empty extension.
func SplitFilename(name string) (stem, ext string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

var segmentReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

// sanitizeSegment makes s safe as a single path component. Separators are
// replaced and dot-only names cannot escape the tree.
func sanitizeSegment(s string) string {
	s = segmentReplacer.Replace(s)
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}

// RelAttachment is the relative location of a downloaded attachment file.
// The stored name drops the extension: re-downloading the same item key with
// a renamed source file still lands on the same path.
func RelAttachment(lib LibraryID, itemKey, filename string) string {
	stem, _ := SplitFilename(filename)
	return path.Join(downloadsDir, lib.Folder(), sanitizeSegment(itemKey), sanitizeSegment(stem))
}

// RelAttachmentDir is the per-item directory holding an attachment.
func RelAttachmentDir(lib LibraryID, itemKey string) string {
	return path.Join(downloadsDir, lib.Folder(), sanitizeSegment(itemKey))
}

// RelAnnotationPreview is the relative location of a rendered annotation
// preview image. Dark and light renderings differ only by the _dark suffix.
func RelAnnotationPreview(annotKey, docKey string, lib LibraryID, dark bool) string {
	name := sanitizeSegment(annotKey)
	if dark {
		name += "_dark"
	}
	return path.Join(annotationsDir, lib.Folder(), sanitizeSegment(docKey), name+".png")
}

// RelAnnotationPreviewsForDocument is the preview directory of one document.
func RelAnnotationPreviewsForDocument(docKey string, lib LibraryID) string {
	return path.Join(annotationsDir, lib.Folder(), sanitizeSegment(docKey))
}

// RelAnnotationPreviewsForLibrary is the preview directory of one library.
func RelAnnotationPreviewsForLibrary(lib LibraryID) string {
	return path.Join(annotationsDir, lib.Folder())
}

// RelAnnotationPreviews is the root of the preview tree.
func RelAnnotationPreviews() string { return annotationsDir }

// RelJSONCache is the relative location of a cached per-object API payload.
func RelJSONCache(kind Kind, lib LibraryID, key string) string {
	return path.Join(jsonsDir, lib.Folder(), kind.Folder(), sanitizeSegment(key)+".json")
}

// RelBlob is the relative location of a named flat blob: directly under the
// durable root, never nested.
func RelBlob(name string) string { return sanitizeSegment(name) }
