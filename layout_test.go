package refstore

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibraryFolder_Projection(t *testing.T) {
	require.Equal(t, "user_42", UserLibrary(42).Folder())
	require.Equal(t, "group_42", GroupLibrary(42).Folder())

	// Stable and collision-free across the two namespaces.
	require.Equal(t, UserLibrary(7).Folder(), UserLibrary(7).Folder())
	require.NotEqual(t, UserLibrary(7).Folder(), GroupLibrary(7).Folder())
	require.NotEqual(t, GroupLibrary(1).Folder(), GroupLibrary(2).Folder())
}

func TestKindFolder_Table(t *testing.T) {
	require.Equal(t, "collection", KindCollection.Folder())
	require.Equal(t, "item", KindItem.Folder())
	require.Equal(t, "item", KindTrash.Folder()) // trash collapses to item
	require.Equal(t, "search", KindSearch.Folder())
	require.Equal(t, "settings", KindSettings.Folder())
}

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"report.v2.pdf", "report.v2", "pdf"},
		{"README", "README", ""},
		{"paper.pdf", "paper", "pdf"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{".hidden", "", "hidden"},
	}
	for _, tt := range tests {
		stem, ext := SplitFilename(tt.name)
		require.Equal(t, tt.stem, stem, tt.name)
		require.Equal(t, tt.ext, ext, tt.name)
	}
}

func TestRelAttachment_DropsExtension(t *testing.T) {
	lib := GroupLibrary(1)
	require.Equal(t, "downloads/group_1/ABCD/paper", RelAttachment(lib, "ABCD", "paper.pdf"))
	require.Equal(t, "downloads/group_1/ABCD/README", RelAttachment(lib, "ABCD", "README"))
}

func TestRelJSONCache_PureAndDistinct(t *testing.T) {
	lib := UserLibrary(3)

	// Pure: identical inputs, identical paths.
	require.Equal(t,
		RelJSONCache(KindItem, lib, "KEY1"),
		RelJSONCache(KindItem, lib, "KEY1"),
	)

	// Distinct keys, distinct paths (kind and library fixed).
	require.NotEqual(t,
		RelJSONCache(KindItem, lib, "KEY1"),
		RelJSONCache(KindItem, lib, "KEY2"),
	)

	require.Equal(t, "jsons/user_3/item/KEY1.json", RelJSONCache(KindItem, lib, "KEY1"))
	require.Equal(t, "jsons/user_3/item/KEY1.json", RelJSONCache(KindTrash, lib, "KEY1"))
}

func TestRelAnnotationPreview_DarkSuffix(t *testing.T) {
	lib := UserLibrary(1)
	light := RelAnnotationPreview("AAAA", "DOC1", lib, false)
	dark := RelAnnotationPreview("AAAA", "DOC1", lib, true)

	require.Equal(t, "annotations/user_1/DOC1/AAAA.png", light)
	require.Equal(t, "annotations/user_1/DOC1/AAAA_dark.png", dark)
}

func TestRelAnnotationPreview_PrefixTree(t *testing.T) {
	lib := GroupLibrary(9)
	require.Equal(t, "annotations", RelAnnotationPreviews())
	require.Equal(t, "annotations/group_9", RelAnnotationPreviewsForLibrary(lib))
	require.Equal(t, "annotations/group_9/DOC", RelAnnotationPreviewsForDocument("DOC", lib))
}

func TestSanitizeSegment_NoTraversal(t *testing.T) {
	require.Equal(t, "_", sanitizeSegment(".."))
	require.Equal(t, "_", sanitizeSegment("."))
	require.Equal(t, "_", sanitizeSegment(""))
	require.Equal(t, "a_b", sanitizeSegment("a/b"))
	require.Equal(t, "a_b", sanitizeSegment(`a\b`))

	// A hostile key cannot climb out of the jsons tree.
	rel := RelJSONCache(KindItem, UserLibrary(1), "../../etc/passwd")
	require.NotContains(t, strings.Split(rel, "/"), "..")
	require.True(t, strings.HasPrefix(path.Clean(rel), "jsons/"))
}

func TestDatabaseFile(t *testing.T) {
	require.Equal(t, "maindb_12345.sqlite", DatabaseFile(12345))
}
