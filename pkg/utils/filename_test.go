package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobFilename(t *testing.T) {
	name := BlobFilename("ent42", "webp")

	assert.True(t, strings.HasPrefix(name, "ent42-"))
	assert.True(t, strings.HasSuffix(name, ".webp"))

	// Composite names keep concurrent runs for one entity from
	// colliding in the blob store.
	assert.NotEqual(t, name, BlobFilename("ent42", "webp"))
}

func TestStagingIDUnique(t *testing.T) {
	a := StagingID("ent42")
	b := StagingID("ent42")

	assert.True(t, strings.HasPrefix(a, "ent42-"))
	assert.NotEqual(t, a, b)
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "a-b-c.webp", FilenameFromURL("http://files.test/api/files/a-b-c.webp"))
	assert.Equal(t, "photo.webp", FilenameFromURL("/api/files/photo.webp"))
	assert.Equal(t, "", FilenameFromURL("http://files.test/api/files/"))
	assert.Equal(t, "", FilenameFromURL(""))
}
