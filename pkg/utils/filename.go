package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobFilename builds the name a committed media object is stored under.
// The entity id plus a random suffix keeps names unique even when two
// runs for the same entity commit within the same clock tick.
func BlobFilename(entityID, ext string) string {
	ts := time.Now().UTC().Format("20060102150405")
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%s-%s.%s", entityID, ts, suffix, ext)
}

// StagingID names the transient object one pipeline run owns in the
// staging provider. Distinct from BlobFilename so a crashed run never
// collides with a later retry for the same entity.
func StagingID(entityID string) string {
	return fmt.Sprintf("%s-%d-%s", entityID, time.Now().UnixNano(), uuid.New().String()[:8])
}

// FilenameFromURL extracts the blob filename from a served media URL.
// Returns "" when the url has no path segments.
func FilenameFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return ""
	}
	return url[idx+1:]
}
