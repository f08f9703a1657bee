package entity

// MediaStatus tracks the lifecycle of an entity's media attachment
// through the background ingestion pipeline.
type MediaStatus string

const (
	// MediaStatusNone means the entity was created without media.
	MediaStatusNone MediaStatus = "none"
	// MediaStatusPending means a pipeline run is in flight (or was never
	// reconciled after a crash).
	MediaStatusPending MediaStatus = "pending"
	// MediaStatusCompleted means the last run committed; MediaURL resolves.
	MediaStatusCompleted MediaStatus = "completed"
	// MediaStatusFailed means the last run did not commit; MediaURL keeps
	// its previous value.
	MediaStatusFailed MediaStatus = "failed"
)

// Media is the attachment state embedded in every entity that owns one
// uploaded asset. Invariant: Status == completed implies URL resolves in
// the blob store; failed and none imply URL is empty or still points at
// the previous committed object.
type Media struct {
	URL    string      `firestore:"url" json:"url,omitempty"`
	Status MediaStatus `firestore:"status" json:"status"`
}
