package entity

import (
	"time"
)

// Album is a gallery photo kept directly in the staging provider's
// permanent folder; it never passes through the blob store.
type Album struct {
	ID       string `json:"id" firestore:"id"`
	Title    string `json:"title" firestore:"title"`
	URL      string `json:"url" firestore:"url"`
	PublicID string `json:"public_id" firestore:"publicId"`
	Width    int    `json:"width" firestore:"width"`
	Height   int    `json:"height" firestore:"height"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
