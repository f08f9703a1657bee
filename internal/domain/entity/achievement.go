package entity

import (
	"time"
)

// Achievement is a certificate or award shown on the portfolio. Its
// image (or first PDF page) goes through the media ingestion pipeline.
type Achievement struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Issuer      string   `json:"issuer" firestore:"issuer"`
	Label       string   `json:"label,omitempty" firestore:"label,omitempty"`
	IssueDate   string   `json:"issue_date,omitempty" firestore:"issueDate,omitempty"`
	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	Category    string   `json:"category,omitempty" firestore:"category,omitempty"`
	Level       string   `json:"level,omitempty" firestore:"level,omitempty"`
	Tags        []string `json:"tags,omitempty" firestore:"tags,omitempty"`
	Pinned      bool     `json:"pinned" firestore:"pinned"`

	Media Media `json:"media" firestore:"media"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
