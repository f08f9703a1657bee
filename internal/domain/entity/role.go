package entity

import (
	"time"
)

// Role is a selectable position label (e.g. "Frontend", "UI/UX")
// referenced by profiles.
type Role struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
