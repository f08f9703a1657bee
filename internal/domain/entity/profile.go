package entity

import (
	"time"
)

// Profile is a team member's public page. The photo goes through the
// media ingestion pipeline like any other attachment.
type Profile struct {
	ID       string   `json:"id" firestore:"id"`
	UserID   string   `json:"user_id" firestore:"userId"`
	Bio      string   `json:"bio,omitempty" firestore:"bio,omitempty"`
	Year     int      `json:"year,omitempty" firestore:"year,omitempty"`
	Phone    string   `json:"phone,omitempty" firestore:"phone,omitempty"`
	Location string   `json:"location,omitempty" firestore:"location,omitempty"`
	Degree   string   `json:"degree,omitempty" firestore:"degree,omitempty"`
	Roles    []string `json:"roles,omitempty" firestore:"roles,omitempty"`
	Tools    []string `json:"tools,omitempty" firestore:"tools,omitempty"`

	Photo Media `json:"photo" firestore:"photo"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
