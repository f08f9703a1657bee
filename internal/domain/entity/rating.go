package entity

import (
	"time"
)

// Rating is an anonymous site rating, 1 to 5 stars with a label.
type Rating struct {
	ID     string `json:"id" firestore:"id"`
	Label  string `json:"label" firestore:"label"`
	Rating int    `json:"rating" firestore:"rating"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// RatingSummary aggregates all submitted ratings.
type RatingSummary struct {
	Average      float64       `json:"average"`
	Total        int64         `json:"total"`
	Distribution map[int]int64 `json:"distribution"`
}
