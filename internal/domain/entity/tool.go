package entity

import (
	"time"
)

// Tool is an item on the tech-stack grid. Tool icons are small, so the
// upload runs the pipeline synchronously inside the request.
type Tool struct {
	ID    string `json:"id" firestore:"id"`
	Title string `json:"title" firestore:"title"`

	Media Media `json:"media" firestore:"media"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
