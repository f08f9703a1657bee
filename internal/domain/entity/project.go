package entity

import (
	"time"
)

type Project struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty" firestore:"techStack,omitempty"`
	Features    []string `json:"features,omitempty" firestore:"features,omitempty"`
	Role        string   `json:"role,omitempty" firestore:"role,omitempty"`
	DemoURL     string   `json:"demo_url,omitempty" firestore:"demoUrl,omitempty"`
	RepoURL     string   `json:"repo_url,omitempty" firestore:"repoUrl,omitempty"`
	Published   bool     `json:"published" firestore:"published"`
	Pinned      bool     `json:"pinned" firestore:"pinned"`

	Media Media `json:"media" firestore:"media"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
