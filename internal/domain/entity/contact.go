package entity

import (
	"time"
)

type Contact struct {
	ID        string `json:"id" firestore:"id"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Email     string `json:"email" firestore:"email"`
	Country   string `json:"country,omitempty" firestore:"country,omitempty"`
	Message   string `json:"message" firestore:"message"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
