package entity

import (
	"time"
)

type Education struct {
	ID             string `json:"id" firestore:"id"`
	ProfileID      string `json:"profile_id" firestore:"profileId"`
	Degree         string `json:"degree" firestore:"degree"`
	Institution    string `json:"institution" firestore:"institution"`
	GraduationYear int    `json:"graduation_year,omitempty" firestore:"graduationYear,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
