package entity

import (
	"time"
)

type Experience struct {
	ID               string   `json:"id" firestore:"id"`
	Title            string   `json:"title" firestore:"title"`
	Company          string   `json:"company" firestore:"company"`
	CompanyLogo      string   `json:"company_logo,omitempty" firestore:"companyLogo,omitempty"`
	Location         string   `json:"location,omitempty" firestore:"location,omitempty"`
	Period           string   `json:"period,omitempty" firestore:"period,omitempty"`
	Duration         string   `json:"duration,omitempty" firestore:"duration,omitempty"`
	Type             string   `json:"type,omitempty" firestore:"type,omitempty"`
	Mode             string   `json:"mode,omitempty" firestore:"mode,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty" firestore:"responsibilities,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
