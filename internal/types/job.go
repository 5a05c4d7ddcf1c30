package types

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is the structured output of job extraction from a scraped page.
// All fields are required non-empty after validation.
type JobPosting struct {
	JobTitle       string   `json:"jobTitle"`
	Company        string   `json:"company"`
	JobDescription string   `json:"jobDescription"`
	RequiredSkills []string `json:"requiredSkills"`
}

// SavedJob is a job application the user recorded for tracking.
type SavedJob struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	LocationType string    `json:"locationType"`
	Source       string    `json:"source"`
	ApplyURL     string    `json:"applyUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FrontendJob is one search result shaped for the client, assembled from a
// raw aggregator hit.
type FrontendJob struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	PostedTime      string   `json:"postedTime"`
	PostedTimestamp int64    `json:"postedTimestamp"`
	LocationType    string   `json:"locationType"`
	VisaStatus      []string `json:"visaStatus"`
	Source          string   `json:"source"`
	ApplyURL        string   `json:"applyUrl"`
	Applied         bool     `json:"applied"`
}
