package jsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransformJob(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	raw := RawJob{
		JobID:                  "abc123",
		EmployerName:           "Acme Corp",
		JobTitle:               "Backend Engineer",
		JobDescription:         "We sponsor H1B visas. Green card holders welcome.",
		JobCity:                "Austin",
		JobCountry:             "US",
		JobPostedAtDatetimeUTC: now.Add(-3 * time.Hour).Format(time.RFC3339),
		JobApplyLink:           "https://example.com/fallback",
		JobPublisher:           "LinkedIn Jobs",
		ApplyOptions: []ApplyOption{
			{Publisher: "Indeed Jobs", ApplyLink: "https://example.com/apply", IsDirect: true},
		},
	}

	job := transformJob(raw, now)

	assert.Equal(t, "abc123", job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, "3 hours ago", job.PostedTime)
	assert.Equal(t, "Onsite", job.LocationType)
	assert.Equal(t, []string{"H1B", "GC"}, job.VisaStatus)
	assert.Equal(t, "Indeed", job.Source, "apply option publisher should win and lose its Jobs suffix")
	assert.Equal(t, "https://example.com/apply", job.ApplyURL)
	assert.False(t, job.Applied)
}

func TestTransformJob_Fallbacks(t *testing.T) {
	now := time.Now()
	job := transformJob(RawJob{}, now)

	assert.Equal(t, "Untitled Position", job.Title)
	assert.Equal(t, "Unknown Company", job.Company)
	assert.Equal(t, "#", job.ApplyURL)
	assert.Equal(t, "Unknown", job.Source)
	assert.Equal(t, "Just now", job.PostedTime, "unparseable posted date should read as just now")
	assert.Empty(t, job.VisaStatus)
	assert.NotNil(t, job.VisaStatus)
}

func TestLocationType(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawJob
		expected string
	}{
		{"Remote flag wins", RawJob{JobIsRemote: true, JobCity: "Austin", JobCountry: "US"}, "Remote"},
		{"City and country means onsite", RawJob{JobCity: "Austin", JobCountry: "US"}, "Onsite"},
		{"Missing city falls back to hybrid", RawJob{JobCountry: "US"}, "Hybrid"},
		{"No location data falls back to hybrid", RawJob{}, "Hybrid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, locationType(tt.raw))
		})
	}
}

func TestHumanizePostedTime(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		posted   time.Time
		expected string
	}{
		{"Zero time", time.Time{}, "Just now"},
		{"Minutes ago", now.Add(-30 * time.Minute), "Just now"},
		{"One hour ago", now.Add(-90 * time.Minute), "1 hour ago"},
		{"Same day", now.Add(-5 * time.Hour), "5 hours ago"},
		{"Older than a day", now.Add(-72 * time.Hour), "Mar 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizePostedTime(tt.posted, now))
		})
	}
}

func TestCleanSource(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Jobs suffix removed", "LinkedIn Jobs", "LinkedIn"},
		{"Case-insensitive suffix", "Indeed jobs", "Indeed"},
		{"Talent.com shortened", "Talent.com", "Talent"},
		{"Plain name untouched", "Greenhouse", "Greenhouse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanSource(tt.input))
		})
	}
}

func TestVisaKeywords(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    []string
	}{
		{"No keywords", "A regular job description.", []string{}},
		{"H1B variants", "H-1B transfer supported", []string{"H1B"}},
		{"OPT", "STEM OPT candidates encouraged", []string{"OPT"}},
		{"Citizenship requirement", "Must be a US citizen", []string{"USC"}},
		{"Empty description", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, visaKeywords(tt.description))
		})
	}
}
