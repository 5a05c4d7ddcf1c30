package jsearch

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Kariqs/jobland-api/internal/types"
)

// RawJob is the wire shape of one JSearch hit.
type RawJob struct {
	JobID                  string        `json:"job_id"`
	EmployerName           string        `json:"employer_name"`
	JobTitle               string        `json:"job_title"`
	JobDescription         string        `json:"job_description"`
	JobCity                string        `json:"job_city"`
	JobCountry             string        `json:"job_country"`
	JobIsRemote            bool          `json:"job_is_remote"`
	JobPostedAtDatetimeUTC string        `json:"job_posted_at_datetime_utc"`
	JobApplyLink           string        `json:"job_apply_link"`
	JobPublisher           string        `json:"job_publisher"`
	ApplyOptions           []ApplyOption `json:"apply_options"`
}

// ApplyOption is one publisher-specific application link.
type ApplyOption struct {
	Publisher string `json:"publisher"`
	ApplyLink string `json:"apply_link"`
	IsDirect  bool   `json:"is_direct"`
}

var (
	jobsSuffixPattern = regexp.MustCompile(`(?i) Jobs$`)
	h1bPattern        = regexp.MustCompile(`(?i)h1b|h-1b`)
	gcPattern         = regexp.MustCompile(`(?i)green card|gc`)
	uscPattern        = regexp.MustCompile(`(?i)usc|us citizen`)
	optPattern        = regexp.MustCompile(`(?i)opt|stem opt`)
)

// transformJob reshapes a raw aggregator hit into the client-facing form:
// publisher names cleaned up, posted time humanized, location type and
// visa keywords derived from the posting.
func transformJob(raw RawJob, now time.Time) types.FrontendJob {
	source := "Unknown"
	applyURL := raw.JobApplyLink
	if applyURL == "" {
		applyURL = "#"
	}

	if len(raw.ApplyOptions) > 0 {
		primary := raw.ApplyOptions[0]
		if s := strings.TrimSpace(primary.Publisher); s != "" {
			source = s
		}
		if primary.ApplyLink != "" {
			applyURL = primary.ApplyLink
		}
	} else if raw.JobPublisher != "" {
		source = raw.JobPublisher
	}
	source = cleanSource(source)

	postedDate, _ := time.Parse(time.RFC3339, raw.JobPostedAtDatetimeUTC)

	title := strings.TrimSpace(raw.JobTitle)
	if title == "" {
		title = "Untitled Position"
	}
	company := strings.TrimSpace(raw.EmployerName)
	if company == "" {
		company = "Unknown Company"
	}

	return types.FrontendJob{
		ID:              raw.JobID,
		Title:           title,
		Company:         company,
		PostedTime:      humanizePostedTime(postedDate, now),
		PostedTimestamp: postedDate.UnixMilli(),
		LocationType:    locationType(raw),
		VisaStatus:      visaKeywords(raw.JobDescription),
		Source:          source,
		ApplyURL:        applyURL,
		Applied:         false,
	}
}

// cleanSource normalizes aggregator publisher names.
func cleanSource(source string) string {
	source = jobsSuffixPattern.ReplaceAllString(source, "")
	source = strings.ReplaceAll(source, "Smart Recruiters Jobs", "SmartRecruiters")
	source = strings.ReplaceAll(source, "Jobs by SmartRecruiters", "SmartRecruiters")
	source = strings.ReplaceAll(source, "Talent.com", "Talent")
	return strings.TrimSpace(source)
}

// humanizePostedTime renders the posting age the way the client shows it.
func humanizePostedTime(postedDate, now time.Time) string {
	if postedDate.IsZero() {
		return "Just now"
	}
	hoursAgo := int(now.Sub(postedDate).Hours())
	switch {
	case hoursAgo < 1:
		return "Just now"
	case hoursAgo == 1:
		return "1 hour ago"
	case hoursAgo < 24:
		return fmt.Sprintf("%d hours ago", hoursAgo)
	default:
		return postedDate.Format("Jan 2")
	}
}

// locationType derives Remote/Onsite/Hybrid from the posting fields.
func locationType(raw RawJob) string {
	if raw.JobIsRemote {
		return "Remote"
	}
	if raw.JobCity != "" && raw.JobCountry != "" {
		return "Onsite"
	}
	return "Hybrid"
}

// visaKeywords scans the description for sponsorship-related terms.
func visaKeywords(description string) []string {
	visas := []string{}
	if description == "" {
		return visas
	}
	if h1bPattern.MatchString(description) {
		visas = append(visas, "H1B")
	}
	if gcPattern.MatchString(description) {
		visas = append(visas, "GC")
	}
	if uscPattern.MatchString(description) {
		visas = append(visas, "USC")
	}
	if optPattern.MatchString(description) {
		visas = append(visas, "OPT")
	}
	return visas
}
