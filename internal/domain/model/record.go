// Package model contains domain models passed between layers.
package model

import "time"

// Domain names the profile variant a record list belongs to.
type Domain string

// Supported domains.
const (
	DomainEducation  Domain = "education"
	DomainExperience Domain = "experience"
)

// Record is one education or experience entry as entered by the user.
// Dates are kept as the raw strings the form submitted; parsing happens
// inside the analysis stages so a malformed date never rejects the record.
type Record struct {
	ID             string `json:"id,omitempty"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date,omitempty"`
	PrimaryLabel   string `json:"primary_label"`   // institution or company
	LevelLabel     string `json:"level_label"`     // degree or job position
	SecondaryLabel string `json:"secondary_label"` // subject or location
	Notes          string `json:"notes,omitempty"` // grade or description
}

// TimelineEntry is a Record with parsed dates, duration and level.
type TimelineEntry struct {
	Index          int       `json:"index"`
	Record         Record    `json:"record"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	DurationMonths int       `json:"duration_months"`
	Ongoing        bool      `json:"ongoing"`
	Level          int       `json:"level"`
}

// FindingKind enumerates derived observations about a record set.
type FindingKind string

// Finding kinds.
const (
	FindingGap        FindingKind = "gap"
	FindingOverlap    FindingKind = "overlap"
	FindingDuplicate  FindingKind = "duplicate"
	FindingRegression FindingKind = "regression"
)

// Finding ties an observation back to the records (by input index) it concerns.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Indices []int       `json:"indices"`
	Months  int         `json:"months,omitempty"` // gap length, gaps only
	Message string      `json:"message"`
}

// Severity of a recommendation.
type Severity string

// Severities, ordered from worst to best.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Recommendation is a user-facing advisory message.
type Recommendation struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Bucket is one row of a frequency distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats aggregates counts and durations over a record list.
type Stats struct {
	Total                 int      `json:"total"`
	Completed             int      `json:"completed"`
	Ongoing               int      `json:"ongoing"`
	NotStarted            int      `json:"not_started"`
	Incomplete            int      `json:"incomplete"`
	CompletionRate        int      `json:"completion_rate"`
	Completeness          int      `json:"completeness"`
	AverageDurationMonths float64  `json:"average_duration_months"`
	TotalDurationMonths   int      `json:"total_duration_months"`
	ExperienceYears       float64  `json:"experience_years"`
	DistinctPrimaryLabels int      `json:"distinct_primary_labels"`
	Distribution          []Bucket `json:"distribution"`
	Categories            []Bucket `json:"categories,omitempty"`
}

// Report is the full output of one analysis run.
type Report struct {
	ID              string           `json:"id,omitempty"`
	Domain          Domain           `json:"domain"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
	Timeline        []TimelineEntry  `json:"timeline"`
	Gaps            []Finding        `json:"gaps"`
	Overlaps        []Finding        `json:"overlaps"`
	Duplicates      []Finding        `json:"duplicates"`
	Regressions     []Finding        `json:"regressions"`
	Stats           Stats            `json:"stats"`
	Recommendations []Recommendation `json:"recommendations"`
	Score           int              `json:"score"`
}
