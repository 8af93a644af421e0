package models

// Person represents a staff member from the personnel registry
type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Office string `json:"office,omitempty"`
}

// Project is a read-only reference used for labeling allocations
type Project struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Assignment commits a fraction of a person's working day to a project
// for every day in [StartDate, EndDate], both inclusive.
type Assignment struct {
	ID                  string `json:"id"`
	PersonID            string `json:"person_id"`
	ProjectID           string `json:"project_id"`
	StartDate           Date   `json:"start_date"`
	EndDate             Date   `json:"end_date"`
	AllocatedPercentage int    `json:"allocated_percentage"`
}

// Holiday is a single observed non-working day. An empty RegionCode means
// the holiday is observed nationwide; otherwise it applies only to persons
// whose office matches the region.
type Holiday struct {
	Date       Date   `json:"date"`
	Label      string `json:"label"`
	RegionCode string `json:"region_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// SummaryInput is the data structure for the period summary endpoint.
// The caller supplies current snapshots of the reference records; when the
// holidays slice is omitted the stored holiday calendar is used instead.
type SummaryInput struct {
	Person      Person       `json:"person"`
	StartDate   Date         `json:"start_date"`
	EndDate     Date         `json:"end_date"`
	Assignments []Assignment `json:"assignments"`
	Holidays    []Holiday    `json:"holidays"`
	Projects    []Project    `json:"projects"`
}

// ValidateInput is the data structure for the assignment validation endpoint
type ValidateInput struct {
	PersonID            string       `json:"person_id"`
	StartDate           Date         `json:"start_date"`
	EndDate             Date         `json:"end_date"`
	AllocatedPercentage int          `json:"allocated_percentage"`
	Assignments         []Assignment `json:"assignments"`
}

// ClassifyInput is the data structure for the day classification endpoint
type ClassifyInput struct {
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	Office    string    `json:"office,omitempty"`
	Holidays  []Holiday `json:"holidays"`
}

// ClassifiedDay pairs a calendar date with its classification
type ClassifiedDay struct {
	Date Date   `json:"date"`
	Kind string `json:"kind"`
}

// ClassifyResponse is the result of classifying every day in a range
type ClassifyResponse struct {
	Days        []ClassifiedDay `json:"days"`
	TotalDays   int             `json:"total_days"`
	WeekendDays int             `json:"weekend_days"`
	HolidayDays int             `json:"holiday_days"`
	WorkDays    int             `json:"work_days"`
}
