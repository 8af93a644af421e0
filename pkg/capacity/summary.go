package capacity

import (
	"errors"
	"sort"

	"github.com/jvaldesol/capacity-api-go/pkg/models"
)

// ErrInvalidRange is reported when a query's start date is after its end date
var ErrInvalidRange = errors.New("start date is after end date")

// ProjectAllocation is the per-project slice of a period summary
type ProjectAllocation struct {
	ProjectID     string  `json:"project_id"`
	Label         string  `json:"label"`
	EffectiveDays float64 `json:"effective_days"`
	Percentage    int     `json:"percentage"`
}

// Summary is the aggregated capacity breakdown for one person over one period
type Summary struct {
	TotalDays                int                 `json:"total_days"`
	WeekendDays              int                 `json:"weekend_days"`
	HolidayDays              int                 `json:"holiday_days"`
	WorkDays                 int                 `json:"work_days"`
	PerProject               []ProjectAllocation `json:"per_project"`
	TotalAssignedWorkdays    float64             `json:"total_assigned_workdays"`
	UnassignedDays           float64             `json:"unassigned_days"`
	AvailableCapacityPercent float64             `json:"available_capacity_percent"`
}

// Summarize computes the capacity breakdown for personID over [start, end]:
// how many days are weekends, holidays or workdays, how the workdays split
// across the person's project assignments, and what fraction of capacity is
// left unassigned. Day counts are integers; effective days and percentages
// stay fractional and are only rounded at presentation time.
//
// A holiday falling on a weekend counts as weekend only, so
// TotalDays == WeekendDays + HolidayDays + WorkDays always holds.
func Summarize(personID, office string, start, end models.Date, assignments []models.Assignment, holidays []models.Holiday, projects []models.Project) (*Summary, error) {
	if start.After(end.Time) {
		return nil, ErrInvalidRange
	}

	s := &Summary{}
	for day := start; !day.After(end.Time); day = day.Next() {
		s.TotalDays++
		switch ClassifyDay(day, office, holidays) {
		case DayWeekend:
			s.WeekendDays++
		case DayHoliday:
			s.HolidayDays++
		}
	}
	s.WorkDays = s.TotalDays - s.WeekendDays - s.HolidayDays

	projectIndex := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		projectIndex[p.ID] = p
	}

	buckets := make(map[string]*ProjectAllocation)
	for _, a := range assignments {
		if a.PersonID != personID {
			continue
		}
		if a.EndDate.Before(start.Time) || a.StartDate.After(end.Time) {
			continue
		}

		// Clip the assignment to the query period before counting
		clipStart := a.StartDate
		if clipStart.Before(start.Time) {
			clipStart = start
		}
		clipEnd := a.EndDate
		if clipEnd.After(end.Time) {
			clipEnd = end
		}

		assignmentWorkDays := 0
		for day := clipStart; !day.After(clipEnd.Time); day = day.Next() {
			if ClassifyDay(day, office, holidays) == DayWorkday {
				assignmentWorkDays++
			}
		}

		effective := float64(assignmentWorkDays) * float64(a.AllocatedPercentage) / 100

		bucket, ok := buckets[a.ProjectID]
		if !ok {
			bucket = &ProjectAllocation{
				ProjectID: a.ProjectID,
				Label:     projectLabel(a.ProjectID, projectIndex),
			}
			buckets[a.ProjectID] = bucket
		}
		bucket.EffectiveDays += effective
		bucket.Percentage = a.AllocatedPercentage
	}

	s.PerProject = make([]ProjectAllocation, 0, len(buckets))
	for _, bucket := range buckets {
		s.PerProject = append(s.PerProject, *bucket)
		s.TotalAssignedWorkdays += bucket.EffectiveDays
	}
	sort.Slice(s.PerProject, func(i, j int) bool {
		return s.PerProject[i].ProjectID < s.PerProject[j].ProjectID
	})

	// Over-committed historical data must never surface as negative
	// availability; clamp instead of propagating.
	s.UnassignedDays = float64(s.WorkDays) - s.TotalAssignedWorkdays
	if s.UnassignedDays < 0 {
		s.UnassignedDays = 0
	}
	if s.WorkDays > 0 {
		s.AvailableCapacityPercent = s.UnassignedDays / float64(s.WorkDays) * 100
	}

	return s, nil
}

func projectLabel(projectID string, projects map[string]models.Project) string {
	p, ok := projects[projectID]
	if !ok {
		return projectID
	}
	return p.Code + " - " + p.Name
}
