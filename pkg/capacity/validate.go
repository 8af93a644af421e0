package capacity

import (
	"github.com/jvaldesol/capacity-api-go/pkg/models"
)

// ValidationResult is the advisory outcome of checking a proposed assignment.
// It is never an error: the caller decides whether an over-allocation blocks
// the write or is merely reported.
type ValidationResult struct {
	Valid           bool         `json:"valid"`
	ConflictDate    *models.Date `json:"conflict_date,omitempty"`
	TotalPercentage int          `json:"total_percentage,omitempty"`
}

// ValidateAssignment checks whether adding a new assignment at newPercentage
// over [start, end] would push the person's total allocation past 100% on any
// single day. Allocations apply uniformly across their range, so the check
// accumulates contributions day by day across every overlapping assignment;
// a pairwise comparison would miss three 40% assignments that only overlap
// jointly. The first offending day short-circuits the scan.
func ValidateAssignment(personID string, start, end models.Date, newPercentage int, existing []models.Assignment) ValidationResult {
	for day := start; !day.After(end.Time); day = day.Next() {
		total := newPercentage
		for _, a := range existing {
			if a.PersonID != personID {
				continue
			}
			if day.Before(a.StartDate.Time) || day.After(a.EndDate.Time) {
				continue
			}
			total += a.AllocatedPercentage
		}
		if total > 100 {
			conflict := day
			return ValidationResult{
				Valid:           false,
				ConflictDate:    &conflict,
				TotalPercentage: total,
			}
		}
	}
	return ValidationResult{Valid: true}
}
