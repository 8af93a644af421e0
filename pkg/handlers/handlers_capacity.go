package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jvaldesol/capacity-api-go/pkg/capacity"
	"github.com/jvaldesol/capacity-api-go/pkg/models"
)

// Summary handles the period summary request: it computes, for one person
// and one date range, the weekend/holiday/workday breakdown, the per-project
// allocated day-equivalents and the remaining available capacity.
func (h *Handler) Summary(c *gin.Context) {
	var input models.SummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holidays := input.Holidays
	if len(holidays) == 0 {
		stored, err := h.loadStoredHolidays(input.StartDate, input.EndDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load holiday calendar"})
			return
		}
		holidays = stored
	}

	summary, err := capacity.Summarize(
		input.Person.ID,
		input.Person.Office,
		input.StartDate,
		input.EndDate,
		input.Assignments,
		holidays,
		input.Projects,
	)
	if err != nil {
		if errors.Is(err, capacity.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, 1, summary.TotalDays)

	c.JSON(http.StatusOK, gin.H{
		"person_id":  input.Person.ID,
		"start_date": input.StartDate,
		"end_date":   input.EndDate,
		"summary":    roundedSummary(summary),
	})
}

// ValidateAssignment handles the overlap validation request. The result is
// advisory: an over-allocation still answers 200, with the first conflicting
// date and the total that day so the caller can present a precise error.
func (h *Handler) ValidateAssignment(c *gin.Context) {
	var input models.ValidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.StartDate.After(input.EndDate.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": capacity.ErrInvalidRange.Error()})
		return
	}

	result := capacity.ValidateAssignment(
		input.PersonID,
		input.StartDate,
		input.EndDate,
		input.AllocatedPercentage,
		input.Assignments,
	)

	h.RecordUsage(c, 1, daysBetween(input.StartDate, input.EndDate))

	c.JSON(http.StatusOK, result)
}

// ClassifyDays handles the day classification request: every day in the
// range tagged as workday, weekend or holiday, plus the bucket counts.
func (h *Handler) ClassifyDays(c *gin.Context) {
	var input models.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.StartDate.After(input.EndDate.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": capacity.ErrInvalidRange.Error()})
		return
	}

	holidays := input.Holidays
	if len(holidays) == 0 {
		stored, err := h.loadStoredHolidays(input.StartDate, input.EndDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load holiday calendar"})
			return
		}
		holidays = stored
	}

	resp := models.ClassifyResponse{}
	for day := input.StartDate; !day.After(input.EndDate.Time); day = day.Next() {
		kind := capacity.ClassifyDay(day, input.Office, holidays)
		resp.Days = append(resp.Days, models.ClassifiedDay{Date: day, Kind: string(kind)})
		resp.TotalDays++
		switch kind {
		case capacity.DayWeekend:
			resp.WeekendDays++
		case capacity.DayHoliday:
			resp.HolidayDays++
		default:
			resp.WorkDays++
		}
	}

	h.RecordUsage(c, 1, resp.TotalDays)

	c.JSON(http.StatusOK, resp)
}

// roundedSummary copies a summary with its fractional fields rounded to one
// decimal for presentation. The engine's output is never rounded in place.
func roundedSummary(s *capacity.Summary) capacity.Summary {
	out := *s
	out.PerProject = make([]capacity.ProjectAllocation, len(s.PerProject))
	for i, p := range s.PerProject {
		p.EffectiveDays = round1(p.EffectiveDays)
		out.PerProject[i] = p
	}
	out.TotalAssignedWorkdays = round1(s.TotalAssignedWorkdays)
	out.UnassignedDays = round1(s.UnassignedDays)
	out.AvailableCapacityPercent = round1(s.AvailableCapacityPercent)
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func daysBetween(start, end models.Date) int {
	count := 0
	for day := start; !day.After(end.Time); day = day.Next() {
		count++
	}
	return count
}
