package capacity

import (
	"strings"
	"time"

	"github.com/jvaldesol/capacity-api-go/pkg/models"
)

// DayKind classifies a single calendar day
type DayKind string

const (
	DayWorkday DayKind = "workday"
	DayWeekend DayKind = "weekend"
	DayHoliday DayKind = "holiday"
)

// nationwide is the canonical sentinel for a holiday observed everywhere.
// Source data uses both an empty region and the literal "NACIONAL"; both
// collapse to this at the loading boundary so the engine only ever branches
// on one value.
const nationwide = ""

// NormalizeRegion canonicalizes a holiday region code
func NormalizeRegion(region string) string {
	r := strings.TrimSpace(region)
	if strings.EqualFold(r, "NACIONAL") {
		return nationwide
	}
	return r
}

// IsWeekend reports whether the date falls on a Saturday or Sunday
func IsWeekend(d models.Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether some holiday record matches the date exactly and
// is observed for the given office (nationwide or same region).
func IsHoliday(d models.Date, office string, holidays []models.Holiday) bool {
	for _, h := range holidays {
		if !h.Date.Equal(d.Time) {
			continue
		}
		region := NormalizeRegion(h.RegionCode)
		if region == nationwide || region == office {
			return true
		}
	}
	return false
}

// ClassifyDay buckets a date as weekend, holiday or workday. Weekend takes
// precedence: a holiday falling on a Saturday is counted as weekend so the
// two buckets never overlap in aggregation.
func ClassifyDay(d models.Date, office string, holidays []models.Holiday) DayKind {
	if IsWeekend(d) {
		return DayWeekend
	}
	if IsHoliday(d, office, holidays) {
		return DayHoliday
	}
	return DayWorkday
}
