package capacity

import (
	"testing"

	"github.com/jvaldesol/capacity-api-go/pkg/models"
)

func TestValidateAssignment_Accepts(t *testing.T) {
	existing := []models.Assignment{
		{ID: "a1", PersonID: "p1", ProjectID: "prj1",
			StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-05"),
			AllocatedPercentage: 50},
	}

	result := ValidateAssignment("p1", models.MustDate("2024-01-01"), models.MustDate("2024-01-05"), 50, existing)
	if !result.Valid {
		t.Errorf("Expected 50+50 to be accepted, got conflict on %v with total %d", result.ConflictDate, result.TotalPercentage)
	}
}

func TestValidateAssignment_RejectsOverlap(t *testing.T) {
	existing := []models.Assignment{
		{ID: "a1", PersonID: "p1", ProjectID: "prj1",
			StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-03"),
			AllocatedPercentage: 60},
	}

	// Second 60% assignment overlaps the first only on 2024-01-03
	result := ValidateAssignment("p1", models.MustDate("2024-01-03"), models.MustDate("2024-01-05"), 60, existing)
	if result.Valid {
		t.Fatal("Expected two 60% assignments overlapping on 2024-01-03 to be rejected")
	}
	if result.ConflictDate.String() != "2024-01-03" {
		t.Errorf("Expected conflict date 2024-01-03, got %s", result.ConflictDate)
	}
	if result.TotalPercentage != 120 {
		t.Errorf("Expected total 120 on the conflict date, got %d", result.TotalPercentage)
	}
}

func TestValidateAssignment_OrderSymmetry(t *testing.T) {
	a := models.Assignment{ID: "a1", PersonID: "p1", ProjectID: "prj1",
		StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-05"),
		AllocatedPercentage: 60}
	b := models.Assignment{ID: "a2", PersonID: "p1", ProjectID: "prj2",
		StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-05"),
		AllocatedPercentage: 60}

	// Whichever is inserted second gets rejected
	afterA := ValidateAssignment("p1", b.StartDate, b.EndDate, b.AllocatedPercentage, []models.Assignment{a})
	afterB := ValidateAssignment("p1", a.StartDate, a.EndDate, a.AllocatedPercentage, []models.Assignment{b})

	if afterA.Valid || afterB.Valid {
		t.Error("Expected the second insertion to be rejected in both orders")
	}
	if afterA.TotalPercentage != afterB.TotalPercentage {
		t.Errorf("Expected the same total in both orders, got %d and %d", afterA.TotalPercentage, afterB.TotalPercentage)
	}
}

func TestValidateAssignment_JointOverlap(t *testing.T) {
	// Three 40% assignments only exceed 100 where all three overlap, which a
	// pairwise check would miss.
	existing := []models.Assignment{
		{ID: "a1", PersonID: "p1", ProjectID: "prj1",
			StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-10"),
			AllocatedPercentage: 40},
		{ID: "a2", PersonID: "p1", ProjectID: "prj2",
			StartDate: models.MustDate("2024-01-05"), EndDate: models.MustDate("2024-01-15"),
			AllocatedPercentage: 40},
	}

	result := ValidateAssignment("p1", models.MustDate("2024-01-08"), models.MustDate("2024-01-12"), 40, existing)
	if result.Valid {
		t.Fatal("Expected three jointly overlapping 40% assignments to be rejected")
	}
	if result.ConflictDate.String() != "2024-01-08" {
		t.Errorf("Expected first conflict on 2024-01-08, got %s", result.ConflictDate)
	}
	if result.TotalPercentage != 120 {
		t.Errorf("Expected total 120, got %d", result.TotalPercentage)
	}
}

func TestValidateAssignment_IgnoresOtherPersons(t *testing.T) {
	existing := []models.Assignment{
		{ID: "a1", PersonID: "p2", ProjectID: "prj1",
			StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-31"),
			AllocatedPercentage: 100},
	}

	result := ValidateAssignment("p1", models.MustDate("2024-01-01"), models.MustDate("2024-01-31"), 100, existing)
	if !result.Valid {
		t.Error("Expected another person's assignments not to count against p1")
	}
}

func TestValidateAssignment_ExactCapacity(t *testing.T) {
	existing := []models.Assignment{
		{ID: "a1", PersonID: "p1", ProjectID: "prj1",
			StartDate: models.MustDate("2024-01-01"), EndDate: models.MustDate("2024-01-05"),
			AllocatedPercentage: 70},
	}

	// Exactly 100 is allowed; only past 100 fails
	result := ValidateAssignment("p1", models.MustDate("2024-01-01"), models.MustDate("2024-01-05"), 30, existing)
	if !result.Valid {
		t.Error("Expected a total of exactly 100 to be accepted")
	}
}
