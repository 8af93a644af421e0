package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jvaldesol/capacity-api-go/pkg/capacity"
	"github.com/jvaldesol/capacity-api-go/pkg/database"
	"github.com/jvaldesol/capacity-api-go/pkg/models"
)

// loadStoredHolidays fetches the stored holiday calendar for a date range and
// maps the rows to plain holiday records for the engine.
func (h *Handler) loadStoredHolidays(start, end models.Date) ([]models.Holiday, error) {
	var rows []database.Holiday
	if err := h.DB.Where("date >= ? AND date <= ?", start.String(), end.String()).Find(&rows).Error; err != nil {
		return nil, err
	}

	holidays := make([]models.Holiday, 0, len(rows))
	for _, row := range rows {
		date, err := models.ParseDate(row.Date)
		if err != nil {
			// Skip malformed rows instead of failing the whole query
			continue
		}
		holidays = append(holidays, models.Holiday{
			Date:       date,
			Label:      row.Label,
			RegionCode: row.RegionCode,
			Country:    row.Country,
		})
	}
	return holidays, nil
}

// ListHolidays returns stored holidays, optionally filtered by country and year
func (h *Handler) ListHolidays(c *gin.Context) {
	query := h.DB.Order("date asc")
	if country := c.Query("country"); country != "" {
		query = query.Where("country = ?", country)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("date >= ? AND date <= ?", year+"-01-01", year+"-12-31")
	}

	var rows []database.Holiday
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list holidays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": rows})
}

// ImportHolidays bulk-inserts holiday records. Region codes are normalized on
// the way in so the stored calendar uses a single nationwide sentinel, and all
// rows of one request share a batch id for later cleanup.
func (h *Handler) ImportHolidays(c *gin.Context) {
	var req struct {
		Holidays []models.Holiday `json:"holidays"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Holidays) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one holiday is required"})
		return
	}

	batchID := uuid.NewString()
	rows := make([]database.Holiday, 0, len(req.Holidays))
	for _, hol := range req.Holidays {
		if hol.Date.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "holiday date is required"})
			return
		}
		rows = append(rows, database.Holiday{
			Date:       hol.Date.String(),
			Label:      hol.Label,
			RegionCode: capacity.NormalizeRegion(hol.RegionCode),
			Country:    hol.Country,
			BatchID:    batchID,
		})
	}

	if err := h.DB.Create(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not import holidays"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batch_id": batchID,
		"imported": len(rows),
	})
}

// DeleteHoliday removes a single stored holiday by id
func (h *Handler) DeleteHoliday(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.Holiday{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete holiday"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted"})
}
