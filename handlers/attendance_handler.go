package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/middlewares"
	"github.com/upasthiti/attendance-api/models"
)

type AttendanceHandler struct {
	now func() time.Time
}

func NewAttendanceHandler() *AttendanceHandler {
	return &AttendanceHandler{now: time.Now}
}

type markReq struct {
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

// POST /api/attendance/mark
//
// One record per user per calendar day. On Sundays the status is forced to
// sunday_off regardless of the request; otherwise present requires both
// coordinates.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}

	var req markReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err.Error())
	}

	now := h.now()
	today := now.Format(models.DateLayout)

	var existing models.Attendance
	err := database.DB.Where("user_id = ? AND date = ?", u.ID, today).First(&existing).Error
	if err == nil {
		return conflict(c, "attendance already marked for today")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internal(c, err)
	}

	rec := models.Attendance{
		UserID:   u.ID,
		Date:     today,
		CenterID: u.CenterID,
	}

	if now.Weekday() == time.Sunday {
		rec.Status = models.AttendanceSundayOff
	} else {
		status := models.AttendanceStatus(req.Status)
		if !status.Valid() {
			return invalidInput(c, "status must be present, absent or sunday_off")
		}
		if err := models.ValidateMark(status, req.Latitude, req.Longitude); err != nil {
			return invalidInput(c, err.Error())
		}
		rec.Status = status
		rec.Notes = req.Notes
		if status == models.AttendancePresent {
			rec.Latitude = req.Latitude
			rec.Longitude = req.Longitude
		}
	}

	if err := database.DB.Create(&rec).Error; err != nil {
		// A racing request for the same day loses on the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflict(c, "attendance already marked for today")
		}
		return internal(c, err)
	}

	msg := "attendance marked successfully"
	if rec.Status == models.AttendanceSundayOff {
		msg = "sunday automatically marked as off"
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":    msg,
		"attendance": rec,
	})
}

// GET /api/attendance/today
func (h *AttendanceHandler) Today(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}

	now := h.now()
	today := now.Format(models.DateLayout)

	var rec models.Attendance
	err := database.DB.Preload("Center").
		Where("user_id = ? AND date = ?", u.ID, today).First(&rec).Error

	out := map[string]any{
		"attendance": nil,
		"is_sunday":  now.Weekday() == time.Sunday,
		"can_mark":   true,
	}
	switch {
	case err == nil:
		out["attendance"] = rec
		out["can_mark"] = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no record yet
	default:
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /api/attendance/stats?month=&year=
//
// Month is 1-12 and defaults to the current month.
func (h *AttendanceHandler) Stats(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}

	now := h.now()
	month := atoiOr(c.QueryParam("month"), int(now.Month()))
	year := atoiOr(c.QueryParam("year"), now.Year())
	if month < 1 || month > 12 {
		return invalidInput(c, "month must be between 1 and 12")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var rows []models.Attendance
	if err := database.DB.
		Where("user_id = ? AND date >= ? AND date <= ?",
			u.ID, first.Format(models.DateLayout), last.Format(models.DateLayout)).
		Order("date ASC").Find(&rows).Error; err != nil {
		return internal(c, err)
	}

	stats := map[string]int{
		"total":      len(rows),
		"present":    0,
		"absent":     0,
		"sunday_off": 0,
	}
	for _, r := range rows {
		switch r.Status {
		case models.AttendancePresent:
			stats["present"]++
		case models.AttendanceAbsent:
			stats["absent"]++
		case models.AttendanceSundayOff:
			stats["sunday_off"]++
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"stats":      stats,
		"attendance": rows,
	})
}

// GET /api/attendance/my?start_date=&end_date=&page=&limit=
func (h *AttendanceHandler) My(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}

	page, limit := pageParams(c, 30)
	start := c.QueryParam("start_date")
	end := c.QueryParam("end_date")

	tx := database.DB.Model(&models.Attendance{}).Where("user_id = ?", u.ID)
	if start != "" && end != "" {
		tx = tx.Where("date >= ? AND date <= ?", start, end)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return internal(c, err)
	}

	var rows []models.Attendance
	if err := tx.Preload("Center").
		Order("date DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&rows).Error; err != nil {
		return internal(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"attendance":    rows,
		"total_pages":   totalPages(count, limit),
		"current_page":  page,
		"total_records": count,
	})
}
