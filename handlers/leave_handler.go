package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/middlewares"
	"github.com/upasthiti/attendance-api/models"
	"github.com/upasthiti/attendance-api/notify"
)

type LeaveHandler struct {
	Mailer notify.Mailer
}

func NewLeaveHandler(mailer notify.Mailer) *LeaveHandler {
	return &LeaveHandler{Mailer: mailer}
}

type applyReq struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

type decideReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// POST /api/leaves/apply
func (h *LeaveHandler) Apply(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}

	var req applyReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err.Error())
	}
	// YYYY-MM-DD compares correctly as a string.
	if req.StartDate > req.EndDate {
		return invalidInput(c, "end date must be after start date")
	}

	leave := models.LeaveRequest{
		UserID:    u.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}
	if err := database.DB.Create(&leave).Error; err != nil {
		return internal(c, err)
	}

	h.dispatch(func() error { return h.Mailer.LeaveApplied(&leave, u) })

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "leave application submitted successfully",
		"leave":   leave,
	})
}

// PATCH /api/leaves/:id/status
//
// A request is decided at most once. The guard is the conditional update on
// status=pending: of two racing decisions exactly one updates a row.
func (h *LeaveHandler) Decide(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}

	var req decideReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	status := models.LeaveStatus(req.Status)
	if !status.Decision() {
		return invalidInput(c, "status must be approved or rejected")
	}

	var leave models.LeaveRequest
	if err := database.DB.First(&leave, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "leave request not found")
		}
		return internal(c, err)
	}
	if leave.Status != models.LeavePending {
		return conflict(c, "leave request already processed")
	}

	now := time.Now()
	res := database.DB.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", leave.ID, models.LeavePending).
		Updates(map[string]any{
			"status":         status,
			"decided_by":     u.ID,
			"decided_at":     now,
			"decision_notes": req.Notes,
		})
	if res.Error != nil {
		return internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return conflict(c, "leave request already processed")
	}

	if err := database.DB.Preload("User").First(&leave, leave.ID).Error; err != nil {
		return internal(c, err)
	}

	applicant := leave.User
	h.dispatch(func() error { return h.Mailer.LeaveDecided(&leave, applicant) })

	return c.JSON(http.StatusOK, map[string]any{
		"message": "leave " + string(status) + " successfully",
		"leave":   leave,
	})
}

// GET /api/leaves/my?status=&page=&limit=
func (h *LeaveHandler) My(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}
	return h.list(c, database.DB.Model(&models.LeaveRequest{}).Where("user_id = ?", u.ID))
}

// GET /api/leaves/all?status=&page=&limit=
func (h *LeaveHandler) All(c echo.Context) error {
	return h.list(c, database.DB.Model(&models.LeaveRequest{}))
}

func (h *LeaveHandler) list(c echo.Context, tx *gorm.DB) error {
	if status := c.QueryParam("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	page, limit := pageParams(c, 20)

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return internal(c, err)
	}

	var rows []models.LeaveRequest
	if err := tx.Preload("User").Preload("Approver").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&rows).Error; err != nil {
		return internal(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"leaves":        rows,
		"total_pages":   totalPages(count, limit),
		"current_page":  page,
		"total_records": count,
	})
}

// dispatch runs a notification off the request goroutine. Mail failures are
// logged and never surfaced; the state change already committed.
func (h *LeaveHandler) dispatch(send func() error) {
	if h.Mailer == nil {
		return
	}
	go func() {
		if err := send(); err != nil {
			log.Printf("leave notification failed: %v", err)
		}
	}()
}
