package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/models"
)

type CenterHandler struct{}

func NewCenterHandler() *CenterHandler { return &CenterHandler{} }

type centerReq struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Pincode      string `json:"pincode" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone" validate:"required"`
}

// POST /api/centers (admin)
func (h *CenterHandler) Create(c echo.Context) error {
	var req centerReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err.Error())
	}

	center := models.Center{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
	}
	if err := database.DB.Create(&center).Error; err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "center created successfully",
		"center":  center,
	})
}

// GET /api/centers?is_active=
func (h *CenterHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Center{})
	if v := c.QueryParam("is_active"); v != "" {
		tx = tx.Where("is_active = ?", v == "true")
	}
	var centers []models.Center
	if err := tx.Order("name ASC").Find(&centers).Error; err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"centers": centers})
}

// GET /api/centers/:id
func (h *CenterHandler) Get(c echo.Context) error {
	var center models.Center
	if err := database.DB.First(&center, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "center not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"center": center})
}

type centerUpdateReq struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	IsActive     *bool   `json:"is_active"`
}

// PATCH /api/centers/:id (admin)
//
// Only whitelisted fields are updatable; absent fields stay untouched.
func (h *CenterHandler) Update(c echo.Context) error {
	var center models.Center
	if err := database.DB.First(&center, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "center not found")
		}
		return internal(c, err)
	}

	var req centerUpdateReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err.Error())
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Pincode != nil {
		updates["pincode"] = *req.Pincode
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&center).Updates(updates).Error; err != nil {
			return internal(c, err)
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "center updated successfully",
		"center":  center,
	})
}

// DELETE /api/centers/:id (admin)
//
// Soft deactivation only; attendance and user references stay valid.
func (h *CenterHandler) Deactivate(c echo.Context) error {
	var center models.Center
	if err := database.DB.First(&center, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "center not found")
		}
		return internal(c, err)
	}

	if err := database.DB.Model(&center).Update("is_active", false).Error; err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "center deactivated successfully",
		"center":  center,
	})
}
