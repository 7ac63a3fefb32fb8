package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator { return &Validator{v: validator.New()} }

func (cv *Validator) Validate(i any) error { return cv.v.Struct(i) }

// atoiOr parses s, falling back to def on empty or invalid input.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

const maxPageSize = 100

// pageParams reads page/limit query params with clamped defaults.
func pageParams(c echo.Context, defLimit int) (page, limit int) {
	page = atoiOr(c.QueryParam("page"), 1)
	limit = atoiOr(c.QueryParam("limit"), defLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(count int64, limit int) int64 {
	return (count + int64(limit) - 1) / int64(limit)
}

/* ---- error taxonomy responders ---- */

func invalidInput(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{"error": msg})
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]any{"error": msg})
}

func conflict(c echo.Context, msg string) error {
	return c.JSON(http.StatusConflict, map[string]any{"error": msg})
}

func internal(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
}
