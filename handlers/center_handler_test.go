package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/models"
)

func centerContext(t *testing.T, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newContext(t, method, "/api/centers/"+id, body, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestCenterCRUD(t *testing.T) {
	setupTestDB(t)
	h := NewCenterHandler()

	// create
	c, rec := newContext(t, http.MethodPost, "/api/centers",
		`{"name":"South Center","address":"3 Lake View","city":"Chennai","state":"TN","pincode":"600001","contact_email":"south@centers.test","contact_phone":"9800000002"}`, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	created, _ := out["center"].(map[string]any)
	if created["is_active"] != true {
		t.Fatalf("new center should be active: %#v", created)
	}

	var center models.Center
	if err := database.DB.First(&center).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	id := itoa(center.ID)

	// missing contact email → 400
	c, rec = newContext(t, http.MethodPost, "/api/centers",
		`{"name":"Bad","address":"x","city":"y","state":"z","pincode":"1","contact_phone":"2"}`, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("create invalid: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}

	// get
	c, rec = centerContext(t, http.MethodGet, id, "")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	// get unknown → 404
	c, rec = centerContext(t, http.MethodGet, "99999", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("get unknown: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	// partial update touches only sent fields
	c, rec = centerContext(t, http.MethodPatch, id, `{"contact_phone":"9811111111"}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rec.Code, rec.Body.String())
	}
	if err := database.DB.First(&center, center.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if center.ContactPhone != "9811111111" || center.Name != "South Center" {
		t.Fatalf("partial update wrong: %+v", center)
	}

	// deactivate is soft
	c, rec = centerContext(t, http.MethodDelete, id, "")
	if err := h.Deactivate(c); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if err := database.DB.First(&center, center.ID).Error; err != nil {
		t.Fatalf("center must survive deactivation: %v", err)
	}
	if center.IsActive {
		t.Fatalf("center should be inactive: %+v", center)
	}
}

func TestCenterListFiltersActive(t *testing.T) {
	setupTestDB(t)
	h := NewCenterHandler()

	active := seedCenter(t)
	inactive := models.Center{
		Name: "Old Center", Address: "a", City: "b", State: "c", Pincode: "1",
		ContactEmail: "old@centers.test", ContactPhone: "2", IsActive: false,
	}
	if err := database.DB.Create(&inactive).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	// an explicitly-false flag must survive Create
	if err := database.DB.First(&inactive, inactive.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if inactive.IsActive {
		t.Fatalf("inactive seed stored as active: %+v", inactive)
	}

	c, rec := newContext(t, http.MethodGet, "/api/centers?is_active=true", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := decodeBody(t, rec)
	centers, _ := out["centers"].([]any)
	if len(centers) != 1 {
		t.Fatalf("expected 1 active center got %d", len(centers))
	}
	row, _ := centers[0].(map[string]any)
	if row["name"] != active.Name {
		t.Fatalf("unexpected center: %#v", row)
	}

	// no filter returns both
	c, rec = newContext(t, http.MethodGet, "/api/centers", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("list all: %v", err)
	}
	out = decodeBody(t, rec)
	centers, _ = out["centers"].([]any)
	if len(centers) != 2 {
		t.Fatalf("expected 2 centers got %d", len(centers))
	}
}
