package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/middlewares"
	"github.com/upasthiti/attendance-api/models"
)

const testPassword = "secret123"

func itoa(n uint) string { return fmt.Sprintf("%d", n) }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Center{}, &models.User{}, &models.Attendance{}, &models.LeaveRequest{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	return db
}

func seedCenter(t *testing.T) models.Center {
	t.Helper()
	center := models.Center{
		Name:         "North Center",
		Address:      "12 Hill Road",
		City:         "Pune",
		State:        "MH",
		Pincode:      "411001",
		ContactEmail: "north@centers.test",
		ContactPhone: "9800000001",
		IsActive:     true,
	}
	if err := database.DB.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	return center
}

func seedUser(t *testing.T, email string, role models.Role, centerID uint) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := models.User{
		Name:     "Test " + string(role),
		Email:    email,
		Password: string(hash),
		Role:     role,
		CenterID: centerID,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// newContext builds an echo context with a JSON body and an optional
// pre-resolved actor, the way RequireAuth would leave it.
func newContext(t *testing.T, method, target, body string, actor *models.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		middlewares.SetCurrentUser(c, actor)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

type fakeMailer struct {
	applied chan string
	decided chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{applied: make(chan string, 4), decided: make(chan string, 4)}
}

func (m *fakeMailer) LeaveApplied(leave *models.LeaveRequest, applicant *models.User) error {
	m.applied <- applicant.Email
	return nil
}

func (m *fakeMailer) LeaveDecided(leave *models.LeaveRequest, applicant *models.User) error {
	m.decided <- applicant.Email
	return nil
}

func waitMail(t *testing.T, ch chan string, what string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s notification", what)
		return ""
	}
}
