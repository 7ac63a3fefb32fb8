package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/middlewares"
	"github.com/upasthiti/attendance-api/models"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		"jti": uuid.NewString(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=teacher manager admin"`
	CenterID uint   `json:"center_id" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err.Error())
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleTeacher
	}

	var dup models.User
	if err := database.DB.Where("email = ?", email).First(&dup).Error; err == nil {
		return conflict(c, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internal(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return internal(c, err)
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
		CenterID: req.CenterID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflict(c, "email already registered")
		}
		return internal(c, err)
	}

	token, err := h.signJWT(user.ID)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "user registered successfully",
		"token":   token,
		"user":    user,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return invalidInput(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err.Error())
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	// Same response for unknown email and wrong password, so the endpoint
	// cannot be used to enumerate accounts.
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorized(c, "invalid credentials")
		}
		return internal(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return unauthorized(c, "invalid credentials")
	}

	token, err := h.signJWT(user.ID)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return unauthorized(c, "authentication required")
	}
	var user models.User
	if err := database.DB.Preload("Center").First(&user, u.ID).Error; err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}
