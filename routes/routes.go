package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/upasthiti/attendance-api/config"
	"github.com/upasthiti/attendance-api/handlers"
	"github.com/upasthiti/attendance-api/middlewares"
	"github.com/upasthiti/attendance-api/models"
	"github.com/upasthiti/attendance-api/notify"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, mailer notify.Mailer) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	att := handlers.NewAttendanceHandler()
	lv := handlers.NewLeaveHandler(mailer)
	ctr := handlers.NewCenterHandler()

	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	adminMW := middlewares.RequireRole(models.RoleAdmin)
	managerMW := middlewares.RequireRole(models.RoleManager, models.RoleAdmin)

	e.GET("/health", handlers.Health)

	// ===== Auth =====
	a := e.Group("/api/auth")
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)
	a.GET("/me", auth.Me, authMW)

	// ===== Attendance (all authenticated) =====
	at := e.Group("/api/attendance", authMW)
	at.POST("/mark", att.Mark)
	at.GET("/my", att.My)
	at.GET("/today", att.Today)
	at.GET("/stats", att.Stats)

	// ===== Leaves =====
	l := e.Group("/api/leaves", authMW)
	l.POST("/apply", lv.Apply)
	l.GET("/my", lv.My)
	l.GET("/all", lv.All, managerMW)
	l.PATCH("/:id/status", lv.Decide, managerMW)

	// ===== Centers (reads public, writes admin) =====
	ct := e.Group("/api/centers")
	ct.GET("", ctr.List)
	ct.GET("/:id", ctr.Get)
	ct.POST("", ctr.Create, authMW, adminMW)
	ct.PATCH("/:id", ctr.Update, authMW, adminMW)
	ct.DELETE("/:id", ctr.Deactivate, authMW, adminMW)
}
