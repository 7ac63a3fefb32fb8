package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/upasthiti/attendance-api/config"
	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/handlers"
	"github.com/upasthiti/attendance-api/notify"
	"github.com/upasthiti/attendance-api/routes"
)

func main() {
	cfg := config.Load()

	// Fails fast when the database is unreachable.
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Validator = handlers.NewValidator()

	routes.Register(e, cfg, notify.NewSMTPMailer(cfg))

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
