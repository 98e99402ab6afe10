// Package main vacation home booking API.
//
// @title           Casa Tamariu Booking API
// @version         1.0
// @description     Family vacation-home booking service (calendar, reservations, admin approval).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer"
	adminctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/admin"
	calendarctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/calendar"
	reservationctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/reservation"
	userctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/user"
	"github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/validation"
	"github.com/LuisGlezPruebas/BookingWeb-production/config"
	"github.com/LuisGlezPruebas/BookingWeb-production/repository/mailer"
	resrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/reservation"
	userrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/user"
	calsvc "github.com/LuisGlezPruebas/BookingWeb-production/service/calendar"
	"github.com/LuisGlezPruebas/BookingWeb-production/service/notify"
	ressvc "github.com/LuisGlezPruebas/BookingWeb-production/service/reservation"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// roster
	roster, err := config.LoadRoster(cfg.RosterFile)
	if err != nil {
		log.Error("roster load failed", "file", cfg.RosterFile, "err", err)
		os.Exit(1)
	}

	// repos
	rr := resrepo.New()
	ur := userrepo.New(roster)
	mr := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom)

	if err := resrepo.Seed(ctx, rr); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	// services
	n := notify.New(mr, log, cfg.AdminEmail, cfg.AppURL, 2)
	defer n.Shutdown()

	rs := ressvc.New(rr, ur, n)
	cs := calsvc.New(rr, ur)

	// controllers
	v := validator.New()
	userC := &userctrl.Controller{Users: ur, V: v, Log: log, JWTSecret: cfg.JWTSecret}
	reservationC := &reservationctrl.Controller{Svc: rs, V: v, Log: log}
	calendarC := &calendarctrl.Controller{Svc: cs, Log: log}
	adminC := &adminctrl.Controller{Svc: rs, Calendar: cs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		User:        userC,
		Reservation: reservationC,
		Calendar:    calendarC,
		Admin:       adminC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
