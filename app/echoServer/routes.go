package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	adminctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/admin"
	calendarctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/calendar"
	reservationctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/reservation"
	userctrl "github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/controller/user"
)

type C struct {
	User        *userctrl.Controller
	Reservation *reservationctrl.Controller
	Calendar    *calendarctrl.Controller
	Admin       *adminctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public: the SPA picks a profile instead of logging in, so user routes
	// carry the requester id themselves.
	pub := e.Group("/api")
	pub.GET("/users", c.User.List)
	pub.POST("/login", c.User.Login)

	pub.GET("/user/calendar/:year", c.Calendar.Year)
	pub.GET("/user/reservations/:year", c.Reservation.Mine)
	pub.POST("/user/reservations", c.Reservation.Create)
	pub.PATCH("/user/reservations/:id", c.Reservation.Modify)
	pub.DELETE("/user/reservations/:id", c.Reservation.Cancel)

	// Admin: JWT from /api/login.
	admin := e.Group("/api/admin")
	admin.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))

	admin.GET("/stats/:year", c.Admin.Stats)
	admin.GET("/reservations/:year", c.Admin.Approved)
	admin.GET("/all-reservations/:year", c.Admin.All)
	admin.GET("/reservations/pending/:year", c.Admin.Pending)
	admin.GET("/reservations/history/:year", c.Admin.History)
	admin.PATCH("/reservations/:id/status", c.Admin.SetStatus)
}
