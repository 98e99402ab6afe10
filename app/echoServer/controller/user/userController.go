package user

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	userrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/user"
	"github.com/LuisGlezPruebas/BookingWeb-production/util/hash"
	jwtutil "github.com/LuisGlezPruebas/BookingWeb-production/util/jwt"
)

type Controller struct {
	Users     userrepo.Repo
	V         *validator.Validate
	Log       *slog.Logger
	JWTSecret string
}

// List the household roster
// @Summary      List users
// @Description  The fixed roster used by the profile picker
// @Tags         users
// @Produce      json
// @Success      200  {array}  model.User
// @Router       /api/users [get]
func (h *Controller) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		h.Log.Error("list users", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, users)
}

// Login as admin
// @Summary      Admin login
// @Description  Exchange the admin's username and password for a JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /api/login [post]
func (h *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	u, err := h.Users.ByUsername(c.Request().Context(), req.Username)
	if err != nil {
		h.Log.Error("login lookup", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	// Same denial for unknown user, non-admin, and bad password.
	if u == nil || !u.IsAdmin || !hash.Check(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	token, err := jwtutil.Issue(h.JWTSecret, u.ID, 24)
	if err != nil {
		h.Log.Error("issue token", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": u})
}
