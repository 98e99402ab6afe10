package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/LuisGlezPruebas/BookingWeb-production/app/echoServer/jwtx"
	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	calsvc "github.com/LuisGlezPruebas/BookingWeb-production/service/calendar"
	ressvc "github.com/LuisGlezPruebas/BookingWeb-production/service/reservation"
)

type Controller struct {
	Svc      ressvc.Service
	Calendar calsvc.Service
	V        *validator.Validate
	Log      *slog.Logger
}

type UpdateStatusReq struct {
	Status       string `json:"status" validate:"required"`
	AdminMessage string `json:"adminMessage"`
}

// GET /api/admin/stats/:year
// @Summary      Yearly reservation statistics
// @Tags         admin
// @Produce      json
// @Param        year  path  int  true  "Year"
// @Success      200  {object}  model.ReservationStats
// @Security     BearerAuth
// @Router       /api/admin/stats/{year} [get]
func (h *Controller) Stats(c echo.Context) error {
	year, ok := h.year(c)
	if !ok {
		return nil
	}
	stats, err := h.Calendar.YearStats(c.Request().Context(), year)
	if err != nil {
		h.Log.Error("stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, stats)
}

// GET /api/admin/reservations/:year
// @Summary      Approved reservations for a year
// @Tags         admin
// @Produce      json
// @Param        year  path  int  true  "Year"
// @Success      200  {array}  model.ReservationWithUser
// @Security     BearerAuth
// @Router       /api/admin/reservations/{year} [get]
func (h *Controller) Approved(c echo.Context) error {
	return h.list(c, h.Svc.ApprovedByYear)
}

// GET /api/admin/all-reservations/:year
// @Summary      Every reservation of a year, all statuses
// @Tags         admin
// @Produce      json
// @Param        year  path  int  true  "Year"
// @Success      200  {array}  model.ReservationWithUser
// @Security     BearerAuth
// @Router       /api/admin/all-reservations/{year} [get]
func (h *Controller) All(c echo.Context) error {
	return h.list(c, h.Svc.AllByYear)
}

// GET /api/admin/reservations/pending/:year
// @Summary      Requests awaiting a decision (pending or modified)
// @Tags         admin
// @Produce      json
// @Param        year  path  int  true  "Year"
// @Success      200  {array}  model.ReservationWithUser
// @Security     BearerAuth
// @Router       /api/admin/reservations/pending/{year} [get]
func (h *Controller) Pending(c echo.Context) error {
	return h.list(c, h.Svc.PendingByYear)
}

// GET /api/admin/reservations/history/:year
// @Summary      Decided reservations (approved, rejected, cancelled)
// @Tags         admin
// @Produce      json
// @Param        year  path  int  true  "Year"
// @Success      200  {array}  model.ReservationWithUser
// @Security     BearerAuth
// @Router       /api/admin/reservations/history/{year} [get]
func (h *Controller) History(c echo.Context) error {
	return h.list(c, h.Svc.HistoryByYear)
}

// PATCH /api/admin/reservations/:id/status
// @Summary      Decide on a reservation
// @Description  Sets the status and notifies the owner when it changed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path  int  true  "Reservation id"
// @Param        payload  body  UpdateStatusReq  true  "New status and optional message"
// @Success      200  {object}  model.Reservation
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/admin/reservations/{id}/status [patch]
func (h *Controller) SetStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	adminID, err := jwtx.AdminIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	res, err := h.Svc.SetStatus(c.Request().Context(), id, model.ReservationStatus(req.Status), req.AdminMessage)
	if err != nil {
		switch ressvc.Code(err) {
		case ressvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case ressvc.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		default:
			h.Log.Error("set status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	h.Log.Info("reservation status set",
		"reservation_id", id, "status", req.Status, "admin_id", adminID)
	return c.JSON(http.StatusOK, res)
}

func (h *Controller) list(c echo.Context, fn func(ctx context.Context, year int) ([]model.ReservationWithUser, error)) error {
	year, ok := h.year(c)
	if !ok {
		return nil
	}
	rs, err := fn(c.Request().Context(), year)
	if err != nil {
		h.Log.Error("list reservations", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *Controller) year(c echo.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid year"})
		return 0, false
	}
	return year, true
}
