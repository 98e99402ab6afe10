package reservation

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	ressvc "github.com/LuisGlezPruebas/BookingWeb-production/service/reservation"
)

type Controller struct {
	Svc ressvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/user/reservations
// @Summary      Submit a reservation request
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateReservationReq  true  "Reservation request"
// @Success      201  {object}  model.Reservation
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "dates overlap an approved reservation"
// @Router       /api/user/reservations [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date format"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date format"})
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	res, err := h.Svc.Create(c.Request().Context(), ressvc.CreateReq{
		UserID:         req.UserID,
		StartDate:      start,
		EndDate:        end,
		NumberOfGuests: req.NumberOfGuests,
		Notes:          notes,
	})
	if err != nil {
		return h.mapError(c, "reservation create", err)
	}
	return c.JSON(http.StatusCreated, res)
}

// PATCH /api/user/reservations/:id
// @Summary      Modify an upcoming reservation
// @Description  Owner only; the edit goes back to the admin as "modified"
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id      path   int  true  "Reservation id"
// @Param        userId  query  int  true  "Requester id"
// @Param        payload body  UpdateReservationReq  true  "New details"
// @Success      200  {object}  model.Reservation
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/user/reservations/{id} [patch]
func (h *Controller) Modify(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	requesterID, err := strconv.ParseInt(c.QueryParam("userId"), 10, 64)
	if err != nil || requesterID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid userId"})
	}

	var req UpdateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date format"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date format"})
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	res, err := h.Svc.Modify(c.Request().Context(), id, requesterID, ressvc.UpdateReq{
		StartDate:      start,
		EndDate:        end,
		NumberOfGuests: req.NumberOfGuests,
		Notes:          notes,
	})
	if err != nil {
		return h.mapError(c, "reservation modify", err)
	}
	return c.JSON(http.StatusOK, res)
}

// DELETE /api/user/reservations/:id
// @Summary      Cancel an upcoming reservation
// @Tags         reservations
// @Produce      json
// @Param        id      path   int  true  "Reservation id"
// @Param        userId  query  int  true  "Requester id"
// @Success      200  {object}  model.Reservation
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/user/reservations/{id} [delete]
func (h *Controller) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	requesterID, err := strconv.ParseInt(c.QueryParam("userId"), 10, 64)
	if err != nil || requesterID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid userId"})
	}

	res, err := h.Svc.Cancel(c.Request().Context(), id, requesterID)
	if err != nil {
		return h.mapError(c, "reservation cancel", err)
	}
	return c.JSON(http.StatusOK, res)
}

// GET /api/user/reservations/:year
// @Summary      List the requester's reservations for a year
// @Tags         reservations
// @Produce      json
// @Param        year    path   int  true  "Year"
// @Param        userId  query  int  true  "Requester id"
// @Success      200  {array}  model.Reservation
// @Router       /api/user/reservations/{year} [get]
func (h *Controller) Mine(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid year"})
	}
	userID, err := strconv.ParseInt(c.QueryParam("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid userId"})
	}

	rs, err := h.Svc.MyReservations(c.Request().Context(), userID, year)
	if err != nil {
		h.Log.Error("list my reservations", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *Controller) mapError(c echo.Context, op string, err error) error {
	switch ressvc.Code(err) {
	case ressvc.ErrValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid reservation data"})
	case ressvc.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "The selected date range includes days already taken by an approved reservation.",
		})
	case ressvc.ErrNotOwner:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "you do not have permission to change this reservation"})
	case ressvc.ErrLocked:
		return c.JSON(http.StatusConflict, echo.Map{"message": "the reservation has already started and can no longer be changed"})
	case ressvc.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
