package calendar

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	calsvc "github.com/LuisGlezPruebas/BookingWeb-production/service/calendar"
)

type Controller struct {
	Svc calsvc.Service
	Log *slog.Logger
}

// GET /api/user/calendar/:year
// @Summary      Yearly availability calendar
// @Description  One entry per day with status available/pending/occupied
// @Tags         calendar
// @Produce      json
// @Param        year  path  int  true  "Year"
// @Success      200  {array}  model.CalendarDay
// @Router       /api/user/calendar/{year} [get]
func (h *Controller) Year(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid year"})
	}

	days, err := h.Svc.YearCalendar(c.Request().Context(), year)
	if err != nil {
		h.Log.Error("calendar", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, days)
}
