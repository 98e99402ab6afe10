package reservation

import (
	"time"
)

type CreateReservationReq struct {
	UserID         int64  `json:"userId" validate:"required,gt=0"`
	StartDate      string `json:"startDate" validate:"required"`
	EndDate        string `json:"endDate" validate:"required"`
	NumberOfGuests int    `json:"numberOfGuests" validate:"required,min=1,max=10"`
	Notes          string `json:"notes"`
}

type UpdateReservationReq struct {
	StartDate      string `json:"startDate" validate:"required"`
	EndDate        string `json:"endDate" validate:"required"`
	NumberOfGuests int    `json:"numberOfGuests" validate:"required,min=1,max=10"`
	Notes          string `json:"notes"`
}

// parseDate accepts the date-only form the calendar picker sends and full
// RFC3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
