package model

type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayPending   DayStatus = "pending"
	DayOccupied  DayStatus = "occupied"
)

// CalendarDay is derived per request from the reservation set, never stored.
// UserID is set only for occupied days so the client can color by owner.
type CalendarDay struct {
	Date   string    `json:"date"` // YYYY-MM-DD
	Status DayStatus `json:"status"`
	UserID int64     `json:"userId,omitempty"`
}
