// model/reservation.go
package model

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusModified  ReservationStatus = "modified"
	StatusCancelled ReservationStatus = "cancelled"
)

// Blocks reports whether a reservation in this status occupies its date
// range for conflict purposes. Only approved reservations block.
func (s ReservationStatus) Blocks() bool { return s == StatusApproved }

// Terminal statuses accept no further owner actions.
func (s ReservationStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

type Reservation struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"userId"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	NumberOfGuests int               `json:"numberOfGuests"`
	Notes          *string           `json:"notes,omitempty"`
	Status         ReservationStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ReservationWithUser joins the owner's username for admin listings.
type ReservationWithUser struct {
	Reservation
	Username string `json:"username"`
}
