package model

// ReservationStats is the admin dashboard summary for one year. All figures
// consider approved reservations only.
type ReservationStats struct {
	TotalReservations   int          `json:"totalReservations"`
	OccupiedDays        int          `json:"occupiedDays"`
	FrequentUser        string       `json:"frequentUser"`
	OccupancyRate       int          `json:"occupancyRate"`
	ReservationsByMonth []MonthCount `json:"reservationsByMonth"`
	ReservationsByUser  []UserCount  `json:"reservationsByUser"`
}

type MonthCount struct {
	Month int `json:"month"` // 1..12
	Count int `json:"count"` // covered calendar days in that month
}

type UserCount struct {
	Username string `json:"username"`
	Count    int    `json:"count"` // total nights booked by that user
}
