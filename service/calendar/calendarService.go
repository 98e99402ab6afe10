package calendar

import (
	"context"
	"time"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	resrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/reservation"
	userrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/user"
	"github.com/LuisGlezPruebas/BookingWeb-production/util/dates"
)

type Service interface {
	// YearCalendar derives the status of every day of the year from the
	// reservation set. Pure read; calling it twice gives the same answer.
	YearCalendar(ctx context.Context, year int) ([]model.CalendarDay, error)

	// YearStats aggregates the approved reservations of a year for the admin
	// dashboard.
	YearStats(ctx context.Context, year int) (*model.ReservationStats, error)
}

type service struct {
	repo  resrepo.Repo
	users userrepo.Repo
}

func New(repo resrepo.Repo, users userrepo.Repo) Service {
	return &service{repo: repo, users: users}
}

// DayStatus derives one day's status from the reservations covering it.
// Approved coverage wins over pending/modified regardless of scan order, and
// carries the owner's id for attribution. Containment is inclusive on both
// ends: the checkout day still shows as taken.
func DayStatus(day time.Time, reservations []model.Reservation) (model.DayStatus, int64) {
	status := model.DayAvailable
	var owner int64
	for _, r := range reservations {
		if !dates.Covers(day, r.StartDate, r.EndDate) {
			continue
		}
		switch r.Status {
		case model.StatusApproved:
			return model.DayOccupied, r.UserID
		case model.StatusPending, model.StatusModified:
			status = model.DayPending
		}
	}
	return status, owner
}

func (s *service) YearCalendar(ctx context.Context, year int) ([]model.CalendarDay, error) {
	reservations, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	out := make([]model.CalendarDay, 0, dates.DaysInYear(year))
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	dates.EachDay(first, last, func(day time.Time) {
		status, owner := DayStatus(day, reservations)
		cd := model.CalendarDay{Date: day.Format("2006-01-02"), Status: status}
		if status == model.DayOccupied {
			cd.UserID = owner
		}
		out = append(out, cd)
	})
	return out, nil
}

func (s *service) YearStats(ctx context.Context, year int) (*model.ReservationStats, error) {
	approved, err := s.repo.ListApprovedByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	// Occupied days and month buckets walk every covered calendar day
	// (inclusive span, deduplicated across reservations); night counts use
	// the half-open convention.
	occupied := make(map[string]bool)
	var months [12]int
	nightsByUser := make(map[int64]int)
	userOrder := make([]int64, 0)

	for _, r := range approved {
		dates.EachDay(r.StartDate, r.EndDate, func(day time.Time) {
			occupied[day.Format("2006-01-02")] = true
			months[int(day.Month())-1]++
		})
		if _, seen := nightsByUser[r.UserID]; !seen {
			userOrder = append(userOrder, r.UserID)
		}
		nightsByUser[r.UserID] += dates.Nights(r.StartDate, r.EndDate)
	}

	// Most frequent user by summed nights; ties go to the first encountered.
	frequentUser := "-"
	best := 0
	for _, id := range userOrder {
		if nightsByUser[id] > best {
			best = nightsByUser[id]
			frequentUser = s.username(ctx, id)
		}
	}

	byMonth := make([]model.MonthCount, 12)
	for i := range months {
		byMonth[i] = model.MonthCount{Month: i + 1, Count: months[i]}
	}

	byUser := make([]model.UserCount, 0, len(userOrder))
	for _, id := range userOrder {
		byUser = append(byUser, model.UserCount{
			Username: s.username(ctx, id),
			Count:    nightsByUser[id],
		})
	}

	rate := 0
	if len(occupied) > 0 {
		rate = int(float64(len(occupied))/float64(dates.DaysInYear(year))*100 + 0.5)
	}

	return &model.ReservationStats{
		TotalReservations:   len(approved),
		OccupiedDays:        len(occupied),
		FrequentUser:        frequentUser,
		OccupancyRate:       rate,
		ReservationsByMonth: byMonth,
		ReservationsByUser:  byUser,
	}, nil
}

func (s *service) username(ctx context.Context, id int64) string {
	u, err := s.users.Get(ctx, id)
	if err != nil || u == nil {
		return "-"
	}
	return u.Username
}
