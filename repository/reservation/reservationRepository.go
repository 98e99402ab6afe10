// repository/reservation/repo.go
package reservation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	"github.com/LuisGlezPruebas/BookingWeb-production/util/dates"
)

// Update carries the owner-editable fields of a reservation. The service
// decides the resulting status; the store just writes.
type Update struct {
	StartDate      time.Time
	EndDate        time.Time
	NumberOfGuests int
	Notes          *string
	Status         model.ReservationStatus
}

// Repo is the reservation store. Lookups return (nil, nil) when the id is
// unknown. A year always means the year of the reservation's start date.
type Repo interface {
	Get(ctx context.Context, id int64) (*model.Reservation, error)
	Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	Apply(ctx context.Context, id int64, u Update) (*model.Reservation, error)
	SetStatus(ctx context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error)

	ListByYear(ctx context.Context, year int) ([]model.Reservation, error)
	ListPendingByYear(ctx context.Context, year int) ([]model.Reservation, error)
	ListHistoryByYear(ctx context.Context, year int) ([]model.Reservation, error)
	ListApprovedByYear(ctx context.Context, year int) ([]model.Reservation, error)
	ListByUserYear(ctx context.Context, userID int64, year int) ([]model.Reservation, error)
}

type memRepo struct {
	mu     sync.RWMutex
	byID   map[int64]model.Reservation
	nextID int64

	now func() time.Time
}

func New() Repo { return newMem(time.Now) }

func newMem(now func() time.Time) *memRepo {
	return &memRepo{
		byID:   make(map[int64]model.Reservation),
		nextID: 1,
		now:    now,
	}
}

func (r *memRepo) Get(_ context.Context, id int64) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

// Create assigns the next id and the creation timestamp. Status defaults to
// pending when the caller left it empty (seed data passes approved).
func (r *memRepo) Create(_ context.Context, in *model.Reservation) (*model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := *in
	res.ID = r.nextID
	r.nextID++
	res.StartDate = dates.Day(res.StartDate)
	res.EndDate = dates.Day(res.EndDate)
	if res.Status == "" {
		res.Status = model.StatusPending
	}
	if res.NumberOfGuests == 0 {
		res.NumberOfGuests = 1
	}
	res.CreatedAt = r.now()

	r.byID[res.ID] = res
	return &res, nil
}

func (r *memRepo) Apply(_ context.Context, id int64, u Update) (*model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	res.StartDate = dates.Day(u.StartDate)
	res.EndDate = dates.Day(u.EndDate)
	res.NumberOfGuests = u.NumberOfGuests
	if u.Notes != nil {
		res.Notes = u.Notes
	}
	res.Status = u.Status
	r.byID[id] = res
	return &res, nil
}

func (r *memRepo) SetStatus(_ context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	res.Status = status
	r.byID[id] = res
	return &res, nil
}

func (r *memRepo) ListByYear(_ context.Context, year int) ([]model.Reservation, error) {
	return r.filter(func(res model.Reservation) bool {
		return res.StartDate.UTC().Year() == year
	}, false), nil
}

func (r *memRepo) ListPendingByYear(_ context.Context, year int) ([]model.Reservation, error) {
	return r.filter(func(res model.Reservation) bool {
		return res.StartDate.UTC().Year() == year &&
			(res.Status == model.StatusPending || res.Status == model.StatusModified)
	}, false), nil
}

func (r *memRepo) ListHistoryByYear(_ context.Context, year int) ([]model.Reservation, error) {
	return r.filter(func(res model.Reservation) bool {
		return res.StartDate.UTC().Year() == year &&
			(res.Status == model.StatusApproved ||
				res.Status == model.StatusRejected ||
				res.Status == model.StatusCancelled)
	}, true), nil
}

func (r *memRepo) ListApprovedByYear(_ context.Context, year int) ([]model.Reservation, error) {
	return r.filter(func(res model.Reservation) bool {
		return res.StartDate.UTC().Year() == year && res.Status == model.StatusApproved
	}, true), nil
}

func (r *memRepo) ListByUserYear(_ context.Context, userID int64, year int) ([]model.Reservation, error) {
	return r.filter(func(res model.Reservation) bool {
		return res.StartDate.UTC().Year() == year && res.UserID == userID
	}, true), nil
}

// filter snapshots matching reservations; newestFirst sorts by start date
// descending, otherwise by id for stable iteration.
func (r *memRepo) filter(keep func(model.Reservation) bool, newestFirst bool) []model.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Reservation, 0)
	for _, res := range r.byID {
		if keep(res) {
			out = append(out, res)
		}
	}
	if newestFirst {
		sort.Slice(out, func(i, j int) bool {
			return out[i].StartDate.After(out[j].StartDate)
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out
}
