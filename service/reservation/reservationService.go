package reservation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	resrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/reservation"
	userrepo "github.com/LuisGlezPruebas/BookingWeb-production/repository/user"
	"github.com/LuisGlezPruebas/BookingWeb-production/service/notify"
	"github.com/LuisGlezPruebas/BookingWeb-production/util/dates"
)

// errors used by controllers

type ErrCode string

const (
	ErrValidation ErrCode = "VALIDATION"      // bad dates or guest count
	ErrConflict   ErrCode = "DATE_CONFLICT"   // overlaps an approved reservation
	ErrNotOwner   ErrCode = "NOT_OWNER"       // requester does not own the reservation
	ErrLocked     ErrCode = "ALREADY_STARTED" // stay has begun, record is immutable
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrBadStatus  ErrCode = "BAD_STATUS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type CreateReq struct {
	UserID         int64
	StartDate      time.Time
	EndDate        time.Time
	NumberOfGuests int
	Notes          *string
}

type UpdateReq struct {
	StartDate      time.Time
	EndDate        time.Time
	NumberOfGuests int
	Notes          *string
}

type Service interface {
	// Create: store a pending request after the conflict gate passes.
	Create(ctx context.Context, req CreateReq) (*model.Reservation, error)

	// Modify: owner reworks a future reservation; goes back to the admin as
	// status "modified".
	Modify(ctx context.Context, id, requesterID int64, req UpdateReq) (*model.Reservation, error)

	// Cancel: owner cancels a future reservation. Terminal.
	Cancel(ctx context.Context, id, requesterID int64) (*model.Reservation, error)

	// SetStatus: admin decision. No temporal lock; notifies the owner only
	// when the status actually changed.
	SetStatus(ctx context.Context, id int64, status model.ReservationStatus, adminMessage string) (*model.Reservation, error)

	// MyReservations: one user's requests for a year, newest first.
	MyReservations(ctx context.Context, userID int64, year int) ([]model.Reservation, error)

	// Admin listings, joined with usernames.
	AllByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error)
	ApprovedByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error)
	PendingByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error)
	HistoryByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error)
}

// ----- Service implementation -----

type service struct {
	// mu makes the conflict check and the following write one atomic unit;
	// without it two overlapping requests could both pass the scan.
	mu sync.Mutex

	repo  resrepo.Repo
	users userrepo.Repo
	n     notify.Notifier
	now   func() time.Time
}

func New(repo resrepo.Repo, users userrepo.Repo, n notify.Notifier) Service {
	return &service{repo: repo, users: users, n: n, now: time.Now}
}

// NewWithClock is for tests that need to pin "now".
func NewWithClock(repo resrepo.Repo, users userrepo.Repo, n notify.Notifier, now func() time.Time) Service {
	return &service{repo: repo, users: users, n: n, now: now}
}

func validateRange(start, end time.Time, guests int) error {
	if start.IsZero() || end.IsZero() {
		return makeErr(ErrValidation)
	}
	if !dates.Day(end).After(dates.Day(start)) {
		return makeErr(ErrValidation)
	}
	if guests < 1 || guests > 10 {
		return makeErr(ErrValidation)
	}
	return nil
}

// hasConflict reports whether [start, end] overlaps any approved reservation
// in start's year, skipping excludeID when editing. Ranges touching on a
// shared day conflict: the house does not do same-day turnover.
func (s *service) hasConflict(ctx context.Context, start, end time.Time, excludeID int64) (bool, error) {
	existing, err := s.repo.ListByYear(ctx, dates.Day(start).Year())
	if err != nil {
		return false, err
	}
	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if !r.Status.Blocks() {
			continue
		}
		if dates.Overlaps(start, end, r.StartDate, r.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

// locked reports the temporal lock: once the start day has arrived the
// reservation can no longer be edited or cancelled by its owner.
func (s *service) locked(r *model.Reservation) bool {
	return !dates.Day(r.StartDate).After(s.now())
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Reservation, error) {
	if err := validateRange(req.StartDate, req.EndDate, req.NumberOfGuests); err != nil {
		return nil, err
	}
	owner, err := s.users.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, makeErr(ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, err := s.hasConflict(ctx, req.StartDate, req.EndDate, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, makeErr(ErrConflict)
	}

	res, err := s.repo.Create(ctx, &model.Reservation{
		UserID:         req.UserID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		NumberOfGuests: req.NumberOfGuests,
		Notes:          req.Notes,
		Status:         model.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	s.emit(notify.NewRequestToAdmin, res, owner, "")
	s.emit(notify.ConfirmationToUser, res, owner, "")
	return res, nil
}

func (s *service) Modify(ctx context.Context, id, requesterID int64, req UpdateReq) (*model.Reservation, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, makeErr(ErrNotFound)
	}
	if existing.UserID != requesterID {
		return nil, makeErr(ErrNotOwner)
	}
	// The lock is judged against the pre-edit start date: a stay that has
	// begun cannot be pushed into the future to escape it.
	if s.locked(existing) {
		return nil, makeErr(ErrLocked)
	}
	if err := validateRange(req.StartDate, req.EndDate, req.NumberOfGuests); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, err := s.hasConflict(ctx, req.StartDate, req.EndDate, id)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, makeErr(ErrConflict)
	}

	// Any edit goes back through admin approval, whatever the prior status.
	updated, err := s.repo.Apply(ctx, id, resrepo.Update{
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		NumberOfGuests: req.NumberOfGuests,
		Notes:          req.Notes,
		Status:         model.StatusModified,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, makeErr(ErrNotFound)
	}

	owner, _ := s.users.Get(ctx, updated.UserID)
	s.emit(notify.StatusChangeToUser, updated, owner, "")
	s.emit(notify.NewRequestToAdmin, updated, owner, "")
	return updated, nil
}

func (s *service) Cancel(ctx context.Context, id, requesterID int64) (*model.Reservation, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, makeErr(ErrNotFound)
	}
	if existing.UserID != requesterID {
		return nil, makeErr(ErrNotOwner)
	}
	if s.locked(existing) {
		return nil, makeErr(ErrLocked)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.repo.SetStatus(ctx, id, model.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, makeErr(ErrNotFound)
	}

	owner, _ := s.users.Get(ctx, updated.UserID)
	s.emit(notify.StatusChangeToUser, updated, owner, "")
	return updated, nil
}

func validStatus(st model.ReservationStatus) bool {
	switch st {
	case model.StatusPending, model.StatusApproved, model.StatusRejected,
		model.StatusModified, model.StatusCancelled:
		return true
	}
	return false
}

func (s *service) SetStatus(ctx context.Context, id int64, status model.ReservationStatus, adminMessage string) (*model.Reservation, error) {
	if !validStatus(status) {
		return nil, makeErr(ErrBadStatus)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, makeErr(ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, makeErr(ErrNotFound)
	}

	if updated.Status != existing.Status {
		owner, _ := s.users.Get(ctx, updated.UserID)
		s.emit(notify.StatusChangeToUser, updated, owner, adminMessage)
	}
	return updated, nil
}

func (s *service) MyReservations(ctx context.Context, userID int64, year int) ([]model.Reservation, error) {
	return s.repo.ListByUserYear(ctx, userID, year)
}

func (s *service) AllByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error) {
	rs, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.withUsernames(ctx, rs)
}

func (s *service) ApprovedByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error) {
	rs, err := s.repo.ListApprovedByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.withUsernames(ctx, rs)
}

func (s *service) PendingByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error) {
	rs, err := s.repo.ListPendingByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.withUsernames(ctx, rs)
}

func (s *service) HistoryByYear(ctx context.Context, year int) ([]model.ReservationWithUser, error) {
	rs, err := s.repo.ListHistoryByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.withUsernames(ctx, rs)
}

func (s *service) withUsernames(ctx context.Context, rs []model.Reservation) ([]model.ReservationWithUser, error) {
	out := make([]model.ReservationWithUser, 0, len(rs))
	for _, r := range rs {
		name := "Unknown User"
		if u, err := s.users.Get(ctx, r.UserID); err == nil && u != nil {
			name = u.Username
		}
		out = append(out, model.ReservationWithUser{Reservation: r, Username: name})
	}
	return out, nil
}

// emit queues a notification; a nil owner or notifier means there is nobody
// to tell, which never blocks the mutation.
func (s *service) emit(kind notify.Kind, r *model.Reservation, owner *model.User, adminMessage string) {
	if s.n == nil || r == nil {
		return
	}
	var u model.User
	if owner != nil {
		u = *owner
	}
	s.n.Enqueue(notify.Event{Kind: kind, Reservation: *r, User: u, AdminMessage: adminMessage})
}
