package notify

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	"github.com/LuisGlezPruebas/BookingWeb-production/repository/mailer"
)

type mailMock struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *mailMock) Send(msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mailMock) messages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.sent...)
}

func testReservation() model.Reservation {
	return model.Reservation{
		ID:             7,
		UserID:         2,
		StartDate:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 4,
		Status:         model.StatusPending,
	}
}

func TestDispatchesAllKinds(t *testing.T) {
	mail := &mailMock{}
	n := New(mail, slog.Default(), "admin@example.com", "http://localhost:8080", 2)

	u := model.User{ID: 2, Username: "Luis Glez", Email: "luis@example.com"}
	n.Enqueue(Event{Kind: NewRequestToAdmin, Reservation: testReservation(), User: u})
	n.Enqueue(Event{Kind: ConfirmationToUser, Reservation: testReservation(), User: u})
	r := testReservation()
	r.Status = model.StatusApproved
	n.Enqueue(Event{Kind: StatusChangeToUser, Reservation: r, User: u, AdminMessage: "enjoy"})
	n.Shutdown()

	msgs := mail.messages()
	require.Len(t, msgs, 3)

	recipients := map[string]int{}
	for _, m := range msgs {
		recipients[m.To]++
	}
	require.Equal(t, 1, recipients["admin@example.com"])
	require.Equal(t, 2, recipients["luis@example.com"])
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	mail := &mailMock{err: errors.New("smtp down")}
	n := New(mail, slog.Default(), "admin@example.com", "", 1)

	// Enqueue must not panic or surface the error; Shutdown must still drain.
	n.Enqueue(Event{
		Kind:        ConfirmationToUser,
		Reservation: testReservation(),
		User:        model.User{Username: "Luis", Email: "luis@example.com"},
	})
	n.Shutdown()
	require.Empty(t, mail.messages())
}

func TestSkipsUserWithoutEmail(t *testing.T) {
	mail := &mailMock{}
	n := New(mail, slog.Default(), "admin@example.com", "", 1)
	n.Enqueue(Event{Kind: ConfirmationToUser, Reservation: testReservation(), User: model.User{Username: "x"}})
	n.Shutdown()
	require.Empty(t, mail.messages())
}
