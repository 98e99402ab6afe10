package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
)

func sample(status model.ReservationStatus) *model.Reservation {
	notes := "birthday weekend"
	return &model.Reservation{
		ID:             3,
		UserID:         2,
		StartDate:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 4,
		Notes:          &notes,
		Status:         status,
	}
}

func TestNewRequestToAdmin(t *testing.T) {
	msg := NewRequestToAdmin(sample(model.StatusPending), "Luis Glez", "admin@example.com", "http://host")
	require.Equal(t, "admin@example.com", msg.To)
	require.Equal(t, "New reservation request from Luis Glez", msg.Subject)
	require.Contains(t, msg.HTML, "01/07/2025")
	require.Contains(t, msg.HTML, "05/07/2025")
	require.Contains(t, msg.HTML, "4 nights")
	require.Contains(t, msg.HTML, "birthday weekend")
	require.Contains(t, msg.HTML, "http://host/admin")
}

func TestNewRequestToAdminForModified(t *testing.T) {
	msg := NewRequestToAdmin(sample(model.StatusModified), "Luis Glez", "admin@example.com", "http://host")
	require.Equal(t, "Reservation change request from Luis Glez", msg.Subject)
}

func TestConfirmationToUser(t *testing.T) {
	msg := ConfirmationToUser(sample(model.StatusPending), "Luis Glez", "luis@example.com")
	require.Equal(t, "luis@example.com", msg.To)
	require.Contains(t, msg.HTML, "awaiting approval")
}

func TestStatusUpdateVariants(t *testing.T) {
	cases := []struct {
		status      model.ReservationStatus
		wantSubject string
		wantBody    string
	}{
		{model.StatusApproved, "Your reservation has been approved", "house rules"},
		{model.StatusRejected, "Your reservation has been rejected", "rejected"},
		{model.StatusCancelled, "Your reservation has been cancelled", "cancelled"},
		{model.StatusModified, "Your reservation has been modified", "awaits approval"},
	}
	for _, tc := range cases {
		msg := StatusUpdateToUser(sample(tc.status), "Luis", "luis@example.com", "")
		require.Equal(t, tc.wantSubject, msg.Subject)
		require.True(t, strings.Contains(msg.HTML, tc.wantBody),
			"status %s: body should mention %q", tc.status, tc.wantBody)
	}
}

func TestStatusUpdateEmbedsAdminMessage(t *testing.T) {
	msg := StatusUpdateToUser(sample(model.StatusApproved), "Luis", "luis@example.com", "keys under the mat")
	require.Contains(t, msg.HTML, "keys under the mat")

	msg = StatusUpdateToUser(sample(model.StatusRejected), "Luis", "luis@example.com", "try September")
	require.Contains(t, msg.HTML, "try September")
}

func TestSingleNightLabel(t *testing.T) {
	r := sample(model.StatusPending)
	r.EndDate = r.StartDate.AddDate(0, 0, 1)
	msg := ConfirmationToUser(r, "Luis", "luis@example.com")
	require.Contains(t, msg.HTML, "1 night")
	require.NotContains(t, msg.HTML, "1 nights")
}
