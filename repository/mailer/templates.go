package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	"github.com/LuisGlezPruebas/BookingWeb-production/util/dates"
)

// Email bodies mirror the messages the family is used to: a notification to
// the admin for every new or modified request, a confirmation to the
// requester, and a status update when the admin decides. Approved stays get
// the long template with the house rules.

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func nightsLabel(r *model.Reservation) string {
	n := dates.Nights(r.StartDate, r.EndDate)
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}

func notesOrNone(r *model.Reservation) string {
	if r.Notes == nil || *r.Notes == "" {
		return "None"
	}
	return *r.Notes
}

// NewRequestToAdmin builds the admin notification for a new or modified
// request.
func NewRequestToAdmin(r *model.Reservation, username, adminEmail, appURL string) Message {
	subject := fmt.Sprintf("New reservation request from %s", username)
	title := "New reservation request"
	intro := "A new reservation request has been received with the following details:"
	if r.Status == model.StatusModified {
		subject = fmt.Sprintf("Reservation change request from %s", username)
		title = "Reservation change request"
		intro = fmt.Sprintf("%s has requested a change to their reservation with the following details:", username)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n<p>%s</p>\n<ul>\n", title, intro)
	fmt.Fprintf(&b, "<li><strong>User:</strong> %s</li>\n", username)
	fmt.Fprintf(&b, "<li><strong>Check-in:</strong> %s</li>\n", formatDate(r.StartDate))
	fmt.Fprintf(&b, "<li><strong>Check-out:</strong> %s</li>\n", formatDate(r.EndDate))
	fmt.Fprintf(&b, "<li><strong>Duration:</strong> %s</li>\n", nightsLabel(r))
	fmt.Fprintf(&b, "<li><strong>Guests:</strong> %d</li>\n", r.NumberOfGuests)
	fmt.Fprintf(&b, "<li><strong>Notes:</strong> %s</li>\n</ul>\n", notesOrNone(r))
	fmt.Fprintf(&b, "<p>Please visit the <a href=%q>admin dashboard</a> to handle this request.</p>\n", appURL+"/admin")
	b.WriteString("<p>Thanks,<br>Reservation System</p>")

	return Message{To: adminEmail, Subject: subject, HTML: b.String()}
}

// ConfirmationToUser builds the receipt sent to the requester right after
// submitting.
func ConfirmationToUser(r *model.Reservation, username, userEmail string) Message {
	var b strings.Builder
	b.WriteString("<h1>Your reservation request has been received</h1>\n")
	fmt.Fprintf(&b, "<p>Hi %s,</p>\n", username)
	b.WriteString("<p>We received your reservation request with the following details:</p>\n<ul>\n")
	fmt.Fprintf(&b, "<li><strong>Check-in:</strong> %s</li>\n", formatDate(r.StartDate))
	fmt.Fprintf(&b, "<li><strong>Check-out:</strong> %s</li>\n", formatDate(r.EndDate))
	fmt.Fprintf(&b, "<li><strong>Duration:</strong> %s</li>\n", nightsLabel(r))
	fmt.Fprintf(&b, "<li><strong>Guests:</strong> %d</li>\n", r.NumberOfGuests)
	fmt.Fprintf(&b, "<li><strong>Notes:</strong> %s</li>\n</ul>\n", notesOrNone(r))
	b.WriteString("<p>Your reservation is awaiting approval. We will let you know once it is approved or rejected.</p>\n")
	b.WriteString("<p>Thanks for your reservation,<br>Reservation System</p>")

	return Message{To: userEmail, Subject: "Reservation request received", HTML: b.String()}
}

// StatusUpdateToUser builds the message sent whenever the reservation's
// status changes, either by the admin or by the owner's own change or
// cancellation.
func StatusUpdateToUser(r *model.Reservation, username, userEmail, adminMessage string) Message {
	statusText := "updated"
	statusMessage := "The status of your reservation has been updated."
	switch r.Status {
	case model.StatusApproved:
		statusText = "approved"
	case model.StatusRejected:
		statusText = "rejected"
		statusMessage = "It has been rejected. Please try other dates or contact the admin for more information."
	case model.StatusModified:
		statusText = "modified"
		statusMessage = "Your change request has been recorded and awaits approval."
	case model.StatusCancelled:
		statusText = "cancelled"
		statusMessage = "Your reservation has been cancelled as requested."
	}

	var b strings.Builder
	if r.Status == model.StatusApproved {
		fmt.Fprintf(&b, "<p>Hi %s,</p>\n", username)
		b.WriteString("<p>Good news: your reservation has been approved 🎉</p>\n<p>Here are the details:</p>\n")
		fmt.Fprintf(&b, "<p>🗓 Check-in: %s</p>\n", formatDate(r.StartDate))
		fmt.Fprintf(&b, "<p>🗓 Check-out: %s</p>\n", formatDate(r.EndDate))
		fmt.Fprintf(&b, "<p>⏳ Duration: %s</p>\n", nightsLabel(r))
		fmt.Fprintf(&b, "<p>👥 Guests: %d</p>\n", r.NumberOfGuests)
		b.WriteString("<p>📌 Status: APPROVED</p>\n")
		b.WriteString("<p>🙌 A reminder of the house rules:</p>\n<ul>\n")
		b.WriteString("<li>🏡 The house belongs to grandma. Please treat it with the care and respect it deserves.</li>\n")
		b.WriteString("<li>📆 If you are not going to use your reservation, change or cancel it as early as possible so others can take the dates.</li>\n")
		b.WriteString("<li>🧹 Leave the house tidy and clean when you go. Everyone enjoys it more that way!</li>\n")
		b.WriteString("<li>🚨 When leaving, arrange the external cleaner; the cost is on whoever made the reservation.</li>\n")
		b.WriteString("</ul>\n<p>We hope you enjoy your stay 💛</p>\n")
		if adminMessage != "" {
			fmt.Fprintf(&b, "<p><strong>Message from the admin:</strong> %s</p>\n", adminMessage)
		}
		b.WriteString("<p>Best,<br>Reservation System 🗓️</p>")
	} else {
		b.WriteString("<h1>Reservation status update</h1>\n")
		fmt.Fprintf(&b, "<p>Hi %s,</p>\n<p>The status of your reservation has changed.</p>\n<ul>\n", username)
		fmt.Fprintf(&b, "<li><strong>Check-in:</strong> %s</li>\n", formatDate(r.StartDate))
		fmt.Fprintf(&b, "<li><strong>Check-out:</strong> %s</li>\n", formatDate(r.EndDate))
		fmt.Fprintf(&b, "<li><strong>Duration:</strong> %s</li>\n", nightsLabel(r))
		fmt.Fprintf(&b, "<li><strong>Guests:</strong> %d</li>\n", r.NumberOfGuests)
		fmt.Fprintf(&b, "<li><strong>Status:</strong> <strong>%s</strong></li>\n</ul>\n", strings.ToUpper(statusText))
		fmt.Fprintf(&b, "<p>%s</p>\n", statusMessage)
		if adminMessage != "" {
			fmt.Fprintf(&b, "<p><strong>Message from the admin:</strong> %s</p>\n", adminMessage)
		}
		b.WriteString("<p>Thanks,<br>Reservation System</p>")
	}

	return Message{
		To:      userEmail,
		Subject: fmt.Sprintf("Your reservation has been %s", statusText),
		HTML:    b.String(),
	}
}
