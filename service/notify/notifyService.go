package notify

import (
	"log/slog"
	"sync"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
	"github.com/LuisGlezPruebas/BookingWeb-production/repository/mailer"
)

type Kind string

const (
	NewRequestToAdmin  Kind = "new-request-to-admin"
	ConfirmationToUser Kind = "confirmation-to-requester"
	StatusChangeToUser Kind = "status-change-to-requester"
)

// Event is one notification to deliver. Reservation and User are copies taken
// at commit time so later mutations cannot bleed into a queued email.
type Event struct {
	Kind         Kind
	Reservation  model.Reservation
	User         model.User
	AdminMessage string
}

// Notifier delivers reservation emails off the request path. Enqueue never
// blocks and never reports delivery errors back; the committed mutation is
// authoritative whether or not the email makes it out.
type Notifier interface {
	Enqueue(ev Event)
	Shutdown()
}

type dispatcher struct {
	queue      chan Event
	mail       mailer.Repo
	log        *slog.Logger
	adminEmail string
	appURL     string
	wg         sync.WaitGroup
}

func New(mail mailer.Repo, log *slog.Logger, adminEmail, appURL string, workers int) Notifier {
	d := &dispatcher{
		queue:      make(chan Event, 100),
		mail:       mail,
		log:        log,
		adminEmail: adminEmail,
		appURL:     appURL,
	}
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *dispatcher) Enqueue(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event",
			"kind", ev.Kind, "reservation_id", ev.Reservation.ID)
	}
}

// Shutdown drains the queue and stops the workers.
func (d *dispatcher) Shutdown() {
	close(d.queue)
	d.wg.Wait()
}

func (d *dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		msg, ok := d.build(ev)
		if !ok {
			continue
		}
		if err := d.mail.Send(msg); err != nil {
			d.log.Error("notification delivery failed",
				"kind", ev.Kind, "reservation_id", ev.Reservation.ID, "to", msg.To, "err", err)
			continue
		}
		d.log.Info("notification sent",
			"kind", ev.Kind, "reservation_id", ev.Reservation.ID, "to", msg.To)
	}
}

func (d *dispatcher) build(ev Event) (mailer.Message, bool) {
	r := ev.Reservation
	switch ev.Kind {
	case NewRequestToAdmin:
		if d.adminEmail == "" {
			d.log.Warn("no admin email configured, skipping notification", "reservation_id", r.ID)
			return mailer.Message{}, false
		}
		return mailer.NewRequestToAdmin(&r, ev.User.Username, d.adminEmail, d.appURL), true
	case ConfirmationToUser:
		if ev.User.Email == "" {
			return mailer.Message{}, false
		}
		return mailer.ConfirmationToUser(&r, ev.User.Username, ev.User.Email), true
	case StatusChangeToUser:
		if ev.User.Email == "" {
			return mailer.Message{}, false
		}
		return mailer.StatusUpdateToUser(&r, ev.User.Username, ev.User.Email, ev.AdminMessage), true
	default:
		d.log.Warn("unknown notification kind", "kind", ev.Kind)
		return mailer.Message{}, false
	}
}
