package mailer

import (
	"gopkg.in/gomail.v2"
)

// Message is one outbound notification email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Repo is the mail delivery client. Delivery is best effort; callers decide
// what to do with errors (the notifier just logs them).
type Repo interface {
	Send(msg Message) error
}

type smtpRepo struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, password, from string) Repo {
	return &smtpRepo{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (r *smtpRepo) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", r.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return r.dialer.DialAndSend(m)
}
