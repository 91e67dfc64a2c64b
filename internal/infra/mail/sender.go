package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tahqeeq/outreach/internal/entity"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendDraft delivers the lead's generated draft as a plain-text email. The
// draft body already carries the greeting and signature, so only a subject
// line is added.
func (s *EmailSender) SendDraft(lead *entity.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", lead.Email)
	m.SetHeader("Subject", fmt.Sprintf("Regarding %s", lead.Company))
	m.SetBody("text/plain", lead.GeneratedDraft)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send SMTP email: %w", err)
	}
	return nil
}
