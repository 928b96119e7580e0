package notify

import (
	"fmt"
	"net/smtp"

	"github.com/lifecarelabs/lab-portal/internal/config"
)

// Sender é o colaborador externo de notificação: entrega e pronto.
// Falha de envio nunca se propaga para quem disparou.
type Sender interface {
	Send(recipient, subject, body string) error
}

// --------------------------------------------------
// SMTP
// --------------------------------------------------

type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.LabEmail,
	}
}

func (s *SMTPSender) Send(recipient, subject, body string) error {
	if s.host == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + recipient + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"\r\n" +
			body + "\r\n",
	)

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	return smtp.SendMail(addr, auth, s.from, []string{recipient}, msg)
}

// Compile-time check
var _ Sender = (*SMTPSender)(nil)
