// Package mail sends the contact-form notification and confirmation
// emails. Delivery is best effort; the API never fails a request because
// an email could not be sent.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Sender interface {
	// SendContactNotification alerts the site owner about a new submission.
	SendContactNotification(name, email, message string) error
	// SendConfirmation acknowledges the submission to its author.
	SendConfirmation(recipient, name string) error
}

type SMTPSender struct {
	host       string
	port       int
	username   string
	password   string
	adminEmail string
}

func NewSMTPSender(host string, port int, username, password, adminEmail string) *SMTPSender {
	return &SMTPSender{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		adminEmail: adminEmail,
	}
}

func (s *SMTPSender) SendContactNotification(name, email, message string) error {
	subject := fmt.Sprintf("New Contact Form Submission from %s", name)
	body := fmt.Sprintf(`You have received a new contact form submission:

Name: %s
Email: %s

Message:
%s

---
This is an automated notification from your portfolio website.
`, name, email, message)
	return s.send(s.adminEmail, subject, body)
}

func (s *SMTPSender) SendConfirmation(recipient, name string) error {
	subject := "Thanks for reaching out!"
	body := fmt.Sprintf(`Hi %s,

Thank you for contacting me through my portfolio website. I have received your message and will get back to you soon.

Best regards
`, name)
	return s.send(recipient, subject, body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.username)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, s.username, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// Disabled is the Sender used when SMTP is not configured: every send
// reports failure so handlers surface email_sent=false.
type Disabled struct{}

func (Disabled) SendContactNotification(string, string, string) error {
	return fmt.Errorf("mail: smtp not configured")
}

func (Disabled) SendConfirmation(string, string) error {
	return fmt.Errorf("mail: smtp not configured")
}
