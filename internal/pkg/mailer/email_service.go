package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, name string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendWelcome(toEmail, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to AI Textbook")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your account is ready. Open a textbook, ask questions, and the assistant will answer from the chapter content.</p>
			<p>Happy reading!</p>
		</div>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Welcome email sent to %s\n", toEmail)
	return nil
}
