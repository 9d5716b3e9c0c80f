package email

import (
	"context"
	"fmt"
	"net/smtp"
)

// ContactNotificationData is the payload for the admin notification
// sent when a contact message is submitted.
type ContactNotificationData struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type EmailService interface {
	SendContactNotification(ctx context.Context, to string, data ContactNotificationData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

// NewSMTPEmailService talks to a plain SMTP relay (mailhog/mailpit in
// development).
func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, to string, data ContactNotificationData) error {
	subject := fmt.Sprintf("New contact message: %s", data.Subject)
	body := fmt.Sprintf(`New message from the contact form.

From: %s <%s>
Subject: %s

%s

Message ID: %s`, data.Name, data.Email, data.Subject, data.Message, data.MessageID)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
}
