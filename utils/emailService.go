package utils

import (
	"fmt"
	"net/smtp"

	"lms/config"
)

// EmailService sends transactional mail through the configured SMTP
// account. When no sender is configured every send is a silent no-op.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// Configured reports whether SMTP credentials are present.
func (s *EmailService) Configured() bool {
	return s.cfg.EmailSender != "" && s.cfg.EmailPassword != ""
}

// SendWelcomeEmail sends a welcome notification after registration.
func (s *EmailService) SendWelcomeEmail(email, userName string) error {
	if !s.Configured() {
		return nil
	}

	from := s.cfg.EmailSender
	password := s.cfg.EmailPassword

	to := []string{email}

	subject := "Subject: Welcome to the Learning Platform\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome, %s!</h2>
					<p style="font-size: 16px; color: #555555;">Your account has been created successfully.</p>
					<p style="font-size: 14px; color: #666666;">Browse the course catalog and start learning at your own pace.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Happy Learning!</p>
				</div>
			</body>
		</html>
	`, userName)

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, s.cfg.SMTPHost)

	return smtp.SendMail(s.cfg.SMTPHost+":"+s.cfg.SMTPPort, auth, from, to, message)
}
