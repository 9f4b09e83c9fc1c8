package email

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// NotificationService defines the interface for the contact notification
// side channel. Implementations are best-effort: callers must never fail a
// request because a send failed.
type NotificationService interface {
	SendNewContactNotification(toEmail, educatorName, practiceTitle, parentName, message string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromEmail   string
	FrontendURL string // used for the admin console link in notifications
}

// smtpNotificationService implements NotificationService over plain SMTP.
type smtpNotificationService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(config SMTPConfig, logger zerolog.Logger) NotificationService {
	return &smtpNotificationService{
		config: config,
		logger: logger,
	}
}

// SendNewContactNotification emails an educator about a new contact message.
func (s *smtpNotificationService) SendNewContactNotification(toEmail, educatorName, practiceTitle, parentName, message string) error {
	// Without SMTP credentials the message is logged instead of sent, which
	// keeps local development working.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("practiceTitle", practiceTitle).
			Str("parentName", parentName).
			Msg("SMTP credentials not configured - contact notification not sent")
		return nil
	}

	subject := fmt.Sprintf("[New Contact] Inquiry about %s", practiceTitle)

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">You have a new contact message</h2>
				<p>Hello %s,</p>
				<p>%s sent an inquiry about your teaching practice "%s".</p>

				<h3>Message:</h3>
				<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">
					<p>%s</p>
				</div>

				<p style="margin-top: 20px;">
					Please review and reply from the admin console:<br>
					<a href="%s/admin/contacts">Open admin console</a>
				</p>

				<hr style="margin-top: 30px;">
				<p style="font-size: 12px; color: #666;">
					This email was sent automatically by the teaching practice platform.
				</p>
			</div>
		</body>
		</html>
	`, educatorName, parentName, practiceTitle, strings.ReplaceAll(message, "\n", "<br>"), s.config.FrontendURL)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email over SMTP
func (s *smtpNotificationService) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var builder strings.Builder
	for key, value := range headers {
		builder.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	builder.WriteString("\r\n" + htmlBody)

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(builder.String()),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
