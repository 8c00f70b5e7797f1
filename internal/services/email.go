package services

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
	"workshelf/internal/config"
	"workshelf/internal/logger"

	"go.uber.org/zap"
)

type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

func (s *EmailService) Send(to []string, subject, body string) error {
	msg := []byte("Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, msg)
}

func (s *EmailService) SendHTML(to []string, subject, htmlBody string) error {
	msg := []byte("Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		htmlBody)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, msg)
}

// SendPasswordReset кладёт письмо в очередь, отправка уходит в воркер:
// запрос сброса не должен ждать SMTP. Срок действия в тексте берётся из
// настроенного TTL токена.
func (s *EmailService) SendPasswordReset(ctx context.Context, to, resetLink string, ttl time.Duration) error {
	body := fmt.Sprintf(
		"You requested a password reset for your WorkShelf account.\n\n"+
			"Follow the link to set a new password:\n%s\n\n"+
			"The link is valid for %d minutes and can be used once.\n"+
			"If you did not request a reset, ignore this message.",
		resetLink, int(ttl.Minutes()),
	)
	select {
	case EmailQueue <- EmailJob{To: []string{to}, Subject: "WorkShelf password reset", Body: body}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type EmailJob struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

var EmailQueue = make(chan EmailJob, 100) // глобальная очередь на 100 писем

func StartEmailWorker(emailService *EmailService) {
	go func() {
		for job := range EmailQueue {
			var err error
			if job.IsHTML {
				err = emailService.SendHTML(job.To, job.Subject, job.Body)
			} else {
				err = emailService.Send(job.To, job.Subject, job.Body)
			}
			if err != nil {
				logger.Log.Error("Не удалось отправить письмо", zap.Error(err))
			}
		}
	}()
}
