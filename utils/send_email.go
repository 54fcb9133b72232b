package utils

import (
	"fmt"
	"net/smtp"
)

// SMTPConfig carries the outgoing-mail settings. Empty Host disables mail.
type SMTPConfig struct {
	Host     string
	Port     string
	Email    string
	Password string
}

func (s SMTPConfig) Enabled() bool { return s.Host != "" && s.Email != "" }

// SendEmail sends an HTML mail with UTF-8 headers.
func SendEmail(cfg SMTPConfig, to, subject, body string) error {
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", cfg.Email)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + body

	err := smtp.SendMail(
		cfg.Host+":"+cfg.Port,
		smtp.PlainAuth("", cfg.Email, cfg.Password, cfg.Host),
		cfg.Email,
		[]string{to},
		[]byte(msg),
	)
	if err != nil {
		return fmt.Errorf("sending email failed: %v", err)
	}
	return nil
}
