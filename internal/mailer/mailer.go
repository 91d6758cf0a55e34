// Package mailer delivers password-reset OTPs. Delivery is synchronous:
// the forgot-password request is held until the send returns, and a
// failure surfaces to the caller.
package mailer

import (
	"fmt"

	"ops-portal/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendOTP(email, otp string) error
}

// smtpMailer sends over SMTP with gomail
type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

// logMailer prints the OTP to the logs instead of sending it. Used when
// SMTP is not configured, so development setups work out of the box.
type logMailer struct {
	log *zap.Logger
}

// New picks the SMTP mailer when a host is configured, the log mailer
// otherwise
func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		log.Warn("SMTP not configured, OTP emails will be logged only")
		return &logMailer{log: log}
	}
	return &smtpMailer{config: config, log: log}
}

func (m *smtpMailer) SendOTP(email, otp string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your OTP Code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your OTP code is: %s\n\nIt expires in 10 minutes. If you did not request a password reset, ignore this email.", otp))

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send OTP email",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("send OTP email to %s: %w", email, err)
	}

	m.log.Info("OTP email sent", zap.String("email", email))
	return nil
}

func (m *logMailer) SendOTP(email, otp string) error {
	m.log.Info("OTP generated (log-only delivery)",
		zap.String("email", email),
		zap.String("otp", otp),
	)
	return nil
}
