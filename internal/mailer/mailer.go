package mailer

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/jordan-wright/email"
	"go.uber.org/zap"
)

// Sender delivers account emails out-of-band. Implementations must never
// surface delivery failures to the triggering operation.
//
//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Sender interface {
	SendVerificationEmail(name, to, otp string)
	SendPasswordResetEmail(name, to, otp string)
	SendPasswordChangedEmail(name, to, changedAt string)
}

// Mailer wraps SMTP configuration for sending account emails.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	appName  string
	addr     string
	logger   *zap.Logger
}

func NewFromEnv(logger ...*zap.Logger) *Mailer {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer")
	}

	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	return &Mailer{
		host:     host,
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     os.Getenv("EMAIL_FROM"),
		appName:  os.Getenv("APP_NAME"),
		addr:     fmt.Sprintf("%s:%s", host, port),
		logger:   l,
	}
}

// SendVerificationEmail dispatches an onboarding OTP asynchronously.
func (m *Mailer) SendVerificationEmail(name, to, otp string) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s verification code is %s. It expires in 5 minutes.\n",
		name, m.appName, otp,
	)
	go m.send(to, "Account Verification", body)
}

// SendPasswordResetEmail dispatches a password-reset OTP asynchronously.
func (m *Mailer) SendPasswordResetEmail(name, to, otp string) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s password reset code is %s. It expires in 5 minutes.\n",
		name, m.appName, otp,
	)
	go m.send(to, "Initiated Password Reset", body)
}

// SendPasswordChangedEmail dispatches a password-change confirmation
// asynchronously.
func (m *Mailer) SendPasswordChangedEmail(name, to, changedAt string) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s password was changed on %s. If this was not you, contact support immediately.\n",
		name, m.appName, changedAt,
	)
	go m.send(to, "Password Changed", body)
}

// send delivers one message. Failures are logged and swallowed: a missed
// email must never roll back the record mutation that triggered it.
func (m *Mailer) send(to, subject, body string) {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", m.appName, m.from)
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := e.Send(m.addr, auth); err != nil {
		m.logger.Warn("email delivery failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return
	}
	m.logger.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
}
