package adapter

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/helper"
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	smtpTimeout   = 10 * time.Second
	smtpRetries   = 3
	smtpBaseDelay = time.Second
)

var errSMTPAuthUnsupported = errors.New("smtp server does not advertise AUTH")

// EmailAdapter delivers HTML mail over SMTP with STARTTLS when offered.
type EmailAdapter struct {
	host     string
	port     int
	user     string
	password string
	from     mail.Address
}

func NewEmailAdapter(cfg *config.AppConfig) *EmailAdapter {
	return &EmailAdapter{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     mail.Address{Name: cfg.SMTPFromName, Address: cfg.SMTPFromEmail},
	}
}

// Enabled is false when no SMTP host is configured; sign-up then confirms accounts directly.
func (e *EmailAdapter) Enabled() bool {
	return e.host != ""
}

func (e *EmailAdapter) Send(ctx context.Context, to []string, subject string, body string) error {
	if len(to) == 0 {
		return errors.New("no recipients")
	}
	msg := e.compose(to, subject, body, time.Now())

	_, err := helper.RetryWithBackoff(ctx, func() (struct{}, bool, error) {
		err := e.deliver(ctx, to, msg)
		return struct{}{}, err != nil && !errors.Is(err, errSMTPAuthUnsupported), err
	}, smtpRetries, smtpBaseDelay)
	return err
}

func (e *EmailAdapter) compose(to []string, subject, body string, now time.Time) []byte {
	var buf bytes.Buffer
	header := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, value)
	}

	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, (&mail.Address{Address: addr}).String())
	}

	header("From", e.from.String())
	header("To", strings.Join(recipients, ", "))
	header("Subject", mime.QEncoding.Encode("utf-8", subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), e.host))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	buf.WriteString("\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")
	return buf.Bytes()
}

func (e *EmailAdapter) dial(ctx context.Context) (*smtp.Client, error) {
	dialer := net.Dialer{Timeout: smtpTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(e.host, strconv.Itoa(e.port)))
	if err != nil {
		return nil, err
	}
	if err := conn.SetDeadline(time.Now().Add(smtpTimeout)); err != nil {
		conn.Close()
		return nil, err
	}

	client, err := smtp.NewClient(conn, e.host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}

func (e *EmailAdapter) authenticate(client *smtp.Client) error {
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: e.host}); err != nil {
			return err
		}
	}
	if e.user == "" && e.password == "" {
		return nil
	}
	if ok, _ := client.Extension("AUTH"); !ok {
		return errSMTPAuthUnsupported
	}
	return client.Auth(smtp.PlainAuth("", e.user, e.password, e.host))
}

func (e *EmailAdapter) deliver(ctx context.Context, to []string, msg []byte) error {
	client, err := e.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := e.authenticate(client); err != nil {
		return err
	}
	if err := client.Mail(e.from.Address); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
