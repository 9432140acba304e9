// Package mailer delivers catalog exports by email. It builds MIME
// messages with a CSV attachment, speaks SMTP with STARTTLS to the
// configured relay, and runs the best-effort background dispatcher
// that decouples delivery from the request path.
package mailer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/medialogapp/medialog-server/internal/config"
)

// Sender delivers one message to one recipient. Implemented by the
// SMTP mailer; tests substitute fakes.
type Sender interface {
	Send(ctx context.Context, job Job) error
}

// Job is the immutable snapshot handed to the background workers. It
// carries everything delivery needs so the worker never touches
// per-request state.
type Job struct {
	ID          string // e.g. "job-V1StGXR8_Z5jdHi6B-myT"
	Recipient   string
	DisplayName string
	Subject     string
	Filename    string
	CSV         []byte
}

// Mailer sends export emails through an SMTP relay using STARTTLS and
// authenticated submission.
type Mailer struct {
	cfg     config.MailConfig
	timeout time.Duration
}

// New creates a Mailer for the given relay configuration.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg:     cfg,
		timeout: 30 * time.Second,
	}
}

// Send builds the MIME message and submits it to the relay. A single
// attempt: any connection, auth, or submission failure is returned to
// the caller (the dispatcher, which logs and discards it).
func (m *Mailer) Send(ctx context.Context, job Job) error {
	msg := m.buildMessage(job)
	return m.sendSMTP(ctx, job.Recipient, msg)
}

// buildMessage constructs a multipart/mixed message with a plain-text
// body and one text/csv attachment, base64-encoded per RFC 2045.
func (m *Mailer) buildMessage(job Job) string {
	var msg strings.Builder
	boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())

	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.FromAddress()))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", job.Recipient))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", job.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	msg.WriteString("\r\n")

	// Plain text part.
	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf("Hi %s,\r\n\r\nAttached is your MediaLog collection export as a CSV file.\r\n", job.DisplayName))
	msg.WriteString("\r\n")

	// CSV attachment.
	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/csv; charset=UTF-8\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", job.Filename))
	msg.WriteString("\r\n")
	msg.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(job.CSV)))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return msg.String()
}

// sendSMTP submits the message: connect, STARTTLS, authenticate, send.
func (m *Mailer) sendSMTP(ctx context.Context, to, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("create SMTP client: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: m.cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication: %w", err)
	}

	if err := client.Mail(m.cfg.FromAddress()); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("start message: %w", err)
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	// The message is already accepted; a failed QUIT is not a delivery
	// failure.
	_ = client.Quit()

	return nil
}

// wrapBase64 folds encoded content at 76 columns per RFC 2045.
func wrapBase64(s string) string {
	const lineLen = 76
	var b strings.Builder
	for len(s) > lineLen {
		b.WriteString(s[:lineLen])
		b.WriteString("\r\n")
		s = s[lineLen:]
	}
	b.WriteString(s)
	return b.String()
}
