package report

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const starttlsPort = 587

// DeliveryError marks a failed report delivery. It is non-fatal to the
// conversation: the session state is unaffected and the send can be retried.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver report: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Mailer delivers the report PDF over SMTP. A mailer without credentials is
// valid but degraded: every Send fails with a DeliveryError.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
	logger   *zap.Logger

	// send is swapped in tests to avoid dialing out.
	send func(d *gomail.Dialer, m *gomail.Message) error
}

func NewMailer(host string, port int, from, password string, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		logger:   logger,
		send: func(d *gomail.Dialer, m *gomail.Message) error {
			return d.DialAndSend(m)
		},
	}
}

// Configured reports whether delivery credentials are available.
func (m *Mailer) Configured() bool {
	return m.from != "" && m.password != ""
}

// Send delivers the report to the recipient with the PDF attached. The
// message carries a plain body and an HTML alternative. Delivery is attempted
// over SSL first, then retried once over STARTTLS before giving up.
func (m *Mailer) Send(to, subject, body string, pdf []byte) error {
	if strings.TrimSpace(to) == "" {
		return &DeliveryError{Err: errors.New("recipient address is empty")}
	}

	if !m.Configured() {
		return &DeliveryError{Err: errors.New("delivery credentials are not configured")}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.AddAlternative("text/html", htmlBody(body))
	msg.Attach(AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	dialer := gomail.NewDialer(m.host, m.port, m.from, m.password)
	dialer.SSL = true

	err := m.send(dialer, msg)
	if err == nil {
		m.logger.Info("report delivered",
			zap.String("recipient", to),
			zap.Int("attachment_bytes", len(pdf)),
		)
		return nil
	}

	m.logger.Warn("ssl delivery failed, retrying over starttls",
		zap.String("host", m.host),
		zap.Int("port", m.port),
		zap.Error(err),
	)

	fallback := gomail.NewDialer(m.host, starttlsPort, m.from, m.password)
	if err := m.send(fallback, msg); err != nil {
		return &DeliveryError{Err: err}
	}

	m.logger.Info("report delivered",
		zap.String("recipient", to),
		zap.String("transport", "starttls"),
		zap.Int("attachment_bytes", len(pdf)),
	)

	return nil
}

func htmlBody(body string) string {
	escaped := html.EscapeString(body)
	return "<html><body><p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p></body></html>"
}
