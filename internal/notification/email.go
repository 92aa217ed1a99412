package notification

import (
	"context"
	"fmt"
	"io"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

const (
	qrImageSize    = 256
	attachmentName = "registration_qr_code.png"
)

// Message is one pending proof-of-registration email.
type Message struct {
	RegistrationID string
	EventID        string
	To             string
	Subject        string
	Body           string
	QRPayload      string
}

// NewMessage renders the registration into its outbound email form.
func NewMessage(reg *domain.Registration, event *domain.Event) Message {
	return Message{
		RegistrationID: reg.ID,
		EventID:        event.ID,
		To:             reg.Email,
		Subject:        fmt.Sprintf("Your Registration for %s - QR Code", event.Title),
		Body:           fmt.Sprintf("Thank you for registering for %s. Your QR code with event details is attached.", event.Title),
		QRPayload:      qrPayload(reg, event),
	}
}

func qrPayload(reg *domain.Registration, event *domain.Event) string {
	eventTime := ""
	if event.EventTime != nil {
		eventTime = *event.EventTime
	}
	return fmt.Sprintf(
		"Full Name: %s\n"+
			"Email: %s\n"+
			"Event: %s\n"+
			"Organizer: %s\n"+
			"Event Type: %s\n"+
			"Location: %s\n"+
			"Event Code: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Registered At: %s",
		reg.FullName,
		reg.Email,
		event.Title,
		event.Organizer,
		event.EventType,
		event.Location,
		event.EventCode,
		event.EventDate.Format("2006-01-02"),
		eventTime,
		reg.RegisteredAt.Format(time.RFC3339),
	)
}

// EmailSender delivers messages over SMTP with the QR code attached as PNG.
// A nil dialer disables sending entirely.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailSender(host string, port int, username, password, from string, log logger.Logger) *EmailSender {
	if host == "" {
		log.Warn("smtp host is empty, registration emails disabled")
		return &EmailSender{dialer: nil, from: from, logger: log}
	}

	return &EmailSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: log,
	}
}

func (s *EmailSender) Send(ctx context.Context, msg Message) error {
	if s.dialer == nil {
		s.logger.Debug("registration email skipped (smtp disabled)",
			logger.String("registration_id", msg.RegistrationID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	png, err := qrcode.Encode(msg.QRPayload, qrcode.Medium, qrImageSize)
	if err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	m.Attach(attachmentName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}),
	)

	// DialAndSend has no context support; bound it so a stuck SMTP server
	// cannot wedge the dispatcher worker.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send email: %w", err)
		}
		return nil
	}
}
