// Package notification delivers booking emails. Delivery is best-effort:
// callers fire it after the primary mutation has committed and never roll
// back on failure.
package notification

import (
	"fmt"
	"net/smtp"

	"github.com/bwubca23694-eng/Brainware-Rooms/config"
)

// Event names a booking lifecycle notification
type Event string

const (
	EventNewBooking       Event = "new_booking"
	EventBookingConfirmed Event = "booking_confirmed"
	EventBookingRejected  Event = "booking_rejected"
)

// Service is the notification surface used by the booking service
type Service interface {
	SendBookingNotification(to, name string, event Event, data map[string]string) error
}

// SMTPService implements Service over a plain SMTP relay
type SMTPService struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPFromEnv builds an SMTPService from SMTP_* environment variables
func NewSMTPFromEnv() *SMTPService {
	return &SMTPService{
		host:     config.GetEnvDefault("SMTP_HOST", "smtp-relay.brevo.com"),
		port:     config.GetEnvDefault("SMTP_PORT", "587"),
		username: config.GetEnv("SMTP_USER"),
		password: config.GetEnv("SMTP_PASS"),
		from:     config.GetEnvDefault("SMTP_FROM", "Brainware Rooms <noreply@brainwarerooms.in>"),
	}
}

func (s *SMTPService) SendBookingNotification(to, name string, event Event, data map[string]string) error {
	subject, body := composeBooking(name, event, data)

	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.username, []string{to}, msg); err != nil {
		return fmt.Errorf("send %s mail to %s: %w", event, to, err)
	}
	return nil
}

func composeBooking(name string, event Event, data map[string]string) (subject, body string) {
	roomTitle := data["roomTitle"]

	switch event {
	case EventNewBooking:
		subject = "New booking request - " + roomTitle
		body = fmt.Sprintf("Hi %s,\n\n%s has requested to book %q. "+
			"Log in to your dashboard to confirm or reject the request.",
			name, data["studentName"], roomTitle)
	case EventBookingConfirmed:
		subject = "Booking confirmed - " + roomTitle
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %q has been confirmed by the owner.", name, roomTitle)
		if note := data["note"]; note != "" {
			body += "\n\nOwner's note: " + note
		}
	case EventBookingRejected:
		subject = "Booking update - " + roomTitle
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %q was not accepted.", name, roomTitle)
		if note := data["note"]; note != "" {
			body += "\n\nOwner's note: " + note
		}
	default:
		subject = "Brainware Rooms update"
		body = fmt.Sprintf("Hi %s,\n\nThere is an update on %q.", name, roomTitle)
	}

	body += "\n\n- Brainware Rooms"
	return subject, body
}
