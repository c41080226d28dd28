package services

import (
	"CarePulse/config"
	"CarePulse/models"
	"CarePulse/utils"
	"context"
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// Notifier tells a patient about a change to their appointment.
type Notifier interface {
	AppointmentUpdated(ctx context.Context, appointment *models.Appointment) error
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) AppointmentUpdated(context.Context, *models.Appointment) error { return nil }

// MailNotifier emails the patient through SMTP.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewNotifier returns a MailNotifier, or a NopNotifier when SMTP is not configured.
func NewNotifier(cfg config.SMTPConfig) Notifier {
	if cfg.Host == "" {
		return NopNotifier{}
	}
	return &MailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (n *MailNotifier) AppointmentUpdated(ctx context.Context, appointment *models.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := BuildAppointmentMessage(n.from, appointment)
	if err != nil {
		return err
	}
	return n.dialer.DialAndSend(m)
}

// BuildAppointmentMessage renders the email for a scheduled or cancelled appointment.
func BuildAppointmentMessage(from string, a *models.Appointment) (*gomail.Message, error) {
	if a.Patient == nil || a.Patient.Email == "" {
		return nil, errors.New("appointment has no patient email")
	}

	var subject, body string
	switch a.Status {
	case models.StatusScheduled:
		subject = "Your appointment is confirmed"
		body = fmt.Sprintf("Greetings from CarePulse. Your appointment is confirmed for %s with Dr. %s.",
			utils.FormatDateTime(a.AppointmentDate), a.PrimaryPhysician)
	case models.StatusCancelled:
		subject = "Your appointment has been cancelled"
		body = fmt.Sprintf("We regret to inform you that your appointment for %s is cancelled. Reason: %s.",
			utils.FormatDateTime(a.AppointmentDate), a.CancellationReason)
	default:
		return nil, fmt.Errorf("no notification for status %q", a.Status)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", a.Patient.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", "<p>"+html.EscapeString(body)+"</p>")
	return m, nil
}
