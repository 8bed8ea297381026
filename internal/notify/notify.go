// Package notify delivers order status updates to customers over WhatsApp
// and email. Delivery is best effort: a failed notification is logged and
// never propagates to the status update that triggered it.
package notify

import (
	"context"
	"log"
	"strings"

	"github.com/theyellowexpress/expressbot/internal/orders"
)

// WhatsAppSender delivers a text message to a phone number in E.164 form.
type WhatsAppSender interface {
	SendWhatsApp(ctx context.Context, to, body string) error
}

// EmailSender delivers an email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// LogSender writes notifications to the process log instead of sending them.
// It is the default in development, where no messaging credentials exist.
type LogSender struct{}

func (LogSender) SendWhatsApp(_ context.Context, to, body string) error {
	log.Printf("notify: whatsapp to %s:\n%s", to, body)
	return nil
}

func (LogSender) SendEmail(_ context.Context, to, subject, _ string) error {
	log.Printf("notify: email to %s: %s", to, subject)
	return nil
}

// Dispatcher fans a status change out to the configured channels. Either
// sender may be nil to disable that channel.
type Dispatcher struct {
	whatsapp WhatsAppSender
	email    EmailSender
	baseURL  string
}

// NewDispatcher creates a dispatcher over the given senders. baseURL is the
// public site address used to build tracking links; empty omits the link.
func NewDispatcher(whatsapp WhatsAppSender, email EmailSender, baseURL string) *Dispatcher {
	return &Dispatcher{whatsapp: whatsapp, email: email, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// OrderStatusChanged notifies the customer about a persisted status change.
func (d *Dispatcher) OrderStatusChanged(ctx context.Context, o *orders.Order, notes string) {
	trackURL := ""
	if d.baseURL != "" {
		trackURL = d.baseURL + "/track/" + o.TrackingNumber
	}

	if d.whatsapp != nil && o.CustomerPhone != "" {
		if err := d.whatsapp.SendWhatsApp(ctx, o.CustomerPhone, statusWhatsAppBody(o, trackURL, notes)); err != nil {
			log.Printf("notify: whatsapp for %s: %v", o.TrackingNumber, err)
		}
	}
	if d.email != nil && o.CustomerEmail != "" {
		subject, body := statusEmail(o, trackURL, notes)
		if err := d.email.SendEmail(ctx, o.CustomerEmail, subject, body); err != nil {
			log.Printf("notify: email for %s: %v", o.TrackingNumber, err)
		}
	}
}
