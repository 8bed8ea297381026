package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/theyellowexpress/expressbot/internal/orders"
)

type fakeSender struct {
	whatsappTo   []string
	whatsappBody []string
	emailTo      []string
	subjects     []string
	err          error
}

func (f *fakeSender) SendWhatsApp(_ context.Context, to, body string) error {
	f.whatsappTo = append(f.whatsappTo, to)
	f.whatsappBody = append(f.whatsappBody, body)
	return f.err
}

func (f *fakeSender) SendEmail(_ context.Context, to, subject, _ string) error {
	f.emailTo = append(f.emailTo, to)
	f.subjects = append(f.subjects, subject)
	return f.err
}

func sampleOrder() *orders.Order {
	return &orders.Order{
		TrackingNumber:     "YE20250315F2A",
		CustomerName:       "Maria Lopez",
		CustomerEmail:      "maria@example.com",
		CustomerPhone:      "+50370001111",
		DestinationCity:    "San Salvador",
		DestinationCountry: "El Salvador",
		Status:             orders.StatusOutForDelivery,
	}
}

func TestDispatcherSendsBothChannels(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, sender, "https://theyellowexpress.com/")

	d.OrderStatusChanged(context.Background(), sampleOrder(), "motorista Juan")

	if len(sender.whatsappTo) != 1 || sender.whatsappTo[0] != "+50370001111" {
		t.Errorf("whatsapp recipients = %v", sender.whatsappTo)
	}
	body := sender.whatsappBody[0]
	for _, want := range []string{
		"YE20250315F2A",
		"En Ruta de Entrega",
		"San Salvador, El Salvador",
		"motorista Juan",
		"https://theyellowexpress.com/track/YE20250315F2A",
		"en camino",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("whatsapp body missing %q:\n%s", want, body)
		}
	}

	if len(sender.emailTo) != 1 || sender.emailTo[0] != "maria@example.com" {
		t.Errorf("email recipients = %v", sender.emailTo)
	}
	if !strings.Contains(sender.subjects[0], "YE20250315F2A") {
		t.Errorf("subject = %q", sender.subjects[0])
	}
}

func TestDispatcherSkipsMissingContacts(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, sender, "")

	o := sampleOrder()
	o.CustomerPhone = ""
	o.CustomerEmail = ""
	d.OrderStatusChanged(context.Background(), o, "")

	if len(sender.whatsappTo) != 0 || len(sender.emailTo) != 0 {
		t.Errorf("nothing should be sent, got %v / %v", sender.whatsappTo, sender.emailTo)
	}
}

func TestDispatcherSwallowsSendErrors(t *testing.T) {
	sender := &fakeSender{err: errors.New("twilio down")}
	d := NewDispatcher(sender, sender, "")

	// Must not panic or propagate.
	d.OrderStatusChanged(context.Background(), sampleOrder(), "")

	if len(sender.whatsappTo) != 1 || len(sender.emailTo) != 1 {
		t.Error("both sends should still be attempted")
	}
}

func TestDeliveredMessageThanksCustomer(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nil, "")

	o := sampleOrder()
	o.Status = orders.StatusDelivered
	d.OrderStatusChanged(context.Background(), o, "")

	if !strings.Contains(sender.whatsappBody[0], "ha sido entregado") {
		t.Errorf("delivered body missing thanks:\n%s", sender.whatsappBody[0])
	}
}
