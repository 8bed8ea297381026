package agent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/theyellowexpress/expressbot/internal/db"
	"github.com/theyellowexpress/expressbot/internal/llm"
	"github.com/theyellowexpress/expressbot/internal/orders"
)

type fakeFinder struct {
	order *orders.Order
	err   error
	asked []string
}

func (f *fakeFinder) GetByTracking(_ context.Context, tracking string) (*orders.Order, error) {
	f.asked = append(f.asked, tracking)
	return f.order, f.err
}

type fakeCompleter struct {
	answer string
	err    error
	calls  int
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ []llm.Message) (string, error) {
	f.calls++
	return f.answer, f.err
}

func TestExtractTracking(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"mi guía es YE20250315F2A", "YE20250315F2A", true},
		{"ye20250101abc donde va?", "ye20250101abc", true},
		{"guía: ABC123", "ABC123", true},
		{"pedido #XYZ999", "XYZ999", true},
		{"tracking TRACK12345", "TRACK12345", true},
		{"#YE20250315AAA dónde está", "YE20250315AAA", true},
		{"hola buenos días", "", false},
	}
	for _, tt := range tests {
		got, ok := extractTracking(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractTracking(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func sampleOrder() *orders.Order {
	created := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	return &orders.Order{
		TrackingNumber:     "YE20250315F2A",
		CustomerName:       "Maria Lopez",
		DestinationCity:    "San Salvador",
		DestinationCountry: "El Salvador",
		Status:             orders.StatusOutForDelivery,
		CreatedAt:          created,
	}
}

func TestProcessMessageTracking(t *testing.T) {
	finder := &fakeFinder{order: sampleOrder()}
	completer := &fakeCompleter{answer: "no debería usarse"}
	a := New(finder, completer, nil, "")

	reply := a.ProcessMessage(context.Background(), "+50370001111", "dónde está mi paquete YE20250315F2A")

	if completer.calls != 0 {
		t.Error("tracking questions must not reach the model")
	}
	for _, want := range []string{"YE20250315F2A", "En Ruta de Entrega", "15/03/2025", "motorista"} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply missing %q:\n%s", want, reply)
		}
	}
}

func TestProcessMessageTrackingNotFound(t *testing.T) {
	finder := &fakeFinder{}
	a := New(finder, &fakeCompleter{}, nil, "")

	reply := a.ProcessMessage(context.Background(), "+50370001111", "guía: YE00000000AAA")

	if !strings.Contains(reply, "No encontré ningún pedido") {
		t.Errorf("reply = %q", reply)
	}
	if !strings.Contains(reply, DefaultSupportWhatsApp) {
		t.Errorf("reply should quote the support line: %q", reply)
	}
}

func TestProcessMessageDelegates(t *testing.T) {
	completer := &fakeCompleter{answer: "¡Claro! El horario es de lunes a sábado."}
	a := New(&fakeFinder{}, completer, nil, "")

	reply := a.ProcessMessage(context.Background(), "+50370001111", "cuál es el horario de atención")

	if reply != completer.answer {
		t.Errorf("reply = %q, want model answer", reply)
	}
	if completer.calls != 1 {
		t.Errorf("completer calls = %d", completer.calls)
	}
}

func TestProcessMessageModelFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("boom")}
	a := New(&fakeFinder{}, completer, nil, "+503 9999 0000")

	reply := a.ProcessMessage(context.Background(), "+50370001111", "hola")

	if !strings.Contains(reply, "problemas técnicos") {
		t.Errorf("reply = %q", reply)
	}
	if !strings.Contains(reply, "+503 9999 0000") {
		t.Errorf("reply should quote the configured support line: %q", reply)
	}
}

func TestProcessMessageRecordsTranscript(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	defer database.Close()
	transcript := NewStore(database)

	completer := &fakeCompleter{answer: "Con gusto."}
	a := New(&fakeFinder{}, completer, transcript, "")
	ctx := context.Background()

	a.ProcessMessage(ctx, "+50370001111", "gracias")

	entries, err := transcript.Recent(ctx, "+50370001111", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(entries))
	}
	if entries[0].Role != "user" || entries[0].Message != "gracias" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Role != "assistant" || entries[1].Message != "Con gusto." {
		t.Errorf("second entry = %+v", entries[1])
	}
}

type fakeSender struct {
	to   []string
	body []string
}

func (f *fakeSender) SendWhatsApp(_ context.Context, to, body string) error {
	f.to = append(f.to, to)
	f.body = append(f.body, body)
	return nil
}

func TestWebhook(t *testing.T) {
	finder := &fakeFinder{order: sampleOrder()}
	sender := &fakeSender{}
	a := New(finder, &fakeCompleter{}, nil, "")

	r := chi.NewRouter()
	RegisterRoutes(r, a, sender, nil)
	srv := httptest.NewServer(r)
	defer srv.Close()

	form := url.Values{
		"Body": {"estado de mi guía YE20250315F2A"},
		"From": {"whatsapp:+50370001111"},
	}
	resp, err := http.PostForm(srv.URL+"/api/agent/whatsapp", form)
	if err != nil {
		t.Fatalf("POST webhook: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/xml" {
		t.Errorf("content type = %q, want text/xml", ct)
	}

	if len(sender.to) != 1 || sender.to[0] != "whatsapp:+50370001111" {
		t.Errorf("sender recipients = %v", sender.to)
	}
	if !strings.Contains(sender.body[0], "YE20250315F2A") {
		t.Errorf("reply body = %q", sender.body[0])
	}
}

func TestWebhookMissingFields(t *testing.T) {
	a := New(&fakeFinder{}, &fakeCompleter{}, nil, "")
	r := chi.NewRouter()
	RegisterRoutes(r, a, nil, nil)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/api/agent/whatsapp", url.Values{"Body": {"hola"}})
	if err != nil {
		t.Fatalf("POST webhook: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
