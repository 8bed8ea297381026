package agent

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// WhatsAppSender delivers the agent's reply back to the customer.
// notify.LogSender and the Twilio-backed sender both satisfy it.
type WhatsAppSender interface {
	SendWhatsApp(ctx context.Context, to, body string) error
}

// twimlEmpty acknowledges a Twilio webhook without sending a reply through
// the webhook response itself; the reply goes out via the sender instead.
const twimlEmpty = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// RegisterRoutes mounts the support-agent endpoints. sender may be nil, in
// which case replies only appear in the webhook's own processing (useful in
// tests); transcripts may be nil to disable the transcript endpoint.
func RegisterRoutes(r chi.Router, a *Agent, sender WhatsAppSender, transcripts *Store) {
	r.Get("/api/agent/whatsapp", webhookStatusHandler)
	r.Post("/api/agent/whatsapp", webhookHandler(a, sender))
	if transcripts != nil {
		r.Get("/api/agent/conversations/{phone}", conversationHandler(transcripts))
	}
}

func webhookStatusHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Yellow Express AI Agent WhatsApp Webhook",
	})
}

// webhookHandler accepts Twilio's form-encoded inbound message callback.
func webhookHandler(a *Agent, sender WhatsAppSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		body := r.PostFormValue("Body")
		from := r.PostFormValue("From")
		if body == "" || from == "" {
			writeError(w, http.StatusBadRequest, "Body and From are required")
			return
		}

		phone := strings.TrimPrefix(from, "whatsapp:")
		reply := a.ProcessMessage(r.Context(), phone, body)

		if sender != nil {
			if err := sender.SendWhatsApp(r.Context(), from, reply); err != nil {
				log.Printf("agent: sending reply to %s: %v", phone, err)
			}
		}

		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(twimlEmpty)); err != nil {
			log.Printf("agent: writing twiml response: %v", err)
		}
	}
}

func conversationHandler(transcripts *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := chi.URLParam(r, "phone")
		entries, err := transcripts.Recent(r.Context(), phone, 100)
		if err != nil {
			log.Printf("agent: loading conversation for %s: %v", phone, err)
			writeError(w, http.StatusInternalServerError, "failed to load conversation")
			return
		}
		if entries == nil {
			entries = []Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("agent: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
