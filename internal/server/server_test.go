package server

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/theyellowexpress/expressbot/internal/db"
)

func TestHealthz(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	defer database.Close()

	s := New(Config{Port: 0}, database)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestVerboseTogglesRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	orig := middleware.DefaultLogger
	middleware.DefaultLogger = middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(&buf, "", 0),
		NoColor: true,
	})
	defer func() { middleware.DefaultLogger = orig }()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	defer database.Close()

	s := New(Config{Port: 0, Verbose: true}, database)
	srv := httptest.NewServer(s.Router())
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	srv.Close()
	if !strings.Contains(buf.String(), "/healthz") {
		t.Errorf("verbose server should log the request, got %q", buf.String())
	}

	buf.Reset()
	quiet := New(Config{Port: 0}, database)
	srv = httptest.NewServer(quiet.Router())
	resp, err = http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	srv.Close()
	if buf.Len() != 0 {
		t.Errorf("non-verbose server should not log requests, got %q", buf.String())
	}
}

func TestFeatureRouteRegistration(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	defer database.Close()

	s := New(Config{Port: 0}, database)
	s.Router().Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/ping")
	if err != nil {
		t.Fatalf("GET /api/ping: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(body) != "pong" {
		t.Errorf("body = %q, want pong", body)
	}
}
