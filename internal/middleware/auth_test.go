package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/hunkymanie/shoply/internal/auth"
	"github.com/hunkymanie/shoply/internal/email"
	"github.com/hunkymanie/shoply/internal/kv"
	"github.com/hunkymanie/shoply/internal/model"
)

type nopMailer struct{}

func (nopMailer) SendLink(email.Purpose, string, string) error { return nil }

func newManager(t *testing.T, store kv.Store) *auth.Manager {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := auth.NewManager(store, nopMailer{}, auth.Config{BaseURL: "http://localhost:3000"}, logger)
	m.Load()
	return m
}

func seedSession(t *testing.T, store kv.Store, user model.User) {
	t.Helper()
	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatal(err)
	}
	store.Set("shoply_user", string(raw))
	store.Set("shoply_login_time", strconv.FormatInt(time.Now().UnixMilli(), 10))
}

func TestRequireSession(t *testing.T) {
	store := kv.NewMemoryStore()
	seedSession(t, store, model.User{ID: "u1", Name: "Alice", Email: "alice@example.com"})
	manager := newManager(t, store)

	var seen model.User
	var ok bool
	handler := RequireSession(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !ok || seen.ID != "u1" {
		t.Errorf("context user = %+v (ok=%v), want u1", seen, ok)
	}
}

func TestRequireSessionUnauthorized(t *testing.T) {
	manager := newManager(t, kv.NewMemoryStore())

	called := false
	handler := RequireSession(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("handler ran without a session")
	}
}
