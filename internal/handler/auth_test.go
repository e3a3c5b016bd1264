package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hunkymanie/shoply/internal/auth"
	"github.com/hunkymanie/shoply/internal/email"
	"github.com/hunkymanie/shoply/internal/kv"
)

type captureMailer struct {
	links []string
}

func (m *captureMailer) SendLink(_ email.Purpose, _ string, link string) error {
	m.links = append(m.links, link)
	return nil
}

func (m *captureMailer) lastToken(t *testing.T) string {
	t.Helper()
	if len(m.links) == 0 {
		t.Fatal("no links sent")
	}
	u, err := url.Parse(m.links[len(m.links)-1])
	if err != nil {
		t.Fatal(err)
	}
	return u.Query().Get("token")
}

func newAuthHandler(t *testing.T) (*AuthHandler, *captureMailer) {
	t.Helper()
	mailer := &captureMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := auth.NewManager(kv.NewMemoryStore(), mailer, auth.Config{BaseURL: "http://localhost:3000"}, logger)
	manager.Load()
	return NewAuthHandler(manager, logger), mailer
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) auth.Result {
	t.Helper()
	var res auth.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return res
}

func TestRegisterLoginFlow(t *testing.T) {
	h, mailer := newAuthHandler(t)

	rec := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "hunter22",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body)
	}
	res := decodeResult(t, rec)
	if !res.Success || !res.RequiresVerification {
		t.Fatalf("register result = %+v", res)
	}
	if res.Message != "Account created successfully! Please check your email to verify your account." {
		t.Errorf("register message = %q", res.Message)
	}

	// Login is refused until the email is verified.
	rec = postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "hunter22",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unverified login status = %d", rec.Code)
	}

	rec = postJSON(t, h.VerifyEmail, "/api/auth/verify-email", map[string]string{
		"token": mailer.lastToken(t),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body %s", rec.Code, rec.Body)
	}

	rec = postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "hunter22",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body)
	}
	var body struct {
		Success bool `json:"success"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.User.Email != "alice@example.com" {
		t.Errorf("login body = %s", rec.Body)
	}
}

func TestRegisterValidation(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name": "Alice", "email": "", "password": "hunter22",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing email status = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte("{broken")))
	rec2 := httptest.NewRecorder()
	h.Register(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("malformed JSON status = %d, want 400", rec2.Code)
	}
}

func TestRegisterDuplicateStatus(t *testing.T) {
	h, _ := newAuthHandler(t)
	payload := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "pw"}

	postJSON(t, h.Register, "/api/auth/register", payload)
	rec := postJSON(t, h.Register, "/api/auth/register", payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", rec.Code)
	}
	if res := decodeResult(t, rec); res.Code != auth.CodeDuplicateEmail {
		t.Errorf("code = %q, want %q", res.Code, auth.CodeDuplicateEmail)
	}
}

func TestForgotPasswordUnknown(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.ForgotPassword, "/api/auth/forgot-password", map[string]string{
		"email": "nobody@example.com",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if res := decodeResult(t, rec); res.Message != "No account found with this email address." {
		t.Errorf("message = %q", res.Message)
	}
}

func TestLogout(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("logout status = %d, want 204", rec.Code)
	}
}
