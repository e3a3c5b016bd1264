package auth

import (
	"testing"
	"time"

	"github.com/hunkymanie/shoply/internal/kv"
)

func TestTokenIssueAndConsume(t *testing.T) {
	ts := NewTokenStore(kv.NewMemoryStore(), "verification", time.Hour)

	token, err := ts.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	email, found, err := ts.Consume(token)
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if !found {
		t.Fatal("Consume() found = false, want true")
	}
	if email != "alice@example.com" {
		t.Errorf("Consume() email = %q, want alice@example.com", email)
	}
}

func TestTokenSingleUse(t *testing.T) {
	ts := NewTokenStore(kv.NewMemoryStore(), "verification", time.Hour)

	token, err := ts.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, found, _ := ts.Consume(token); !found {
		t.Fatal("first Consume() found = false, want true")
	}
	if _, found, _ := ts.Consume(token); found {
		t.Error("second Consume() found = true, want false")
	}
}

func TestTokenReissueInvalidatesPrior(t *testing.T) {
	ts := NewTokenStore(kv.NewMemoryStore(), "reset", time.Hour)

	first, err := ts.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	second, err := ts.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if first == second {
		t.Fatal("reissue returned the same token")
	}

	if _, found, _ := ts.Consume(first); found {
		t.Error("consumed superseded token, want not found")
	}
	if _, found, _ := ts.Consume(second); !found {
		t.Error("Consume(second) found = false, want true")
	}
}

func TestTokenUnknown(t *testing.T) {
	ts := NewTokenStore(kv.NewMemoryStore(), "verification", time.Hour)

	if _, found, err := ts.Consume("deadbeef"); err != nil {
		t.Fatalf("Consume() error = %v", err)
	} else if found {
		t.Error("Consume() found = true for unknown token")
	}
}

func TestTokenExpiry(t *testing.T) {
	ts := NewTokenStore(kv.NewMemoryStore(), "verification", 24*time.Hour)

	token, err := ts.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	base := time.Now()
	ts.now = func() time.Time { return base.Add(25 * time.Hour) }
	if _, found, _ := ts.Consume(token); found {
		t.Error("consumed token past its TTL, want not found")
	}

	// Expired tokens are removed on the failed consume.
	token2, err := ts.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	ts.now = time.Now
	if _, found, _ := ts.Consume(token2); !found {
		t.Error("fresh token after expiry not consumable")
	}
}
