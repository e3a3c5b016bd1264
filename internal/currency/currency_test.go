package currency

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/hunkymanie/shoply/internal/kv"
)

func newTestService(t *testing.T, store kv.Store) *Service {
	t.Helper()
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRateFetchAndPersist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(apiResponse{Rates: map[string]float64{"NGN": 1550.25}})
	}))
	defer server.Close()

	store := kv.NewMemoryStore()
	svc := newTestService(t, store)
	svc.baseURL = server.URL

	if got := svc.Rate(context.Background()); got != 1550.25 {
		t.Fatalf("Rate() = %v, want 1550.25", got)
	}

	// The fetched rate lands in the store for the next process.
	raw, found, err := store.Get("usd-ngn-rate")
	if err != nil || !found {
		t.Fatalf("rate not persisted: found=%v err=%v", found, err)
	}
	if rate, _ := strconv.ParseFloat(raw, 64); rate != 1550.25 {
		t.Errorf("persisted rate = %q, want 1550.25", raw)
	}
	if _, found, _ := store.Get("rate-timestamp"); !found {
		t.Error("rate timestamp not persisted")
	}
}

func TestRateUsesFreshPersistedCache(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set("usd-ngn-rate", "1500")
	store.Set("rate-timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	svc := newTestService(t, store)
	// Point at a dead endpoint: a fresh cache means no fetch happens.
	svc.baseURL = "http://127.0.0.1:1"

	if got := svc.Rate(context.Background()); got != 1500 {
		t.Fatalf("Rate() = %v, want cached 1500", got)
	}
}

func TestRateFallbackOnFetchFailure(t *testing.T) {
	store := kv.NewMemoryStore()
	// Stale cache: older than an hour.
	store.Set("usd-ngn-rate", "1500")
	store.Set("rate-timestamp", strconv.FormatInt(time.Now().Add(-2*time.Hour).UnixMilli(), 10))

	svc := newTestService(t, store)
	svc.baseURL = "http://127.0.0.1:1"

	if got := svc.Rate(context.Background()); got != fallbackRate {
		t.Fatalf("Rate() = %v, want fallback %v", got, fallbackRate)
	}
}

func TestRateInMemoryCacheTTL(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(apiResponse{Rates: map[string]float64{"NGN": 1600}})
	}))
	defer server.Close()

	svc := newTestService(t, kv.NewMemoryStore())
	svc.baseURL = server.URL

	ctx := context.Background()
	svc.Rate(ctx)
	svc.Rate(ctx)
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1 within TTL", calls)
	}

	// Age the cache past the TTL.
	base := time.Now()
	svc.now = func() time.Time { return base.Add(cacheTTL + time.Minute) }
	svc.Rate(ctx)
	if calls != 2 {
		t.Fatalf("fetch calls = %d, want 2 after TTL", calls)
	}
}

func TestConvert(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	store := svc.store
	store.Set("usd-ngn-rate", "1600")
	store.Set("rate-timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	ctx := context.Background()
	if got := svc.Convert(ctx, 10, USD); got != 10 {
		t.Errorf("Convert(10, USD) = %v, want 10", got)
	}
	if got := svc.Convert(ctx, 10, NGN); got != 16000 {
		t.Errorf("Convert(10, NGN) = %v, want 16000", got)
	}
}

func TestPreferred(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := newTestService(t, store)

	if got := svc.Preferred(); got != USD {
		t.Errorf("Preferred() default = %q, want USD", got)
	}
	if err := svc.SetPreferred(NGN); err != nil {
		t.Fatalf("SetPreferred(NGN) error = %v", err)
	}
	if got := svc.Preferred(); got != NGN {
		t.Errorf("Preferred() = %q, want NGN", got)
	}
	if err := svc.SetPreferred("EUR"); err == nil {
		t.Error("SetPreferred(EUR) error = nil, want unsupported currency")
	}

	// Garbage in the store falls back to USD.
	store.Set("preferred-currency", "XYZ")
	if got := svc.Preferred(); got != USD {
		t.Errorf("Preferred() with bad value = %q, want USD", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		code   Code
		want   string
	}{
		{29.99, USD, "$29.99"},
		{1234.5, USD, "$1,234.50"},
		{1234567.89, USD, "$1,234,567.89"},
		{0, USD, "$0.00"},
		{47984, NGN, "₦47,984"},
		{1234567.4, NGN, "₦1,234,567"},
		{999.6, NGN, "₦1,000"},
	}
	for _, tt := range tests {
		if got := Format(tt.amount, tt.code); got != tt.want {
			t.Errorf("Format(%v, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}
