// Package currency converts USD catalog prices to NGN using a cached
// exchange rate.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/hunkymanie/shoply/internal/kv"
)

// Code identifies a display currency.
type Code string

const (
	USD Code = "USD"
	NGN Code = "NGN"
)

const (
	rateKey      = "usd-ngn-rate"
	timestampKey = "rate-timestamp"
	preferredKey = "preferred-currency"

	cacheTTL     = time.Hour
	fallbackRate = 1600.0
)

// Service fetches and caches the USD to NGN exchange rate. The cached rate
// lives in the key-value store so it survives restarts; a stale or missing
// cache falls back to a fixed rate rather than failing conversion.
type Service struct {
	store   kv.Store
	client  *http.Client
	baseURL string
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.RWMutex
	rate      float64
	fetchedAt time.Time
}

// NewService creates a currency service backed by the given store.
func NewService(store kv.Store, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.exchangerate-api.com/v4/latest/USD",
		logger:  logger,
		now:     time.Now,
		rate:    fallbackRate,
	}
}

// Rate returns the current USD to NGN rate, refreshing from the API when the
// cached value is older than an hour. Fetch failures keep the last known
// rate, or the fallback when nothing was ever fetched.
func (s *Service) Rate(ctx context.Context) float64 {
	s.mu.RLock()
	if !s.fetchedAt.IsZero() && s.now().Sub(s.fetchedAt) < cacheTTL {
		rate := s.rate
		s.mu.RUnlock()
		return rate
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the write lock.
	if !s.fetchedAt.IsZero() && s.now().Sub(s.fetchedAt) < cacheTTL {
		return s.rate
	}

	if rate, at, ok := s.loadCached(); ok && s.now().Sub(at) < cacheTTL {
		s.rate = rate
		s.fetchedAt = at
		return s.rate
	}

	rate, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("exchange rate fetch failed, using cached rate", "rate", s.rate, "error", err)
		return s.rate
	}

	s.rate = rate
	s.fetchedAt = s.now()
	s.saveCached(rate, s.fetchedAt)
	return s.rate
}

// loadCached reads the persisted rate and its fetch time.
func (s *Service) loadCached() (float64, time.Time, bool) {
	rawRate, found, err := s.store.Get(rateKey)
	if err != nil || !found {
		return 0, time.Time{}, false
	}
	rawTime, found, err := s.store.Get(timestampKey)
	if err != nil || !found {
		return 0, time.Time{}, false
	}
	rate, err := strconv.ParseFloat(rawRate, 64)
	if err != nil || rate <= 0 {
		return 0, time.Time{}, false
	}
	millis, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return 0, time.Time{}, false
	}
	return rate, time.UnixMilli(millis), true
}

func (s *Service) saveCached(rate float64, at time.Time) {
	if err := s.store.Set(rateKey, strconv.FormatFloat(rate, 'f', -1, 64)); err != nil {
		s.logger.Error("save exchange rate", "error", err)
		return
	}
	if err := s.store.Set(timestampKey, strconv.FormatInt(at.UnixMilli(), 10)); err != nil {
		s.logger.Error("save exchange rate timestamp", "error", err)
	}
}

type apiResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (s *Service) fetch(ctx context.Context) (float64, error) {
	var rate float64
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := s.fetchOnce(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		rate = r
		return nil
	})
	return rate, err
}

func (s *Service) fetchOnce(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("exchange rate request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange rate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("decode exchange rate response: %w", err)
	}
	rate, ok := apiResp.Rates["NGN"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange rate response missing NGN rate")
	}
	return rate, nil
}

// Convert converts a USD amount into the given currency.
func (s *Service) Convert(ctx context.Context, usd float64, to Code) float64 {
	if to != NGN {
		return usd
	}
	return usd * s.Rate(ctx)
}

// Preferred returns the saved display currency, defaulting to USD.
func (s *Service) Preferred() Code {
	raw, found, err := s.store.Get(preferredKey)
	if err != nil || !found {
		return USD
	}
	if Code(raw) == NGN {
		return NGN
	}
	return USD
}

// SetPreferred persists the display currency choice.
func (s *Service) SetPreferred(code Code) error {
	if code != USD && code != NGN {
		return fmt.Errorf("unsupported currency %q", code)
	}
	return s.store.Set(preferredKey, string(code))
}

// Format renders an amount in the given currency: USD with two decimals
// ("$1,234.56"), NGN rounded to whole naira ("₦1,234,567").
func Format(amount float64, code Code) string {
	if code == NGN {
		return "₦" + groupThousands(strconv.FormatInt(int64(math.Round(amount)), 10))
	}
	whole := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(whole, '.')
	return "$" + groupThousands(whole[:dot]) + whole[dot:]
}

// groupThousands inserts commas into a base-10 integer string.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
