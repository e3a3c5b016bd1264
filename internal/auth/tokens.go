package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hunkymanie/shoply/internal/kv"
)

// tokenRecord is the stored form of an issued token, keyed by email.
type tokenRecord struct {
	Token    string    `json:"token"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issuedAt"`
}

// TokenStore issues and consumes single-use tokens for one purpose
// ("verification" or "reset"). Each email has at most one active token:
// issuing a new one overwrites the old. Tokens are indexed both ways,
// email to record under "<purpose>_<email>" and token to email under
// "token_<purpose>_<token>", so consumption is a direct lookup rather than
// a scan over the keyspace.
type TokenStore struct {
	store   kv.Store
	purpose string
	ttl     time.Duration
	now     func() time.Time
}

func NewTokenStore(store kv.Store, purpose string, ttl time.Duration) *TokenStore {
	return &TokenStore{
		store:   store,
		purpose: purpose,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *TokenStore) emailKey(emailAddr string) string {
	return s.purpose + "_" + emailAddr
}

func (s *TokenStore) tokenKey(token string) string {
	return "token_" + s.purpose + "_" + token
}

func generateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue creates a fresh token for the email, invalidating any prior
// unconsumed one.
func (s *TokenStore) Issue(emailAddr string) (string, error) {
	// Drop the forward entry of any token being overwritten.
	if raw, found, err := s.store.Get(s.emailKey(emailAddr)); err != nil {
		return "", err
	} else if found {
		var old tokenRecord
		if json.Unmarshal([]byte(raw), &old) == nil && old.Token != "" {
			if err := s.store.Delete(s.tokenKey(old.Token)); err != nil {
				return "", err
			}
		}
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	rec := tokenRecord{Token: token, Email: emailAddr, IssuedAt: s.now().UTC()}
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal token record: %w", err)
	}

	if err := s.store.Set(s.emailKey(emailAddr), string(raw)); err != nil {
		return "", err
	}
	if err := s.store.Set(s.tokenKey(token), emailAddr); err != nil {
		return "", err
	}
	return token, nil
}

// Consume resolves the token to its email and deletes it. It returns
// ok=false when the token is unknown, superseded, or older than the TTL.
func (s *TokenStore) Consume(token string) (string, bool, error) {
	emailAddr, found, err := s.store.Get(s.tokenKey(token))
	if err != nil || !found {
		return "", false, err
	}

	raw, found, err := s.store.Get(s.emailKey(emailAddr))
	if err != nil {
		return "", false, err
	}
	if !found {
		// Forward entry outlived the record; clean it up.
		s.store.Delete(s.tokenKey(token))
		return "", false, nil
	}

	var rec tokenRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.Token != token {
		s.store.Delete(s.tokenKey(token))
		return "", false, nil
	}

	if s.ttl > 0 && s.now().Sub(rec.IssuedAt) >= s.ttl {
		s.store.Delete(s.emailKey(emailAddr))
		s.store.Delete(s.tokenKey(token))
		return "", false, nil
	}

	if err := s.store.Delete(s.emailKey(emailAddr)); err != nil {
		return "", false, err
	}
	if err := s.store.Delete(s.tokenKey(token)); err != nil {
		return "", false, err
	}
	return emailAddr, true, nil
}
