// Package auth owns user records, verification and reset tokens, credential
// checks, and the persisted session.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hunkymanie/shoply/internal/email"
	"github.com/hunkymanie/shoply/internal/kv"
	"github.com/hunkymanie/shoply/internal/model"
)

const (
	sessionKey   = "shoply_user"
	loginTimeKey = "shoply_login_time"

	defaultSessionDuration = 7 * 24 * time.Hour
	defaultTokenTTL        = 24 * time.Hour
)

// Config holds session-manager settings.
type Config struct {
	// BaseURL is the origin embedded in verification and reset links.
	BaseURL string
	// SessionDuration bounds how long a persisted session stays valid.
	// Defaults to 7 days.
	SessionDuration time.Duration
	// TokenTTL bounds verification/reset token lifetime. Defaults to 24h.
	TokenTTL time.Duration
	// Latency is an artificial delay applied to each operation, simulating a
	// network round-trip for the demo. Zero disables it.
	Latency time.Duration
}

func (c *Config) withDefaults() {
	if c.SessionDuration <= 0 {
		c.SessionDuration = defaultSessionDuration
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
}

// Manager is the session and credential store. All state lives in the
// key-value store; the in-memory session field mirrors the persisted
// snapshot. A single mutex serializes mutations: reads and writes of the
// user collection are whole-value replace, so concurrent writers would
// otherwise lose updates.
type Manager struct {
	mu           sync.Mutex
	store        kv.Store
	users        userCollection
	verifyTokens *TokenStore
	resetTokens  *TokenStore
	mailer       email.Mailer
	logger       *slog.Logger
	cfg          Config
	now          func() time.Time

	session *model.User
}

// NewManager creates a Manager. Call Load to restore a persisted session.
func NewManager(store kv.Store, mailer email.Mailer, cfg Config, logger *slog.Logger) *Manager {
	cfg.withDefaults()
	return &Manager{
		store:        store,
		users:        userCollection{store: store},
		verifyTokens: NewTokenStore(store, "verification", cfg.TokenTTL),
		resetTokens:  NewTokenStore(store, "reset", cfg.TokenTTL),
		mailer:       mailer,
		logger:       logger,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Load restores the persisted session, purging it when expired or malformed.
// The expiry check happens here, once per process start, not continuously.
func (m *Manager) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil

	rawUser, foundUser, err := m.store.Get(sessionKey)
	if err != nil {
		m.logger.Error("load session", "error", err)
		return
	}
	rawTime, foundTime, err := m.store.Get(loginTimeKey)
	if err != nil {
		m.logger.Error("load login time", "error", err)
		return
	}
	if !foundUser || !foundTime {
		m.purgeSession()
		return
	}

	millis, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		m.logger.Error("parse login time", "value", rawTime, "error", err)
		m.purgeSession()
		return
	}
	var user model.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.logger.Error("parse saved session", "error", err)
		m.purgeSession()
		return
	}

	loginAt := time.UnixMilli(millis)
	if m.now().Sub(loginAt) >= m.cfg.SessionDuration {
		m.logger.Info("session expired", "email", user.Email, "login_at", loginAt)
		m.purgeSession()
		return
	}
	m.session = &user
}

// purgeSession removes the persisted session keys. Caller holds the lock.
func (m *Manager) purgeSession() {
	m.store.Delete(sessionKey)
	m.store.Delete(loginTimeKey)
	m.session = nil
}

// delay sleeps for the configured simulated latency, returning early if the
// context is cancelled.
func (m *Manager) delay(ctx context.Context) {
	if m.cfg.Latency <= 0 {
		return
	}
	t := time.NewTimer(m.cfg.Latency)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// CurrentUser returns a copy of the active session's user snapshot, or nil.
func (m *Manager) CurrentUser() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	u := *m.session
	return &u
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// Register creates an unverified user and emits a verification link. The
// store write happens before the link event, so a consumer of the event
// always observes the new user.
func (m *Manager) Register(ctx context.Context, name, emailAddr, password string) Result {
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("register: load users", "error", err)
		return storeFailure()
	}
	if indexByEmail(users, emailAddr) >= 0 {
		return fail(CodeDuplicateEmail, msgDuplicateEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		m.logger.Error("register: hash password", "error", err)
		return storeFailure()
	}

	rec := model.UserRecord{
		User: model.User{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     emailAddr,
			CreatedAt: m.now().UTC(),
		},
		PasswordHash: string(hash),
	}
	if err := m.users.save(append(users, rec)); err != nil {
		m.logger.Error("register: save users", "error", err)
		return storeFailure()
	}

	token, err := m.verifyTokens.Issue(emailAddr)
	if err != nil {
		m.logger.Error("register: issue verification token", "error", err)
		return storeFailure()
	}
	link := email.VerificationLink(m.cfg.BaseURL, token, emailAddr)
	if err := m.mailer.SendLink(email.PurposeVerification, emailAddr, link); err != nil {
		m.logger.Error("register: send verification link", "error", err)
	}

	return Result{Success: true, Message: msgRegistered, RequiresVerification: true}
}

// Login checks credentials and establishes the session. Unverified accounts
// are refused even with a correct password.
func (m *Manager) Login(ctx context.Context, emailAddr, password string) Result {
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("login: load users", "error", err)
		return storeFailure()
	}
	i := indexByEmail(users, emailAddr)
	if i < 0 {
		return fail(CodeNoSuchUser, msgNoSuchUser)
	}
	rec := users[i]

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return fail(CodeInvalidCredential, msgInvalidCredential)
	}
	if !rec.EmailVerified {
		r := fail(CodeVerificationRequired, msgVerificationRequired)
		r.RequiresVerification = true
		return r
	}

	snapshot := rec.User
	raw, err := json.Marshal(snapshot)
	if err != nil {
		m.logger.Error("login: marshal session", "error", err)
		return storeFailure()
	}
	if err := m.store.Set(sessionKey, string(raw)); err != nil {
		m.logger.Error("login: save session", "error", err)
		return storeFailure()
	}
	if err := m.store.Set(loginTimeKey, strconv.FormatInt(m.now().UnixMilli(), 10)); err != nil {
		m.logger.Error("login: save login time", "error", err)
		return storeFailure()
	}
	m.session = &snapshot

	return Result{Success: true}
}

// Logout clears the session. Safe to call with no session active.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeSession()
}

// UpdateProfile merges the partial update into the live session snapshot and
// the backing user record. Returns false when no session is active or the
// store write fails.
func (m *Manager) UpdateProfile(ctx context.Context, update model.ProfileUpdate) bool {
	if !m.IsAuthenticated() {
		return false
	}
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return false
	}

	updated := *m.session
	update.Apply(&updated)

	raw, err := json.Marshal(updated)
	if err != nil {
		m.logger.Error("update profile: marshal session", "error", err)
		return false
	}
	if err := m.store.Set(sessionKey, string(raw)); err != nil {
		m.logger.Error("update profile: save session", "error", err)
		return false
	}
	m.session = &updated

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("update profile: load users", "error", err)
		return false
	}
	if i := indexByID(users, updated.ID); i >= 0 {
		update.Apply(&users[i].User)
		if err := m.users.save(users); err != nil {
			m.logger.Error("update profile: save users", "error", err)
			return false
		}
	}
	return true
}

// ForgotPassword issues a reset token and emits the reset link. No session
// is required.
func (m *Manager) ForgotPassword(ctx context.Context, emailAddr string) Result {
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("forgot password: load users", "error", err)
		return storeFailure()
	}
	if indexByEmail(users, emailAddr) < 0 {
		return fail(CodeNoSuchUser, msgNoSuchUser)
	}

	token, err := m.resetTokens.Issue(emailAddr)
	if err != nil {
		m.logger.Error("forgot password: issue reset token", "error", err)
		return storeFailure()
	}
	link := email.ResetLink(m.cfg.BaseURL, token, emailAddr)
	if err := m.mailer.SendLink(email.PurposeReset, emailAddr, link); err != nil {
		m.logger.Error("forgot password: send reset link", "error", err)
	}

	return ok(msgResetEmailSent)
}

// ResetPassword consumes a reset token and overwrites the owner's password.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) Result {
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	emailAddr, found, err := m.resetTokens.Consume(token)
	if err != nil {
		m.logger.Error("reset password: consume token", "error", err)
		return storeFailure()
	}
	if !found {
		return fail(CodeInvalidOrExpiredToken, msgInvalidResetToken)
	}

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("reset password: load users", "error", err)
		return storeFailure()
	}
	i := indexByEmail(users, emailAddr)
	if i < 0 {
		// Token matched but its owner is gone; the token is already burned.
		return fail(CodeInvalidOrExpiredToken, msgInvalidResetToken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		m.logger.Error("reset password: hash password", "error", err)
		return storeFailure()
	}
	users[i].PasswordHash = string(hash)
	if err := m.users.save(users); err != nil {
		m.logger.Error("reset password: save users", "error", err)
		return storeFailure()
	}

	return ok(msgPasswordUpdated)
}

// VerifyEmail consumes a verification token and marks its owner verified.
// Verified is terminal; there is no transition back.
func (m *Manager) VerifyEmail(ctx context.Context, token string) Result {
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	emailAddr, found, err := m.verifyTokens.Consume(token)
	if err != nil {
		m.logger.Error("verify email: consume token", "error", err)
		return storeFailure()
	}
	if !found {
		return fail(CodeInvalidOrExpiredToken, msgInvalidVerifyToken)
	}

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("verify email: load users", "error", err)
		return storeFailure()
	}
	i := indexByEmail(users, emailAddr)
	if i < 0 {
		return fail(CodeInvalidOrExpiredToken, msgInvalidVerifyToken)
	}

	users[i].EmailVerified = true
	if err := m.users.save(users); err != nil {
		m.logger.Error("verify email: save users", "error", err)
		return storeFailure()
	}

	return ok(msgEmailVerified)
}

// ResendVerification issues a fresh verification token, invalidating any
// prior one, and emits a new link.
func (m *Manager) ResendVerification(ctx context.Context, emailAddr string) Result {
	m.delay(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.users.load()
	if err != nil {
		m.logger.Error("resend verification: load users", "error", err)
		return storeFailure()
	}
	i := indexByEmail(users, emailAddr)
	if i < 0 {
		return fail(CodeNoSuchUser, msgNoSuchUser)
	}
	if users[i].EmailVerified {
		return fail(CodeAlreadyVerified, msgAlreadyVerified)
	}

	token, err := m.verifyTokens.Issue(emailAddr)
	if err != nil {
		m.logger.Error("resend verification: issue token", "error", err)
		return storeFailure()
	}
	link := email.VerificationLink(m.cfg.BaseURL, token, emailAddr)
	if err := m.mailer.SendLink(email.PurposeResend, emailAddr, link); err != nil {
		m.logger.Error("resend verification: send link", "error", err)
	}

	return ok(msgVerificationSent)
}
