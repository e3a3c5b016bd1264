package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hunkymanie/shoply/internal/auth"
	"github.com/hunkymanie/shoply/internal/backup"
	"github.com/hunkymanie/shoply/internal/cart"
	"github.com/hunkymanie/shoply/internal/currency"
	"github.com/hunkymanie/shoply/internal/email"
	"github.com/hunkymanie/shoply/internal/handler"
	"github.com/hunkymanie/shoply/internal/kv"
	"github.com/hunkymanie/shoply/internal/middleware"
	ws "github.com/hunkymanie/shoply/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	manager     *auth.Manager
	authH       *handler.AuthHandler
	productH    *handler.ProductHandler
	cartH       *handler.CartHandler
	currencyH   *handler.CurrencyHandler
	rateLimiter *middleware.RateLimiter
	backupMgr   *backup.Manager
	logger      *slog.Logger
}

func New(db *sql.DB, mailer email.Mailer, hub *ws.Hub, authCfg auth.Config, backupCfg backup.Config, logger *slog.Logger) *Server {
	store := kv.NewSQLiteStore(db)

	manager := auth.NewManager(store, mailer, authCfg, logger.With("component", "auth"))
	manager.Load()

	carts := cart.NewService(store)
	currencySvc := currency.NewService(store, logger.With("component", "currency"))
	backupMgr := backup.NewManager(backupCfg, db, logger.With("component", "backup"))

	return &Server{
		db:          db,
		hub:         hub,
		manager:     manager,
		authH:       handler.NewAuthHandler(manager, logger.With("component", "auth_handler")),
		productH:    handler.NewProductHandler(),
		cartH:       handler.NewCartHandler(carts, logger.With("component", "cart")),
		currencyH:   handler.NewCurrencyHandler(currencySvc),
		rateLimiter: middleware.NewRateLimiter(),
		backupMgr:   backupMgr,
		logger:      logger,
	}
}

// Manager returns the session manager.
func (s *Server) Manager() *auth.Manager {
	return s.manager
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// BackupManager returns the backup manager.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupMgr
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no session required). Credential endpoints are
	// rate-limited per client IP.
	outerMux.HandleFunc("POST /api/auth/register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("POST /api/auth/logout", s.authH.Logout)
	outerMux.HandleFunc("POST /api/auth/forgot-password", s.rateLimitedHandler(s.authH.ForgotPassword))
	outerMux.HandleFunc("POST /api/auth/reset-password", s.rateLimitedHandler(s.authH.ResetPassword))
	outerMux.HandleFunc("POST /api/auth/verify-email", s.authH.VerifyEmail)
	outerMux.HandleFunc("POST /api/auth/resend-verification", s.rateLimitedHandler(s.authH.ResendVerification))

	outerMux.HandleFunc("GET /api/products", s.productH.List)
	outerMux.HandleFunc("GET /api/products/facets", s.productH.Facets)
	outerMux.HandleFunc("GET /api/products/{id}", s.productH.Get)
	outerMux.HandleFunc("GET /api/collections", s.productH.Collections)

	outerMux.HandleFunc("GET /api/currency", s.currencyH.Get)
	outerMux.HandleFunc("PUT /api/currency", s.currencyH.SetPreferred)

	outerMux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes, wrapped with the session middleware.
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	sessionMiddleware := middleware.RequireSession(s.manager)
	outerMux.Handle("/api/", sessionMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)
	mux.HandleFunc("PUT /api/auth/profile", s.authH.UpdateProfile)

	mux.HandleFunc("GET /api/cart", s.cartH.Get)
	mux.HandleFunc("POST /api/cart", s.cartH.Add)
	mux.HandleFunc("PUT /api/cart/{productId}", s.cartH.Update)
	mux.HandleFunc("DELETE /api/cart/{productId}", s.cartH.Remove)
	mux.HandleFunc("DELETE /api/cart", s.cartH.Clear)

	mux.HandleFunc("POST /api/checkout", s.cartH.Checkout)
	mux.HandleFunc("GET /api/orders", s.cartH.Orders)
}
