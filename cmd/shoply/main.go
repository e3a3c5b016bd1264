package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hunkymanie/shoply/internal/auth"
	"github.com/hunkymanie/shoply/internal/backup"
	"github.com/hunkymanie/shoply/internal/database"
	"github.com/hunkymanie/shoply/internal/email"
	"github.com/hunkymanie/shoply/internal/logging"
	"github.com/hunkymanie/shoply/internal/server"
	ws "github.com/hunkymanie/shoply/internal/websocket"
)

func main() {
	logger := logging.Setup(os.Getenv("SHOPLY_LOG_LEVEL"))

	port := os.Getenv("SHOPLY_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SHOPLY_DB_PATH")
	if dbPath == "" {
		dbPath = "shoply.db"
	}

	baseURL := os.Getenv("SHOPLY_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	hub := ws.NewHub(logging.Component(logger, "websocket"))

	// Real delivery needs a Postmark token; without one, links go to stdout
	// and the websocket channel.
	var mailer email.Mailer
	if token := os.Getenv("SHOPLY_POSTMARK_TOKEN"); token != "" {
		mailer = email.NewClient(token, os.Getenv("SHOPLY_FROM_EMAIL"))
	} else {
		mailer = email.NewDemoMailer(os.Stdout, hub)
	}

	authCfg := auth.Config{
		BaseURL: baseURL,
		Latency: parseDuration(os.Getenv("SHOPLY_DEMO_LATENCY")),
	}

	backupCfg := backup.Config{
		S3: backup.S3Config{
			Endpoint:  os.Getenv("SHOPLY_S3_ENDPOINT"),
			Bucket:    os.Getenv("SHOPLY_S3_BUCKET"),
			Region:    os.Getenv("SHOPLY_S3_REGION"),
			AccessKey: os.Getenv("SHOPLY_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("SHOPLY_S3_SECRET_KEY"),
		},
		DBPath:     dbPath,
		Passphrase: os.Getenv("SHOPLY_BACKUP_PASSPHRASE"),
		Interval:   parseDuration(os.Getenv("SHOPLY_BACKUP_INTERVAL")),
	}

	srv := server.New(db, mailer, hub, authCfg, backupCfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backupMgr := srv.BackupManager()
	backupMgr.Start(ctx)
	defer backupMgr.Stop()

	// Drop stale rate-limit buckets periodically.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			}
		}
	}()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Shoply running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	fmt.Println("\nShutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
