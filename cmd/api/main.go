package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"manolos-gestion/internal/adapters/auth/jwt"
	"manolos-gestion/internal/adapters/mail/smtp"
	"manolos-gestion/internal/config"
	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/ports/mailer"
	"manolos-gestion/internal/router"
)

// @title Manolo's Gestión API
// @version 1.0
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging, os.Stdout)

	store, closeStore, err := router.OpenStore(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Error("failed to open storage", map[string]any{"error": err})
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("closing storage failed", map[string]any{"error": err})
		}
	}()

	var mail mailer.Mailer = mailer.Unconfigured{}
	if cfg.SMTP.Configured() {
		mail = smtp.New(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		log.Warn("SMTP not configured, email reminders will be marked failed", nil)
	}

	var signer router.TokenSigner
	if strings.TrimSpace(cfg.Auth.JWTSecret) != "" {
		s, err := jwt.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
		if err != nil {
			log.Error("invalid jwt config", map[string]any{"error": err})
			os.Exit(1)
		}
		signer = s
	}

	handler := router.NewRouter(router.Options{
		Store:       store,
		Mailer:      mail,
		Signer:      signer,
		Logger:      log,
		RequireAuth: cfg.Auth.Required,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Seed:        cfg.SeedData,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", map[string]any{"error": err})
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
	}
}

// newLogger arma el logger con LOG_LEVEL / LOG_FORMAT / APP_NAME ya resueltos.
func newLogger(cfg config.LoggingConfig, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Level),
		Format: logger.ParseFormat(cfg.Format),
		App:    cfg.App,
		Output: out,
	})
}
