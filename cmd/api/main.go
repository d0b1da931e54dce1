package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-relay/config"
	_ "contact-relay/docs" // Important for Swagger
	v1 "contact-relay/internal/delivery/http/v1"
	"contact-relay/internal/usecase"
	"contact-relay/pkg/email"
	"contact-relay/pkg/logger"
	"contact-relay/pkg/metrics"
	"contact-relay/pkg/validation"
)

// @title           Contact Relay API
// @version         1.0
// @description     Relays contact form submissions as an owner notification and a submitter confirmation.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	logger.Log.Info("Starting contact relay", "port", cfg.Port, "mail_provider", cfg.MailProvider)

	// 3. Setup Mailer
	mailer, err := email.NewMailer(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to create mailer", "error", err)
		os.Exit(1)
	}
	if smtpMailer, ok := mailer.(*email.SMTPMailer); ok && !smtpMailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup UseCase
	contactUC := usecase.NewContactUsecase(
		metrics.InstrumentMailer(mailer),
		email.IdentityFromConfig(cfg),
		validation.New(),
	)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Listening", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
