package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/config"
	"github.com/xavierca1/site-forms/internal/infra/channel"
	"github.com/xavierca1/site-forms/internal/infra/http/handlers"
	"github.com/xavierca1/site-forms/internal/infra/http/middleware"
	"github.com/xavierca1/site-forms/internal/infra/http/router"
	"github.com/xavierca1/site-forms/internal/infra/integration/mailerlite"
	"github.com/xavierca1/site-forms/internal/logger"
	"github.com/xavierca1/site-forms/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid configuration", zap.Error(err))
	}
	for _, w := range cfg.Warnings() {
		zlog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Outbound channels
	contactChannel, broker, err := channel.Build(ctx, cfg.ContactChannel, cfg)
	if err != nil {
		zlog.Fatal("contact channel unavailable", zap.String("channel", cfg.ContactChannel), zap.Error(err))
	}
	var brokerHealth handlers.Closer
	if broker != nil {
		defer broker.Close()
		brokerHealth = broker
	}
	subscriber := mailerlite.NewClient(cfg.MailerLiteAPIKey, cfg.MailerLiteURL, cfg.HTTPClientTimeout)

	// 2. UseCases
	contactUC := usecase.NewContactUseCase(usecase.NewValidator(), contactChannel, cfg.Envelope(), zlog)
	newsletterUC := usecase.NewNewsletterUseCase(subscriber, cfg.MailerLiteGroupID, zlog)

	// 3. Handlers + router
	deps := router.Deps{
		Contact:        handlers.NewContactHandler(contactUC, "/contact", zlog),
		Newsletter:     handlers.NewNewsletterHandler(newsletterUC, "/newsletter", zlog),
		Health:         handlers.NewHealthHandler(contactChannel.Name(), channel.Configured(cfg.ContactChannel, cfg), subscriber.Configured(), brokerHealth),
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         zlog,
	}
	if cfg.RateLimitPerMinute > 0 {
		deps.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr), zap.String("contact_channel", contactChannel.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
