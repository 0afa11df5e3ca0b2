package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/config"
	"github.com/xavierca1/site-forms/internal/infra/channel"
	"github.com/xavierca1/site-forms/internal/infra/queue"
	"github.com/xavierca1/site-forms/internal/logger"
)

// relay drains the contact notification queue filled by the api when
// CONTACT_CHANNEL=amqp and delivers each message through RELAY_CHANNEL.
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

	if cfg.RelayChannel == config.ChannelAMQP {
		zlog.Fatal("RELAY_CHANNEL cannot be amqp")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deliverer, _, err := channel.Build(ctx, cfg.RelayChannel, cfg)
	if err != nil {
		zlog.Fatal("relay channel unavailable", zap.String("channel", cfg.RelayChannel), zap.Error(err))
	}

	mq, err := queue.NewRabbitMQ(cfg.AMQPURL)
	if err != nil {
		zlog.Fatal("rabbitmq unavailable", zap.Error(err))
	}
	defer mq.Close()

	relay := queue.NewRelay(mq.Ch, deliverer, zlog)
	if err := relay.Start(ctx, queue.QueueName); err != nil {
		zlog.Fatal("relay stopped", zap.Error(err))
	}
	zlog.Info("relay shut down")
}
