// Package channel builds the contact ContactChannel named in configuration.
package channel

import (
	"context"
	"fmt"

	"github.com/xavierca1/site-forms/internal/config"
	"github.com/xavierca1/site-forms/internal/infra/integration/resend"
	"github.com/xavierca1/site-forms/internal/infra/mail"
	"github.com/xavierca1/site-forms/internal/infra/queue"
	"github.com/xavierca1/site-forms/internal/usecase"
)

// Build returns the channel called name. The broker is non-nil only for the
// amqp channel and must be closed by the caller.
func Build(ctx context.Context, name string, cfg *config.Config) (usecase.ContactChannel, *queue.RabbitMQ, error) {
	switch name {
	case config.ChannelResend:
		return resend.NewClient(cfg.ResendAPIKey, cfg.ResendURL, cfg.HTTPClientTimeout), nil, nil

	case config.ChannelSES:
		sender, err := mail.NewSESSender(ctx, cfg.AWSRegion, cfg.SESConfigurationSet)
		if err != nil {
			return nil, nil, err
		}
		return sender, nil, nil

	case config.ChannelAMQP:
		mq, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			return nil, nil, err
		}
		return queue.NewNotificationPublisher(mq.Ch), mq, nil

	case config.ChannelSMTP, "":
		return mail.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown contact channel %q", name)
}

// Configured reports whether name has the settings it needs to deliver.
func Configured(name string, cfg *config.Config) bool {
	if cfg.SenderEmail == "" || cfg.ReceiverEmail == "" {
		return false
	}
	switch name {
	case config.ChannelResend:
		return cfg.ResendAPIKey != ""
	case config.ChannelSES, config.ChannelAMQP:
		return true
	default:
		return cfg.MailHost != ""
	}
}
