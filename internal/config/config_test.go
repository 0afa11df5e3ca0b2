package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/site-forms/internal/entity"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CONTACT_CHANNEL", "MAILERLITE_URL", "MAILERLITE_GROUP_ID",
		"HTTP_CLIENT_TIMEOUT", "RATE_LIMIT_PER_MINUTE", "MAIL_PORT", "CONTACT_SUBJECT", "RELAY_CHANNEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ChannelSMTP, cfg.ContactChannel)
	assert.Equal(t, ChannelSMTP, cfg.RelayChannel)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, "https://connect.mailerlite.com/api", cfg.MailerLiteURL)
	assert.Equal(t, entity.DefaultNewsletterGroup, cfg.MailerLiteGroupID)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, entity.DefaultContactSubject, cfg.ContactSubject)
}

func TestFromEnvReadsValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTACT_CHANNEL", "Resend")
	t.Setenv("SENDER_EMAIL", "noreply@studio.test")
	t.Setenv("RECEIVER_EMAIL", "hello@studio.test")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("MAILERLITE_URL", "https://ml.test/api/")
	t.Setenv("MAILERLITE_GROUP_ID", "777")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://studio.test, https://www.studio.test,")
	t.Setenv("CONTACT_SUBJECT", "New Contact Form Submission")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ChannelResend, cfg.ContactChannel)
	assert.Equal(t, 2525, cfg.MailPort)
	assert.Equal(t, "https://ml.test/api", cfg.MailerLiteURL)
	assert.Equal(t, "777", cfg.MailerLiteGroupID)
	assert.Equal(t, 3*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, []string{"https://studio.test", "https://www.studio.test"}, cfg.AllowedOrigins)
	assert.Equal(t, entity.Envelope{
		From:    "noreply@studio.test",
		To:      "hello@studio.test",
		Subject: entity.DefaultContactSubject,
	}, cfg.Envelope())
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAIL_PORT", "not-a-port")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

	cfg := FromEnv()

	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
}

func TestValidateRejectsUnknownChannel(t *testing.T) {
	cfg := &Config{ContactChannel: "pigeon"}

	assert.EqualError(t, cfg.Validate(), `unknown CONTACT_CHANNEL "pigeon", expected smtp, resend, ses or amqp`)
	for _, warning := range cfg.Warnings() {
		assert.NotContains(t, warning, "pigeon")
	}

	for _, name := range []string{ChannelSMTP, ChannelResend, ChannelSES, ChannelAMQP} {
		assert.NoError(t, (&Config{ContactChannel: name}).Validate(), name)
	}
}

func TestWarnings(t *testing.T) {
	cfg := &Config{ContactChannel: ChannelResend}

	warnings := cfg.Warnings()

	assert.Contains(t, warnings, "SENDER_EMAIL or RECEIVER_EMAIL is missing, contact notifications will fail")
	assert.Contains(t, warnings, "RESEND_API_KEY is missing")
	assert.Contains(t, warnings, "MAILERLITE_API_KEY is missing, newsletter signups will be rejected")

	ok := &Config{
		ContactChannel:   ChannelSES,
		SenderEmail:      "a@b.co",
		ReceiverEmail:    "c@d.co",
		MailerLiteAPIKey: "key",
	}
	assert.Empty(t, ok.Warnings())
}
