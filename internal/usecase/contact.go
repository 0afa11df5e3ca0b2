package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/entity"
)

type ContactUseCase struct {
	Validator *Validator
	Channel   ContactChannel
	Envelope  entity.Envelope
	Logger    *zap.Logger
}

func NewContactUseCase(validator *Validator, channel ContactChannel, envelope entity.Envelope, logger *zap.Logger) *ContactUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if envelope.Subject == "" {
		envelope.Subject = entity.DefaultContactSubject
	}
	return &ContactUseCase{
		Validator: validator,
		Channel:   channel,
		Envelope:  envelope,
		Logger:    logger,
	}
}

// Execute validates the raw form values and, when they pass, sends exactly one
// notification. The returned Result is always safe to show to the visitor; the
// error, when non-nil, is a *ValidationError or *DispatchError.
func (uc *ContactUseCase) Execute(ctx context.Context, fields map[string]string) (entity.Result, error) {
	submission, fieldErrs := uc.Validator.Validate(fields)
	if len(fieldErrs) > 0 {
		return entity.Failed(entity.MsgValidationError, fieldErrs...), &ValidationError{Errors: fieldErrs}
	}

	n := uc.compose(*submission)

	if err := uc.Channel.Send(ctx, n); err != nil {
		uc.Logger.Error("contact notification failed",
			zap.String("notification_id", n.ID),
			zap.String("channel", uc.Channel.Name()),
			zap.Error(err),
		)
		return entity.Failed(entity.MsgDispatchFailed), &DispatchError{Channel: uc.Channel.Name(), Err: err}
	}

	uc.Logger.Info("contact notification sent",
		zap.String("notification_id", n.ID),
		zap.String("channel", uc.Channel.Name()),
	)
	return entity.Succeeded(entity.MsgContactReceived), nil
}

func (uc *ContactUseCase) compose(s entity.Submission) entity.Notification {
	return entity.Notification{
		ID:      uuid.NewString(),
		From:    uc.Envelope.From,
		To:      uc.Envelope.To,
		ReplyTo: s.Email,
		Subject: uc.Envelope.Subject,
		Text:    entity.NotificationText(s),
	}
}
