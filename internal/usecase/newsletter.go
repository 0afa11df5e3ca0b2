package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/entity"
)

type NewsletterUseCase struct {
	Subscriber SubscriberAPI
	GroupID    string
	Logger     *zap.Logger
}

func NewNewsletterUseCase(subscriber SubscriberAPI, groupID string, logger *zap.Logger) *NewsletterUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if groupID == "" {
		groupID = entity.DefaultNewsletterGroup
	}
	return &NewsletterUseCase{
		Subscriber: subscriber,
		GroupID:    groupID,
		Logger:     logger,
	}
}

type providerBody struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

// Execute forwards the address to the mailing list. Address format is checked
// by the provider, whose "errors" value is relayed unchanged.
func (uc *NewsletterUseCase) Execute(ctx context.Context, email string) (entity.NewsletterResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		fieldErrs := []entity.FieldError{{Field: "email", Message: entity.MsgEmailRequired}}
		errs, _ := json.Marshal(fieldErrs)
		return entity.NewsletterResult{
			Success: false,
			Message: entity.MsgValidationError,
			Errors:  errs,
		}, &ValidationError{Errors: fieldErrs}
	}

	resp, err := uc.Subscriber.Subscribe(ctx, entity.Subscription{
		Email:  email,
		Groups: []string{uc.GroupID},
	})
	if err != nil {
		return uc.fail(err), &DispatchError{Channel: "mailerlite", Err: err}
	}

	var body providerBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		err = fmt.Errorf("decode subscriber response: %w", err)
		return uc.fail(err), &DispatchError{Channel: "mailerlite", Err: err}
	}

	if len(body.Errors) > 0 && string(body.Errors) != "null" {
		msg := body.Message
		if msg == "" {
			msg = entity.MsgValidationError
		}
		uc.Logger.Info("newsletter signup rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return entity.NewsletterResult{
			Success: false,
			Message: msg,
			Errors:  body.Errors,
		}, &ValidationError{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("subscriber api status %d: %s", resp.StatusCode, body.Message)
		return uc.fail(err), &DispatchError{Channel: "mailerlite", Err: err}
	}

	data := body.Data
	if len(data) == 0 {
		data = json.RawMessage(resp.Body)
	}
	uc.Logger.Info("newsletter signup forwarded", zap.Int("status", resp.StatusCode))
	return entity.NewsletterResult{
		Success: true,
		Message: entity.MsgSubscribed,
		Data:    data,
	}, nil
}

func (uc *NewsletterUseCase) fail(err error) entity.NewsletterResult {
	uc.Logger.Error("newsletter signup failed", zap.Error(err))
	return entity.NewsletterResult{
		Success: false,
		Message: entity.MsgDispatchFailed,
	}
}
