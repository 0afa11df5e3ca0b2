package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xavierca1/site-forms/internal/entity"
)

var testEnvelope = entity.Envelope{
	From: "website@studio.test",
	To:   "hello@studio.test",
}

func TestContactSendsNotification(t *testing.T) {
	channel := new(MockContactChannel)
	var sent entity.Notification
	channel.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(entity.Notification) }).
		Return(nil)

	uc := NewContactUseCase(NewValidator(), channel, testEnvelope, nil)

	result, err := uc.Execute(context.Background(), validFields())

	require.NoError(t, err)
	assert.Equal(t, entity.Succeeded("Thank you for contacting us!"), result)
	channel.AssertNumberOfCalls(t, "Send", 1)

	assert.NotEmpty(t, sent.ID)
	assert.Equal(t, "website@studio.test", sent.From)
	assert.Equal(t, "hello@studio.test", sent.To)
	assert.Equal(t, "ada@engines.co", sent.ReplyTo)
	assert.Equal(t, "New Contact Form Submission", sent.Subject)
	assert.Equal(t,
		"Name: Ada Lovelace\n"+
			"Company: Analytical Engines Ltd\n"+
			"Email: ada@engines.co\n"+
			"Phone: +44 20 7946 0000\n"+
			"Message: We need a new brochure site.\n"+
			"Budget: $25K – $50K",
		sent.Text)
}

func TestContactChannelFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	channel := new(MockContactChannel)
	channel.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: 554 rejected"))

	uc := NewContactUseCase(NewValidator(), channel, testEnvelope, zap.New(core))

	result, err := uc.Execute(context.Background(), validFields())

	assert.True(t, IsDispatchError(err))
	assert.Equal(t, entity.Result{
		Success: false,
		Message: "Something Wrong. Try again!",
		Errors:  []entity.FieldError{},
	}, result)

	failures := logs.FilterMessage("contact notification failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "smtp: 554 rejected", failures[0].ContextMap()["error"])
	assert.Equal(t, "mock", failures[0].ContextMap()["channel"])
}

func TestContactValidationFailureSkipsDispatch(t *testing.T) {
	channel := new(MockContactChannel)
	uc := NewContactUseCase(NewValidator(), channel, testEnvelope, nil)

	result, err := uc.Execute(context.Background(), map[string]string{
		"name":    "",
		"company": "Acme",
		"email":   "bad",
		"phone":   "123456",
		"message": "hello there",
		"budget":  "$1K – $10K",
	})

	assert.True(t, IsValidationError(err))
	assert.False(t, result.Success)
	assert.Equal(t, "Validation error!", result.Message)
	assert.Equal(t, []entity.FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Valid email is required"},
	}, result.Errors)
	channel.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactNotificationIDsAreUnique(t *testing.T) {
	channel := new(MockContactChannel)
	ids := map[string]bool{}
	channel.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { ids[args.Get(1).(entity.Notification).ID] = true }).
		Return(nil)
	uc := NewContactUseCase(NewValidator(), channel, testEnvelope, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), validFields())
		require.NoError(t, err)
	}

	assert.Len(t, ids, 3)
}

func TestDispatchErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := error(&DispatchError{Channel: "smtp", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "dispatch via smtp failed: boom", err.Error())
}
