package entity

import "encoding/json"

const (
	MsgValidationError = "Validation error!"
	MsgContactReceived = "Thank you for contacting us!"
	MsgDispatchFailed  = "Something Wrong. Try again!"
	MsgSubscribed      = "Thank you for subscribing! 🎉"
	MsgInvalidRequest  = "Invalid request body"
	MsgTooManyRequests = "Too many requests. Please try again later."
	MsgEmailRequired   = "Email is required"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is what a form handler reports back. A successful Result never
// carries errors; a failed one always carries a message.
type Result struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func Succeeded(message string) Result {
	return Result{Success: true, Message: message, Errors: []FieldError{}}
}

func Failed(message string, errs ...FieldError) Result {
	if message == "" {
		message = MsgDispatchFailed
	}
	if errs == nil {
		errs = []FieldError{}
	}
	return Result{Success: false, Message: message, Errors: errs}
}

// ErrorFor returns the message attached to field, or "".
func (r Result) ErrorFor(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// NewsletterResult relays the mailing-list provider's answer. Errors holds the
// provider's "errors" value unchanged.
type NewsletterResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
