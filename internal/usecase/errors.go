package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xavierca1/site-forms/internal/entity"
)

// ValidationError means the submission never reached an external channel.
type ValidationError struct {
	Errors []entity.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" ("+fe.Message+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DispatchError wraps a failure reported by an external channel. Its detail is
// for logs only.
type DispatchError struct {
	Channel string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch via %s failed: %v", e.Channel, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func IsDispatchError(err error) bool {
	var de *DispatchError
	return errors.As(err, &de)
}
