package usecase

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xavierca1/site-forms/internal/entity"
)

// contactFields lists the inbound form keys in schema declaration order.
var contactFields = []string{"name", "company", "email", "phone", "message", "budget"}

var fieldMessages = map[string]string{
	"name":    "Name is required",
	"company": "Company is required",
	"email":   "Valid email is required",
	"phone":   "Phone number is required",
	"message": "Message is required",
	"budget":  "Budget is required",
}

const budgetRangeMessage = "Budget must be one of the listed ranges"

// Validator checks contact submissions against the declarative rules on
// entity.Submission. It holds no per-call state and is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("budget", validBudget)

	return &Validator{validate: v}
}

func validBudget(fl validator.FieldLevel) bool {
	return entity.IsBudgetRange(fl.Field().String())
}

// Validate builds a Submission from raw form values. Keys outside the schema
// are ignored. On failure it returns one FieldError per offending field, in
// declaration order, and a nil Submission.
func (v *Validator) Validate(fields map[string]string) (*entity.Submission, []entity.FieldError) {
	s := entity.Submission{
		Name:    strings.TrimSpace(fields["name"]),
		Company: strings.TrimSpace(fields["company"]),
		Email:   strings.TrimSpace(fields["email"]),
		Phone:   strings.TrimSpace(fields["phone"]),
		Message: strings.TrimSpace(fields["message"]),
		Budget:  strings.TrimSpace(fields["budget"]),
	}

	if errs := v.ValidateSubmission(s); len(errs) > 0 {
		return nil, errs
	}
	return &s, nil
}

func (v *Validator) ValidateSubmission(s entity.Submission) []entity.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []entity.FieldError{{Field: "unknown", Message: err.Error()}}
	}

	// One message per field, first failing rule wins.
	byField := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := byField[fe.Field()]; !seen {
			byField[fe.Field()] = messageFor(fe)
		}
	}

	var errs []entity.FieldError
	for _, field := range contactFields {
		if msg, ok := byField[field]; ok {
			errs = append(errs, entity.FieldError{Field: field, Message: msg})
		}
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	if fe.Field() == "budget" && fe.Tag() == "budget" {
		return budgetRangeMessage
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fe.Error()
}
