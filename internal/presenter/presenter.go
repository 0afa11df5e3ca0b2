// Package presenter renders the contact and newsletter forms from the last
// Result a handler produced. It keeps no state between requests.
package presenter

import (
	"embed"
	"html/template"
	"io"

	"github.com/xavierca1/site-forms/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Input struct {
	Label        string
	Name         string
	Type         string
	AutoComplete string
	Error        string
}

// ContactView is the render state of the contact form.
type ContactView struct {
	Action string
	Result *entity.Result
}

func NewContactView(action string, result *entity.Result) *ContactView {
	return &ContactView{Action: action, Result: result}
}

// FieldError returns the error text shown next to field.
func (v *ContactView) FieldError(field string) string {
	if v.Result == nil {
		return ""
	}
	return v.Result.ErrorFor(field)
}

// ShowThankYou reports whether the thank-you panel replaces the form.
func (v *ContactView) ShowThankYou() bool {
	return v.Result != nil && v.Result.Success
}

// Notice is the form-level message line shown after a failed submission.
func (v *ContactView) Notice() string {
	if v.Result == nil || v.Result.Success {
		return ""
	}
	return v.Result.Message
}

func (v *ContactView) Inputs() []Input {
	return []Input{
		{Label: "Name", Name: "name", Type: "text", AutoComplete: "name", Error: v.FieldError("name")},
		{Label: "Email", Name: "email", Type: "email", AutoComplete: "email", Error: v.FieldError("email")},
		{Label: "Company", Name: "company", Type: "text", AutoComplete: "organization", Error: v.FieldError("company")},
		{Label: "Phone", Name: "phone", Type: "tel", AutoComplete: "tel", Error: v.FieldError("phone")},
		{Label: "Message", Name: "message", Type: "text", Error: v.FieldError("message")},
	}
}

func (v *ContactView) Budgets() []string {
	return entity.BudgetRanges
}

func (v *ContactView) BudgetError() string {
	return v.FieldError("budget")
}

func (v *ContactView) Render(w io.Writer) error {
	return templates.ExecuteTemplate(w, "contact", v)
}

// NewsletterView is the render state of the newsletter signup form.
type NewsletterView struct {
	Action string
	Result *entity.NewsletterResult
}

func NewNewsletterView(action string, result *entity.NewsletterResult) *NewsletterView {
	return &NewsletterView{Action: action, Result: result}
}

func (v *NewsletterView) Success() bool {
	return v.Result != nil && v.Result.Success
}

func (v *NewsletterView) HasErrors() bool {
	return v.Result != nil && !v.Result.Success
}

func (v *NewsletterView) Message() string {
	if v.Result == nil {
		return ""
	}
	return v.Result.Message
}

func (v *NewsletterView) Render(w io.Writer) error {
	return templates.ExecuteTemplate(w, "newsletter", v)
}
