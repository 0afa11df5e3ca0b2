package entity

import "fmt"

// Envelope holds the fixed addressing for contact notifications.
type Envelope struct {
	From    string
	To      string
	Subject string
}

const DefaultContactSubject = "New Contact Form Submission"

// Notification is the message a ContactChannel delivers to the site owner.
type Notification struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// NotificationText renders the labeled plain-text body, one field per line.
func NotificationText(s Submission) string {
	return fmt.Sprintf(
		"Name: %s\nCompany: %s\nEmail: %s\nPhone: %s\nMessage: %s\nBudget: %s",
		s.Name, s.Company, s.Email, s.Phone, s.Message, s.Budget,
	)
}
