package entity

// Submission is one contact-form inquiry. It lives for a single request and is
// never stored.
type Submission struct {
	Name    string `json:"name" validate:"required,min=1"`
	Company string `json:"company" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,min=5,email"`
	Phone   string `json:"phone" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=5"`
	Budget  string `json:"budget" validate:"required,budget"`
}

// Budget brackets offered by the contact form, in display order.
var BudgetRanges = []string{
	"$1K – $10K",
	"$10K – $25K",
	"$25K – $50K",
	"$50K – $100K",
	"$100K – $150K",
	"More than $150K",
}

func IsBudgetRange(value string) bool {
	for _, b := range BudgetRanges {
		if b == value {
			return true
		}
	}
	return false
}

// Subscription is the body forwarded to the mailing-list provider.
type Subscription struct {
	Email  string   `json:"email"`
	Groups []string `json:"groups"`
}

// DefaultNewsletterGroup is the mailing-list group every signup joins.
const DefaultNewsletterGroup = "121248322928247905"

// SubscriberResponse is the raw answer of the mailing-list provider.
type SubscriberResponse struct {
	StatusCode int
	Body       []byte
}
