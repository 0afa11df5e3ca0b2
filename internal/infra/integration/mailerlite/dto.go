package mailerlite

// subscribeRequest mirrors POST /subscribers: {"email":…,"groups":[…]}.
type subscribeRequest struct {
	Email  string   `json:"email"`
	Groups []string `json:"groups"`
}
