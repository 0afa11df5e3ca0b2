package handlers

import (
	"net/http"
	"time"
)

// Closer reports broker connectivity; *queue.RabbitMQ satisfies it.
type Closer interface {
	IsClosed() bool
}

type HealthHandler struct {
	ContactChannel       string
	ContactConfigured    bool
	NewsletterConfigured bool
	Broker               Closer
	StartTime            time.Time
	Version              string
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(contactChannel string, contactConfigured, newsletterConfigured bool, broker Closer) *HealthHandler {
	return &HealthHandler{
		ContactChannel:       contactChannel,
		ContactConfigured:    contactConfigured,
		NewsletterConfigured: newsletterConfigured,
		Broker:               broker,
		StartTime:            time.Now(),
		Version:              "1.0.0",
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	deps["contact_"+h.ContactChannel] = configured(h.ContactConfigured)
	deps["mailerlite"] = configured(h.NewsletterConfigured)

	if h.Broker != nil {
		if h.Broker.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
