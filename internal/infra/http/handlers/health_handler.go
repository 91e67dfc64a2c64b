package handlers

import (
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/tahqeeq/outreach/internal/infra/storage"
)

type HealthHandler struct {
	Store     *storage.Store
	RabbitMQ  *amqp091.Connection
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(store *storage.Store, rabbitMQ *amqp091.Connection) *HealthHandler {
	return &HealthHandler{
		Store:     store,
		RabbitMQ:  rabbitMQ,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Store != nil {
		if _, _, err := h.Store.Get(r.Context(), storage.KeyAuth); err != nil {
			deps["storage"] = "unhealthy: " + err.Error()
		} else {
			deps["storage"] = "healthy"
		}
	} else {
		deps["storage"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
