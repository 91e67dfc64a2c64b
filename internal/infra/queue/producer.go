package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tahqeeq/outreach/internal/entity"
)

// JobPayload is the wire form of a queued generation job. Only the id
// travels; the worker reloads the job record from storage so progress
// reporting and the payload never drift apart.
type JobPayload struct {
	JobID string `json:"job_id"`
}

type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishJob(ctx context.Context, job *entity.GenerationJob) error {
	body, err := json.Marshal(JobPayload{JobID: job.ID})
	if err != nil {
		return fmt.Errorf("encode job payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish generation job: %w", err)
	}
	return nil
}
