package queue

import (
	"context"
	"encoding/json"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/infra/http/middleware"
	"github.com/tahqeeq/outreach/internal/usecase"
)

// Worker consumes generation jobs and runs them sequentially. One job is
// one message; the per-lead pacing lives inside the draft provider.
type Worker struct {
	Channel *amqp.Channel
	Batch   *usecase.BatchGenerateUseCase
	Jobs    usecase.JobRepositoryInterface
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, batch *usecase.BatchGenerateUseCase, jobs usecase.JobRepositoryInterface, logger *zap.Logger) *Worker {
	return &Worker{Channel: ch, Batch: batch, Jobs: jobs, Logger: logger}
}

func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	w.Logger.Info("generation worker waiting", zap.String("queue", queueName))
	return w.run(msgs)
}

// run drains the delivery channel. The channel closing means the broker
// connection is gone; that must surface as an error so the process does not
// keep accepting jobs nothing will ever run.
func (w *Worker) run(msgs <-chan amqp.Delivery) error {
	for d := range msgs {
		w.handle(d)
	}
	return errors.New("delivery channel closed")
}

func (w *Worker) handle(d amqp.Delivery) {
	var payload JobPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		w.Logger.Error("malformed job payload", zap.Error(err))
		// Poison message; reject without requeue so it dead-letters.
		d.Nack(false, false)
		return
	}

	ctx := context.Background()
	job, err := w.Jobs.FindByID(ctx, payload.JobID)
	if err != nil || job == nil {
		w.Logger.Error("job record missing", zap.String("job_id", payload.JobID), zap.Error(err))
		d.Nack(false, false)
		return
	}

	w.Logger.Info("running generation job",
		zap.String("job_id", job.ID),
		zap.Int("leads", job.Total))

	if err := w.Batch.Run(ctx, job); err != nil {
		w.Logger.Error("generation job failed", zap.String("job_id", job.ID), zap.Error(err))
		// Progress is already persisted; requeueing would regenerate
		// drafts for leads that got one. Dead-letter instead.
		d.Nack(false, false)
		return
	}

	middleware.RecordDraftsGenerated(job.Generated)
	d.Ack(false)
}
