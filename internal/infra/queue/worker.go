package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/workvine/crm-backend/internal/logging"
)

// Notifier is whatever sends the welcome message for a new client.
type Notifier interface {
	SendClientWelcome(to, name, company string) error
}

// Worker drains client.created events and triggers notifications. It is
// fully decoupled from the database.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		logging.Logger.WithError(err).Fatal("failed to register RabbitMQ consumer")
	}

	logging.Logger.Infof("worker consuming queue %q", queueName)

	for d := range msgs {
		var payload ClientCreatedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			logging.Logger.WithError(err).Warn("malformed client.created message")
			// Malformed message: reject without requeue so it lands in
			// the DLQ instead of blocking the queue.
			d.Nack(false, false)
			continue
		}

		if err := w.process(payload); err != nil {
			logging.Logger.WithError(err).Warnf("failed to notify client %s", payload.ClientID)
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}
}

func (w *Worker) process(payload ClientCreatedPayload) error {
	if w.Notifier == nil || payload.Email == "" {
		return nil
	}
	if err := w.Notifier.SendClientWelcome(payload.Email, payload.Name, payload.Company); err != nil {
		return err
	}
	notificationsSent.Inc()
	return nil
}
