package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ClientCreatedPayload is published whenever a client record comes into
// existence, directly or through lead conversion.
type ClientCreatedPayload struct {
	ClientID     string `json:"client_id"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	SourceLeadID string `json:"source_lead_id,omitempty"`

	// Origin is "direct" or "conversion".
	Origin string `json:"origin"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishClientCreated(ctx context.Context, payload ClientCreatedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
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
		publishErrors.Inc()
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
