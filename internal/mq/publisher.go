package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"cruise-booking-api/internal/dal"
)

// Publisher implements event.Publisher over the shared Rabbit channel.
type Publisher struct{}

func NewPublisher() *Publisher { return &Publisher{} }

// Publish routes topic names to routing keys on the payment_events exchange.
// A missing channel is tolerated: events are fire-and-forget enrichment, not
// part of the booking transaction.
func (p *Publisher) Publish(topic string, msg any) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	err = dal.RabbitCh.Publish(
		"payment_events",
		topic,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", topic, err)
	}
	return err
}
