package dal

import (
	"log"

	"github.com/streadway/amqp"

	"cruise-booking-api/internal/config"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("payment_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("payment_completed", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare payment_completed failed: %v", err)
	}
	if _, err := ch.QueueDeclare("application_received", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare application_received failed: %v", err)
	}
	if err := ch.QueueBind("payment_completed", "payment.completed", "payment_events", false, nil); err != nil {
		log.Fatalf("queue bind payment_completed failed: %v", err)
	}
	if err := ch.QueueBind("application_received", "application.received", "payment_events", false, nil); err != nil {
		log.Fatalf("queue bind application_received failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
