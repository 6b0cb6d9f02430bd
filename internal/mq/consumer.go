package mq

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"

	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/event"
	"cruise-booking-api/internal/notify"
	"cruise-booking-api/internal/system"
)

// StartConsumers drains the payment and recruitment queues. Each is optional:
// a missing channel only disables the async notifications.
func StartConsumers() {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	go consume("payment_completed", handlePaymentCompleted)
	go consume("application_received", handleApplicationReceived)
}

func consume(queue string, handler func(amqp.Delivery)) {
	msgs, err := dal.RabbitCh.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consume %s failed: %v", queue, err)
		return
	}
	for d := range msgs {
		go handler(d)
	}
}

func handlePaymentCompleted(d amqp.Delivery) {
	var evt event.PaymentCompletedEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		log.Printf("[MQ] payment_completed unmarshal failed: %v", err)
		d.Nack(false, false)
		return
	}

	text := fmt.Sprintf("Payment completed\nreference: %s\ntype: %s\namount: %s %s\ncustomer: %s",
		evt.Reference, evt.PaymentType, evt.Amount, evt.Currency, evt.Email)
	notify.Notify(system.OpsChatID, "info", "payment completed", text)

	d.Ack(false)
	log.Printf("[MQ] payment_completed processed: %s", evt.Reference)
}

func handleApplicationReceived(d amqp.Delivery) {
	var evt event.ApplicationReceivedEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		log.Printf("[MQ] application_received unmarshal failed: %v", err)
		d.Nack(false, false)
		return
	}

	text := fmt.Sprintf("New job application\njob: %s\napplicant: %s\nemail: %s",
		evt.JobTitle, evt.Applicant, evt.Email)
	notify.Notify(system.RecruitmentChatID, "info", "application received", text)

	d.Ack(false)
	log.Printf("[MQ] application_received processed: #%d", evt.ApplicationID)
}
