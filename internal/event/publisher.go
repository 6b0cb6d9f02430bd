package event

// Publisher decouples services from the message broker.
type Publisher interface {
	Publish(topic string, msg any) error
}

// PaymentCompletedEvent is published when reconciliation flips a payment to
// completed.
type PaymentCompletedEvent struct {
	PaymentID   uint64 `json:"payment_id"`
	Reference   string `json:"reference"`
	PaymentType string `json:"payment_type"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	CompletedAt int64  `json:"completed_at"`
}

// ApplicationReceivedEvent is published when a job application is submitted.
type ApplicationReceivedEvent struct {
	ApplicationID uint64 `json:"application_id"`
	JobID         uint64 `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Applicant     string `json:"applicant"`
	Email         string `json:"email"`
	ReceivedAt    int64  `json:"received_at"`
}
