package client

type QueueMessage struct {
	Body    string
	Receipt string
}

// A common interface for queue clients regardless of the underlying broker.
type QueueClient interface {
	SendMessage(messageBody string) error
	ReceiveMessages() (<-chan QueueMessage, error)
	DeleteMessage(receipt string) error
	GetQueueName() string
	Ping() error
	Stop() error
}

func NewQueueClient(queueURL, user, password, queueName string) (QueueClient, error) {
	return NewRabbitMqClient(queueURL, user, password, queueName)
}
