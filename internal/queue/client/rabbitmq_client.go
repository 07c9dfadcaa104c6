package client

import (
	"fmt"
	"strconv"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	consumerID string
	stopCh     chan struct{}

	mu      sync.Mutex
	unacked map[uint64]amqp.Delivery
}

func NewRabbitMqClient(queueURL, user, password, queueName string) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", user, password, queueURL)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &RabbitMqClient{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		consumerID: fmt.Sprintf("%s-consumer", queueName),
		stopCh:     make(chan struct{}),
		unacked:    make(map[uint64]amqp.Delivery),
	}, nil
}

func (c *RabbitMqClient) SendMessage(messageBody string) error {
	return c.channel.Publish(
		"",          // default exchange
		c.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         []byte(messageBody),
			DeliveryMode: amqp.Persistent,
		},
	)
}

// ReceiveMessages starts consuming the queue with manual acknowledgement.
// Messages stay unacked until DeleteMessage is called with their receipt.
func (c *RabbitMqClient) ReceiveMessages() (<-chan QueueMessage, error) {
	deliveries, err := c.channel.Consume(
		c.queueName,
		c.consumerID,
		false, // autoAck off, messages are acked after successful processing
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume queue %s: %w", c.queueName, err)
	}

	out := make(chan QueueMessage)
	go func() {
		defer close(out)
		for {
			select {
			case <-c.stopCh:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				c.mu.Lock()
				c.unacked[delivery.DeliveryTag] = delivery
				c.mu.Unlock()
				out <- QueueMessage{
					Body:    string(delivery.Body),
					Receipt: strconv.FormatUint(delivery.DeliveryTag, 10),
				}
			}
		}
	}()
	return out, nil
}

func (c *RabbitMqClient) DeleteMessage(receipt string) error {
	tag, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid message receipt %q: %w", receipt, err)
	}

	c.mu.Lock()
	delivery, ok := c.unacked[tag]
	if ok {
		delete(c.unacked, tag)
	}
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("no unacked message for receipt %q", receipt)
	}
	return delivery.Ack(false)
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}

// Ping checks the underlying connection health.
func (c *RabbitMqClient) Ping() error {
	if c.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection for queue %s is closed", c.queueName)
	}
	if c.channel.IsClosed() {
		return fmt.Errorf("rabbitmq channel for queue %s is closed", c.queueName)
	}
	return nil
}

func (c *RabbitMqClient) Stop() error {
	close(c.stopCh)
	if err := c.channel.Cancel(c.consumerID, false); err != nil {
		return err
	}
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}
