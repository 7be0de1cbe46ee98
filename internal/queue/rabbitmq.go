package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const headerRetryCount = "x-retry-count"

type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	maxRetries int
	retryDelay time.Duration
	mu         sync.RWMutex
}

type Config struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func NewRabbitMQBroker(cfg Config) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	broker := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}

	// every work queue gets a paired dead-letter queue
	queues := []string{
		QueuePaymentEvents,
		QueueMenuImport,
		QueuePaymentEventsDLQ,
		QueueMenuImportDLQ,
	}

	for _, queueName := range queues {
		if err := broker.declareQueue(queueName); err != nil {
			broker.Close()
			return nil, err
		}
	}

	return broker, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return nil
}

func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return b.publish(ctx, queueName, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         message,
		Timestamp:    time.Now(),
	})
}

func (b *RabbitMQBroker) publish(ctx context.Context, queueName string, msg amqp.Publishing) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	err := b.channel.PublishWithContext(
		ctx,
		"",        // default exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	deliveries, err := b.channel.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	b.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				b.handleDelivery(ctx, queueName, msg, handler)
			}
		}
	}()

	return nil
}

// handleDelivery always acks: failed messages are re-published with an
// incremented retry counter, and after maxRetries attempts they go to
// the queue's DLQ instead of cycling forever.
func (b *RabbitMQBroker) handleDelivery(ctx context.Context, queueName string, msg amqp.Delivery, handler MessageHandler) {
	err := handler(ctx, msg.Body)
	if err == nil {
		msg.Ack(false)
		return
	}

	retries := retryCount(msg.Headers)
	if retries < b.maxRetries {
		b.requeue(ctx, queueName, msg, retries)
	} else {
		b.deadLetter(ctx, queueName, msg, retries, err)
	}

	msg.Ack(false)
}

func retryCount(headers amqp.Table) int {
	if headers == nil {
		return 0
	}
	count, _ := headers[headerRetryCount].(int32)
	return int(count)
}

func (b *RabbitMQBroker) requeue(ctx context.Context, queueName string, msg amqp.Delivery, retries int) {
	// backoff doubles per attempt, starting from the configured delay
	time.Sleep(b.retryDelay << retries)

	_ = b.publish(ctx, queueName, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  msg.ContentType,
		Body:         msg.Body,
		Headers: amqp.Table{
			headerRetryCount: int32(retries + 1),
		},
		Timestamp: time.Now(),
	})
}

func (b *RabbitMQBroker) deadLetter(ctx context.Context, queueName string, msg amqp.Delivery, retries int, handlerErr error) {
	_ = b.publish(ctx, queueName+"-dlq", amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  msg.ContentType,
		Body:         msg.Body,
		Headers: amqp.Table{
			"x-original-queue": queueName,
			headerRetryCount:   int32(retries),
			"x-error":          handlerErr.Error(),
		},
		Timestamp: time.Now(),
	})
}

func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
