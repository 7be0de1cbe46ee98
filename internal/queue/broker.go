package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueuePaymentEvents    = "payment-events"
	QueueMenuImport       = "menu-import"
	QueuePaymentEventsDLQ = "payment-events-dlq"
	QueueMenuImportDLQ    = "menu-import-dlq"
)
