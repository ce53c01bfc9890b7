package rabbitmq

import "context"

// PublisherInterface abstracts the broker so order flows keep working
// with events disabled when RabbitMQ is not configured.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)