package events

import (
	"context"

	"github.com/sonuudigital/microservices/catalog-service/internal/rabbitmq"
)

type RabbitMQClient interface {
	Publish(ctx context.Context, opts rabbitmq.PublishOptions) error
}

// TopicPublisher sends every message to one topic exchange.
type TopicPublisher struct {
	client   RabbitMQClient
	exchange string
}

func NewTopicPublisher(client RabbitMQClient, exchange string) *TopicPublisher {
	return &TopicPublisher{
		client:   client,
		exchange: exchange,
	}
}

func (p *TopicPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	return p.client.Publish(ctx, rabbitmq.PublishOptions{
		Exchange:     p.exchange,
		ExchangeType: rabbitmq.ExchangeTopic,
		RoutingKey:   routingKey,
		Body:         body,
	})
}
