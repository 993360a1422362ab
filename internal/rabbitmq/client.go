package rabbitmq

import (
	"context"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
)

type Client struct {
	*connectionManager
}

func NewClient(logger logs.Logger, url string) (*Client, error) {
	manager, err := newConnectionManager(logger, url)
	if err != nil {
		return nil, err
	}
	return &Client{connectionManager: manager}, nil
}

func (c *Client) Publish(ctx context.Context, opts PublishOptions) error {
	return c.retryWithReconnect(ctx, "publish", func() error {
		if err := c.ensureExchange(opts.Exchange, opts.ExchangeType); err != nil {
			return err
		}
		return c.publishMessage(ctx, opts)
	})
}

func (c *Client) ensureExchange(name string, exchangeType ExchangeType) error {
	return c.channel.ExchangeDeclare(
		name,
		string(exchangeType),
		true,
		false,
		false,
		false,
		nil,
	)
}

func (c *Client) publishMessage(ctx context.Context, opts PublishOptions) error {
	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         opts.Body,
		Timestamp:    time.Now(),
	}

	return c.channel.PublishWithContext(
		ctx,
		opts.Exchange,
		opts.RoutingKey,
		false,
		false,
		publishing,
	)
}
