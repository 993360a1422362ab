package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
)

const (
	maxRetries           = 3
	backoff              = 100 * time.Millisecond
	failedToReconnectMsg = "failed to reconnect: %w"
)

// connectionManager serializes channel use with mu. The connection and
// channel fields are guarded by stateMu so Ping can read them while a
// publish or reconnect holds mu.
type connectionManager struct {
	logger     logs.Logger
	url        string
	mu         sync.Mutex
	stateMu    sync.RWMutex
	connection *amqp091.Connection
	channel    *amqp091.Channel
}

func newConnectionManager(logger logs.Logger, url string) (*connectionManager, error) {
	manager := &connectionManager{
		logger: logger,
		url:    url,
	}

	if err := manager.connect(); err != nil {
		return nil, err
	}

	return manager, nil
}

func (cm *connectionManager) connect() error {
	conn, err := amqp091.Dial(cm.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	cm.replace(conn, ch)
	cm.logger.Info("connected to RabbitMQ")
	return nil
}

// replace swaps in a new connection and channel, closing the previous ones.
func (cm *connectionManager) replace(conn *amqp091.Connection, ch *amqp091.Channel) {
	cm.stateMu.Lock()
	defer cm.stateMu.Unlock()

	if cm.channel != nil && !cm.channel.IsClosed() {
		_ = cm.channel.Close()
	}
	if cm.connection != nil && !cm.connection.IsClosed() {
		_ = cm.connection.Close()
	}
	cm.connection = conn
	cm.channel = ch
}

func (cm *connectionManager) reconnect(ctx context.Context) error {
	backoff := 1 * time.Second
	maxBackoff := 30 * time.Second
	maxAttempts := 10
	attempts := 0

	for {
		attempts++
		if attempts > maxAttempts {
			return fmt.Errorf("max reconnection attempts reached: %d", maxAttempts)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
			cm.logger.Info("attempting to reconnect to RabbitMQ", "attempt", attempts, "backoff", backoff)

			if err := cm.connect(); err != nil {
				cm.logger.Error("failed to reconnect", "error", err, "attempt", attempts, "nextRetry", backoff*2)

				backoff *= 2
				if backoff > maxBackoff {
					backoff = maxBackoff
				}
				continue
			}

			cm.logger.Info("successfully reconnected to RabbitMQ")
			return nil
		}
	}
}

func (cm *connectionManager) isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	cm.stateMu.RLock()
	defer cm.stateMu.RUnlock()

	if cm.connection == nil || cm.connection.IsClosed() {
		return true
	}

	if cm.channel == nil || cm.channel.IsClosed() {
		return true
	}

	return isClosedChannelError(err)
}

func isClosedChannelError(err error) bool {
	var amqpErr *amqp091.Error
	if !errors.As(err, &amqpErr) {
		return false
	}
	return amqpErr.Code == amqp091.ChannelError || amqpErr.Code == amqp091.ConnectionForced
}

func (cm *connectionManager) Close() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.replace(nil, nil)
	cm.logger.Info("rabbitmq connection manager closed")
}

func (cm *connectionManager) Ping(context.Context) error {
	cm.stateMu.RLock()
	defer cm.stateMu.RUnlock()

	if cm.connection == nil || cm.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed")
	}
	return nil
}

func (cm *connectionManager) shouldReturn(err error, attempt, maxRetries int) bool {
	return !cm.isConnectionError(err) || attempt == maxRetries
}

func (cm *connectionManager) tryReconnect(ctx context.Context) error {
	if err := cm.reconnect(ctx); err != nil {
		return fmt.Errorf(failedToReconnectMsg, err)
	}
	return nil
}

// retryWithReconnect serializes channel use; amqp channels are not safe for
// concurrent publishers.
func (cm *connectionManager) retryWithReconnect(ctx context.Context, opName string, op func() error) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := op(); err != nil {
			if cm.shouldReturn(err, attempt, maxRetries) {
				return err
			}
			cm.logger.Warn(opName+": transient error, attempting reconnect", "attempt", attempt, "error", err)
			if err := cm.tryReconnect(ctx); err != nil {
				return err
			}
			time.Sleep(backoff * time.Duration(attempt))
			continue
		}
		return nil
	}
	return fmt.Errorf("%s failed after %d retries", opName, maxRetries)
}
