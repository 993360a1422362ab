package rabbitmq

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestIsClosedChannelError(t *testing.T) {
	assert.True(t, isClosedChannelError(amqp091.ErrClosed))
	assert.True(t, isClosedChannelError(&amqp091.Error{Code: amqp091.ChannelError}))
	assert.True(t, isClosedChannelError(&amqp091.Error{Code: amqp091.ConnectionForced}))
	assert.False(t, isClosedChannelError(&amqp091.Error{Code: amqp091.NotFound}))
	assert.False(t, isClosedChannelError(errors.New("boom")))
}

func TestIsConnectionErrorWithoutConnection(t *testing.T) {
	cm := &connectionManager{}

	assert.False(t, cm.isConnectionError(nil))
	assert.True(t, cm.isConnectionError(errors.New("boom")))
	assert.True(t, cm.shouldReturn(errors.New("boom"), maxRetries, maxRetries))
	assert.False(t, cm.shouldReturn(errors.New("boom"), 1, maxRetries))
}

func TestPingWithoutConnection(t *testing.T) {
	cm := &connectionManager{}
	assert.Error(t, cm.Ping(context.Background()))
}

func TestPingWhileConnectionIsReplaced(t *testing.T) {
	cm := &connectionManager{}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cm.replace(nil, nil)
		}()
		go func() {
			defer wg.Done()
			assert.Error(t, cm.Ping(context.Background()))
		}()
	}
	wg.Wait()
}
