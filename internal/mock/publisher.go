package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, name string, payload any) error {
	args := m.Called(ctx, name, payload)
	return args.Error(0)
}
