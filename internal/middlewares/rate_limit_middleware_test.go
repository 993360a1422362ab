package middlewares_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/go-redis/redismock/v9"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/sonuudigital/microservices/catalog-service/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	args := m.Called(ctx, key, limit)
	if res, ok := args.Get(0).(*redis_rate.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

var config = middlewares.RateLimitConfig{Rate: 5, Burst: 10}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(mw *middlewares.RateLimiterMiddleware, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	mw.Middleware(okHandler()).ServeHTTP(rr, req)
	return rr
}

func TestRateLimiterMiddleware(t *testing.T) {
	logger := logs.NewSlogLoggerWithWriter(io.Discard, "ERROR")
	limit := redis_rate.Limit{Rate: 5, Period: time.Second, Burst: 10}

	t.Run("Disabled", func(t *testing.T) {
		limiter := new(MockLimiter)
		mw := middlewares.NewRateLimiterMiddleware(logger, config, limiter, false)

		rr := serve(mw, "10.0.0.1:5555")

		assert.Equal(t, http.StatusOK, rr.Code)
		limiter.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Allowed", func(t *testing.T) {
		limiter := new(MockLimiter)
		limiter.On("Allow", mock.Anything, "catalog:10.0.0.1", limit).Return(&redis_rate.Result{Allowed: 1, Remaining: 9}, nil).Once()
		mw := middlewares.NewRateLimiterMiddleware(logger, config, limiter, true)

		rr := serve(mw, "10.0.0.1:5555")

		assert.Equal(t, http.StatusOK, rr.Code)
		limiter.AssertExpectations(t)
	})

	t.Run("Exceeded", func(t *testing.T) {
		limiter := new(MockLimiter)
		limiter.On("Allow", mock.Anything, "catalog:10.0.0.1", limit).Return(&redis_rate.Result{Allowed: 0, RetryAfter: time.Second}, nil).Once()
		mw := middlewares.NewRateLimiterMiddleware(logger, config, limiter, true)

		rr := serve(mw, "10.0.0.1:5555")

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	})

	t.Run("Limiter Error", func(t *testing.T) {
		limiter := new(MockLimiter)
		limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()
		mw := middlewares.NewRateLimiterMiddleware(logger, config, limiter, true)

		rr := serve(mw, "10.0.0.1:5555")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Bad Remote Address", func(t *testing.T) {
		limiter := new(MockLimiter)
		mw := middlewares.NewRateLimiterMiddleware(logger, config, limiter, true)

		rr := serve(mw, "not-an-address")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Redis Limiter Unreachable", func(t *testing.T) {
		client, _ := redismock.NewClientMock()
		mw := middlewares.NewRateLimiterMiddleware(logger, config, redis_rate.NewLimiter(client), true)

		rr := serve(mw, "10.0.0.1:5555")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
