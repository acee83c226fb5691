package names

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// BreakerResolver stops calling a failing name service for a while. Unknown
// players are answers, not failures, and never trip the breaker.
type BreakerResolver struct {
	next Resolver
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerResolver(next Resolver, cfg BreakerConfig) *BreakerResolver {
	settings := gobreaker.Settings{
		Name:        "name-service",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrPlayerNotFound)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			zap.L().Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &BreakerResolver{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (r *BreakerResolver) ResolveName(ctx context.Context, accountID string) (string, error) {
	name, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.ResolveName(ctx, accountID)
	})
	if err != nil {
		return "", err
	}
	return name.(string), nil
}

func (r *BreakerResolver) State() gobreaker.State {
	return r.cb.State()
}
