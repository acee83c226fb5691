package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/config"
	"github.com/GlebRadaev/gamebank/internal/names"
	"github.com/GlebRadaev/gamebank/internal/scheduler"
	"github.com/GlebRadaev/gamebank/internal/service/serverloanservice"
	"github.com/GlebRadaev/gamebank/pkg/clients"
)

const (
	interestJob = "server-loan-interest"
	sweepJob    = "server-loan-sweep"
)

type serverLoanRunner interface {
	ApplyDailyInterest(ctx context.Context) error
	SweepRepayments(ctx context.Context) error
}

func buildPolicy(p config.Policy) (serverloanservice.Policy, error) {
	if p.DailyInterestRate < 0 {
		return serverloanservice.Policy{}, fmt.Errorf("daily interest rate %v is negative", p.DailyInterestRate)
	}
	if p.MinLoanAmount <= 0 || p.MaxLoanAmount < p.MinLoanAmount {
		return serverloanservice.Policy{}, fmt.Errorf("loan bounds [%d, %d] are invalid", p.MinLoanAmount, p.MaxLoanAmount)
	}
	return serverloanservice.Policy{
		DailyInterestRate:  decimal.NewFromFloat(p.DailyInterestRate),
		MinLoanAmount:      p.MinLoanAmount,
		MaxLoanAmount:      p.MaxLoanAmount,
		RepayHistoryWindow: p.RepayHistoryWindow,
		PaymentDays:        p.PaymentDays,
		SweepConcurrency:   p.SweepConcurrency,
	}, nil
}

func serverLoanJobs(p config.Policy, runner serverLoanRunner) ([]scheduler.Job, error) {
	interestAt, err := config.ParseClock(p.InterestTime)
	if err != nil {
		return nil, err
	}
	repayAt, err := config.ParseClock(p.RepayTime)
	if err != nil {
		return nil, err
	}
	repayDay, err := config.ParseWeekday(p.RepayWeekday)
	if err != nil {
		return nil, err
	}

	return []scheduler.Job{
		{
			Name:    interestJob,
			Trigger: scheduler.Daily{At: interestAt},
			Action:  retryUntouched(runner.ApplyDailyInterest),
		},
		{
			Name:    sweepJob,
			Trigger: scheduler.Weekly{Day: repayDay, At: repayAt},
			Action:  retryUntouched(runner.SweepRepayments),
		},
	}, nil
}

// retryUntouched leaves the period open when a batch job failed before it
// reached any account.
func retryUntouched(action scheduler.Action) scheduler.Action {
	return func(ctx context.Context) error {
		err := action(ctx)
		if errors.Is(err, serverloanservice.ErrNothingApplied) {
			return fmt.Errorf("%w: %w", scheduler.ErrNotApplied, err)
		}
		return err
	}
}

// buildNameResolver chains the name service client behind a circuit breaker
// and, when Redis is configured, a cache. Without a name service every
// account id is its own name.
func buildNameResolver(ctx context.Context, cfg *config.Config) (names.Resolver, func(), error) {
	if cfg.NameService == "" {
		zap.L().Warn("name service is not configured, account ids are used as names")
		return names.Passthrough{}, func() {}, nil
	}

	var resolver names.Resolver = names.NewHTTPResolver(cfg.NameService, clients.NewHTTPClient())
	resolver = names.NewBreakerResolver(resolver, names.DefaultBreakerConfig())

	if cfg.RedisAddr == "" {
		return resolver, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("can't connect to redis: %w", err)
	}
	zap.L().Info("player name cache enabled", zap.String("redis", cfg.RedisAddr), zap.Duration("ttl", cfg.NameCacheTTL))

	closeRedis := func() {
		if err := rdb.Close(); err != nil {
			zap.L().Error("failed to close redis client", zap.Error(err))
		}
	}
	return names.NewCachedResolver(resolver, rdb, cfg.NameCacheTTL), closeRedis, nil
}
