package ledgerservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/metrics"
	"github.com/GlebRadaev/gamebank/internal/serial"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

const (
	DefaultMovementsLimit = 50
	MaxMovementsLimit     = 1000
)

type Repo interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	ApplyMovement(ctx context.Context, name string, movement *domain.MoneyMovement) (*domain.Account, error)
	ListMovements(ctx context.Context, accountID string, limit int) ([]domain.MoneyMovement, error)
}

type NameResolver interface {
	ResolveName(ctx context.Context, accountID string) (string, error)
}

// Service owns every balance mutation. Deposits and withdrawals are executed
// one at a time on the ledger queue; reads go straight to the repository.
type Service struct {
	repo    Repo
	names   NameResolver
	queue   serial.QueueI
	metrics metrics.Collector
	now     func() time.Time
}

func New(repo Repo, names NameResolver, queue serial.QueueI, collector metrics.Collector) *Service {
	if collector == nil {
		collector = metrics.NoOp{}
	}
	return &Service{
		repo:    repo,
		names:   names,
		queue:   queue,
		metrics: collector,
		now:     time.Now,
	}
}

func (s *Service) observe(op string, err error) {
	s.metrics.RecordOperation("ledger", op, domain.StatusOf(err).String())
}

func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, domain.AsUnexpected("failed to get account", err)
	}
	if account == nil {
		return nil, domain.NotFound(domain.CodeAccountNotFound, "account not found")
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID string) (int64, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (s *Service) Deposit(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (balance int64, err error) {
	defer func() { s.observe("deposit", err) }()
	return s.apply(ctx, accountID, amount, true, meta)
}

func (s *Service) Withdraw(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (balance int64, err error) {
	defer func() { s.observe("withdraw", err) }()
	return s.apply(ctx, accountID, amount, false, meta)
}

func (s *Service) Movements(ctx context.Context, accountID string, limit int) ([]domain.MoneyMovement, error) {
	switch {
	case limit <= 0:
		limit = DefaultMovementsLimit
	case limit > MaxMovementsLimit:
		limit = MaxMovementsLimit
	}
	movements, err := s.repo.ListMovements(ctx, accountID, limit)
	if err != nil {
		return nil, domain.AsUnexpected("failed to list money movements", err)
	}
	return movements, nil
}

func (s *Service) apply(ctx context.Context, accountID string, amount int64, deposit bool, meta domain.MovementMeta) (int64, error) {
	if accountID == "" {
		return 0, domain.Validation(domain.CodeInvalidInput, "account id is required")
	}
	if amount <= 0 {
		return 0, domain.Validation(domain.CodeInvalidAmount, "amount must be positive")
	}
	delta := amount
	if !deposit {
		delta = -amount
	}

	name, err := s.accountName(ctx, accountID)
	if err != nil {
		return 0, err
	}

	var balance int64
	err = s.queue.Do(ctx, func(ctx context.Context) error {
		movement := &domain.MoneyMovement{
			AccountID:   accountID,
			Delta:       delta,
			Deposit:     deposit,
			Source:      meta.Source,
			Note:        meta.Note,
			DisplayNote: meta.DisplayNote,
			Origin:      meta.Origin,
			CreatedAt:   s.now(),
		}
		account, err := s.repo.ApplyMovement(ctx, name, movement)
		if err != nil {
			return err
		}
		balance = account.Balance
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to apply money movement",
				zap.String("account", accountID), zap.Int64("delta", delta), zap.Error(err))
		}
		return 0, classify(err)
	}
	return balance, nil
}

// accountName returns the stored name, asking the resolver only for accounts
// that do not exist yet.
func (s *Service) accountName(ctx context.Context, accountID string) (string, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return "", domain.AsUnexpected("failed to get account", err)
	}
	if account != nil {
		return account.Name, nil
	}
	name, err := s.names.ResolveName(ctx, accountID)
	if err != nil {
		zap.L().Warn("failed to resolve player name", zap.String("account", accountID), zap.Error(err))
		return "", domain.PlayerNotFound(accountID, err)
	}
	return name, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, serial.ErrQueueClosed):
		return domain.Unexpected(domain.CodeQueueUnavailable, "ledger queue is closed", err)
	case errors.Is(err, serial.ErrTaskPanicked):
		return domain.Unexpected(domain.CodeUnexpected, "ledger operation failed", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.Unexpected(domain.CodeUnexpected, "request abandoned before completion", err)
	default:
		return domain.AsUnexpected("failed to apply money movement", err)
	}
}
