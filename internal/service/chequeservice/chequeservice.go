package chequeservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/metrics"
	"github.com/GlebRadaev/gamebank/internal/serial"
	"github.com/GlebRadaev/gamebank/pkg/validate"
)

//go:generate mockgen -source=chequeservice.go -destination=mock_chequeservice.go -package=chequeservice

const (
	maxNumberAttempts = 5

	DefaultListLimit = 50
	MaxListLimit     = 1000
)

type Repo interface {
	Create(ctx context.Context, cheque *domain.Cheque) (bool, error)
	Get(ctx context.Context, id string) (*domain.Cheque, error)
	MarkUsed(ctx context.Context, id, redeemerID string, at time.Time) (*domain.Cheque, error)
	ListByIssuer(ctx context.Context, issuerID string, limit int) ([]domain.Cheque, error)
}

// Service issues and redeems bearer cheques. Create and Redeem share one
// queue, so of several concurrent redeemers exactly one sees the cheque
// unused.
type Service struct {
	repo      Repo
	queue     serial.QueueI
	metrics   metrics.Collector
	now       func() time.Time
	newNumber func() string
}

func New(repo Repo, queue serial.QueueI, collector metrics.Collector) *Service {
	if collector == nil {
		collector = metrics.NoOp{}
	}
	return &Service{
		repo:      repo,
		queue:     queue,
		metrics:   collector,
		now:       time.Now,
		newNumber: validate.NewChequeNumber,
	}
}

func (s *Service) observe(op string, err error) {
	s.metrics.RecordOperation("cheque", op, domain.StatusOf(err).String())
}

func (s *Service) Create(ctx context.Context, issuerID string, amount int64, note string) (_ *domain.Cheque, err error) {
	defer func() { s.observe("create", err) }()

	if issuerID == "" {
		return nil, domain.Validation(domain.CodeInvalidInput, "issuer is required")
	}
	if amount <= 0 {
		return nil, domain.Validation(domain.CodeInvalidAmount, "amount must be positive")
	}

	var cheque *domain.Cheque
	err = s.queue.Do(ctx, func(ctx context.Context) error {
		for attempt := 0; attempt < maxNumberAttempts; attempt++ {
			candidate := &domain.Cheque{
				ID:        s.newNumber(),
				IssuerID:  issuerID,
				Amount:    amount,
				Note:      note,
				CreatedAt: s.now(),
			}
			created, err := s.repo.Create(ctx, candidate)
			if err != nil {
				return err
			}
			if created {
				cheque = candidate
				return nil
			}
			zap.L().Warn("cheque number collision", zap.String("cheque", candidate.ID), zap.Int("attempt", attempt+1))
		}
		return domain.Unexpected(domain.CodeUnexpected, "could not allocate a free cheque number", nil)
	})
	if err != nil {
		zap.L().Error("failed to create cheque", zap.String("issuer", issuerID), zap.Error(err))
		return nil, classify(err)
	}
	return cheque, nil
}

func (s *Service) Redeem(ctx context.Context, id, redeemerID string) (_ *domain.Cheque, err error) {
	defer func() { s.observe("redeem", err) }()

	if redeemerID == "" {
		return nil, domain.Validation(domain.CodeInvalidInput, "redeemer is required")
	}
	if !validate.IsChequeNumber(id) {
		return nil, domain.NotFound(domain.CodeChequeNotFound, "cheque not found")
	}

	var cheque *domain.Cheque
	err = s.queue.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFound(domain.CodeChequeNotFound, "cheque not found")
		}
		if current.Used {
			if current.RedeemerID != nil && *current.RedeemerID == redeemerID {
				cheque = current
				return nil
			}
			return domain.Conflict(domain.CodeChequeAlreadyUsed, "cheque has already been redeemed")
		}

		redeemed, err := s.repo.MarkUsed(ctx, id, redeemerID, s.now())
		if err != nil {
			return err
		}
		if redeemed == nil {
			return domain.Conflict(domain.CodeChequeAlreadyUsed, "cheque has already been redeemed")
		}
		cheque = redeemed
		return nil
	})
	if err != nil {
		if domain.StatusOf(err) == domain.StatusInternalError {
			zap.L().Error("failed to redeem cheque", zap.String("cheque", id), zap.Error(err))
		}
		return nil, classify(err)
	}
	return cheque, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Cheque, error) {
	if !validate.IsChequeNumber(id) {
		return nil, domain.NotFound(domain.CodeChequeNotFound, "cheque not found")
	}
	cheque, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, domain.AsUnexpected("failed to get cheque", err)
	}
	if cheque == nil {
		return nil, domain.NotFound(domain.CodeChequeNotFound, "cheque not found")
	}
	return cheque, nil
}

func (s *Service) ListByIssuer(ctx context.Context, issuerID string, limit int) ([]domain.Cheque, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	cheques, err := s.repo.ListByIssuer(ctx, issuerID, limit)
	if err != nil {
		return nil, domain.AsUnexpected("failed to list cheques", err)
	}
	return cheques, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, serial.ErrQueueClosed):
		return domain.Unexpected(domain.CodeQueueUnavailable, "cheque queue is closed", err)
	case errors.Is(err, serial.ErrTaskPanicked):
		return domain.Unexpected(domain.CodeUnexpected, "cheque operation failed", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.Unexpected(domain.CodeUnexpected, "request abandoned before completion", err)
	default:
		return domain.AsUnexpected("cheque store failure", err)
	}
}
