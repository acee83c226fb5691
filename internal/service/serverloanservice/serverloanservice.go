package serverloanservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/metrics"
	"github.com/GlebRadaev/gamebank/internal/serial"
)

//go:generate mockgen -source=serverloanservice.go -destination=mock_serverloanservice.go -package=serverloanservice

const (
	movementSource = "server_loan"

	maxWindow      = 1000
	historyFactor  = 20
	limitFactor    = 5
	defaultWorkers = 4
)

// ErrNothingApplied is returned by the batch jobs when they fail before any
// account was touched.
var ErrNothingApplied = errors.New("no server loan was processed")

type Repo interface {
	Get(ctx context.Context, accountID string) (*domain.ServerLoan, error)
	Borrow(ctx context.Context, accountID string, amount, paymentAmount int64, at time.Time) (*domain.ServerLoan, error)
	RecordRepaySuccess(ctx context.Context, accountID string, amount int64, at time.Time) (*domain.ServerLoan, error)
	RecordRepayFailure(ctx context.Context, accountID string, amount int64, at time.Time) (*domain.ServerLoan, error)
	AddInterest(ctx context.Context, accountID string, interest int64, at time.Time) (*domain.ServerLoan, error)
	SetInterestStopped(ctx context.Context, accountID string, stopped bool, at time.Time) (*domain.ServerLoan, error)
	SetPaymentAmount(ctx context.Context, accountID string, amount int64, at time.Time) (*domain.ServerLoan, error)
	ListEvents(ctx context.Context, accountID string, actions []domain.ServerLoanAction, limit int) ([]domain.ServerLoanEvent, error)
	ListOutstanding(ctx context.Context) ([]string, error)
}

type Ledger interface {
	Deposit(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)
	Withdraw(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)
}

type Policy struct {
	DailyInterestRate  decimal.Decimal
	MinLoanAmount      int64
	MaxLoanAmount      int64
	RepayHistoryWindow int
	PaymentDays        int
	SweepConcurrency   int
}

// Service runs the revolving server loan of every account. Operations on the
// same account never overlap.
type Service struct {
	repo    Repo
	ledger  Ledger
	policy  Policy
	metrics metrics.Collector
	locks   serial.KeyedMutex
	now     func() time.Time
}

func New(repo Repo, ledger Ledger, policy Policy, collector metrics.Collector) *Service {
	if collector == nil {
		collector = metrics.NoOp{}
	}
	if policy.SweepConcurrency <= 0 {
		policy.SweepConcurrency = defaultWorkers
	}
	return &Service{
		repo:    repo,
		ledger:  ledger,
		policy:  policy,
		metrics: collector,
		now:     time.Now,
	}
}

func (s *Service) observe(op string, err error) {
	s.metrics.RecordOperation("server_loan", op, domain.StatusOf(err).String())
}

// round rounds half away from zero to whole currency units.
func round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func (s *Service) GetByAccount(ctx context.Context, accountID string) (*domain.ServerLoan, error) {
	loan, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, domain.AsUnexpected("failed to get server loan", err)
	}
	if loan == nil {
		return nil, domain.NotFound(domain.CodeServerLoanNotFound, "server loan not found")
	}
	return loan, nil
}

// DefaultPaymentAmount is the per-period payment set on the first borrow.
func (s *Service) DefaultPaymentAmount(principal int64) int64 {
	return round(decimal.NewFromInt(principal).
		Mul(s.policy.DailyInterestRate).
		Mul(decimal.NewFromInt(int64(s.policy.PaymentDays))))
}

// Borrow lends amount to the account. Each borrow must reach the policy
// minimum and the total debt may not go above the policy maximum.
func (s *Service) Borrow(ctx context.Context, accountID string, amount int64) (_ *domain.ServerLoan, err error) {
	defer func() { s.observe("borrow", err) }()

	if accountID == "" {
		return nil, domain.Validation(domain.CodeInvalidInput, "account id is required")
	}
	if amount <= 0 {
		return nil, domain.Validation(domain.CodeInvalidAmount, "amount must be positive")
	}

	if amount < s.policy.MinLoanAmount {
		return nil, domain.Validation(domain.CodeBelowMinLoan,
			fmt.Sprintf("amount must be at least %d", s.policy.MinLoanAmount))
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	current, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, domain.AsUnexpected("failed to get server loan", err)
	}
	var outstanding int64
	if current != nil {
		outstanding = current.Outstanding
	}
	if amount > s.policy.MaxLoanAmount-outstanding {
		return nil, domain.Validation(domain.CodeLoanLimitExceeded,
			fmt.Sprintf("server debt may not exceed %d, %d already owed", s.policy.MaxLoanAmount, outstanding))
	}

	ctx = context.WithoutCancel(ctx)
	if _, err := s.ledger.Deposit(ctx, accountID, amount, domain.MovementMeta{
		Source: movementSource, Note: "server loan borrow", DisplayNote: "Server loan",
	}); err != nil {
		return nil, err
	}

	loan, err := s.repo.Borrow(ctx, accountID, amount, s.DefaultPaymentAmount(amount), s.now())
	if err != nil {
		zap.L().Error("failed to record server loan", zap.String("account", accountID), zap.Error(err))
		_, werr := s.ledger.Withdraw(ctx, accountID, amount, domain.MovementMeta{
			Source: movementSource, Note: "server loan borrow reverted", DisplayNote: "Server loan reverted",
		})
		if werr != nil {
			zap.L().Error("compensation failed: take back server loan",
				zap.String("account", accountID), zap.Int64("amount", amount), zap.Error(werr))
			return nil, domain.Unexpected(domain.CodeCompensationFailed, "failed to record server loan, revert incomplete", err)
		}
		return nil, domain.Unexpected(domain.CodeCompensated, "failed to record server loan, transfer reverted", err)
	}
	return loan, nil
}

// Repay pays amount, or the configured payment amount when amount is nil or
// not positive, capped at what is still owed.
func (s *Service) Repay(ctx context.Context, accountID string, amount *int64) (_ *domain.ServerLoan, err error) {
	defer func() { s.observe("repay", err) }()

	unlock := s.locks.Lock(accountID)
	defer unlock()

	loan, err := s.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if loan.Outstanding <= 0 {
		return loan, nil
	}

	requested := loan.PaymentAmount
	if amount != nil && *amount > 0 {
		requested = *amount
	}
	if requested <= 0 {
		if amount != nil {
			return nil, domain.Validation(domain.CodeInvalidPaymentAmount, "payment amount must be positive")
		}
		return nil, domain.Validation(domain.CodeNoPaymentAmount, "no payment amount configured")
	}
	effective := min(requested, loan.Outstanding)

	ctx = context.WithoutCancel(ctx)
	_, err = s.ledger.Withdraw(ctx, accountID, effective, domain.MovementMeta{
		Source: movementSource, Note: "server loan repayment", DisplayNote: "Server loan repayment",
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			if _, rerr := s.repo.RecordRepayFailure(ctx, accountID, effective, s.now()); rerr != nil {
				zap.L().Error("failed to record failed repayment", zap.String("account", accountID), zap.Error(rerr))
			}
		}
		return nil, err
	}

	updated, err := s.repo.RecordRepaySuccess(ctx, accountID, effective, s.now())
	if err != nil {
		zap.L().Error("failed to record repayment", zap.String("account", accountID), zap.Error(err))
		_, derr := s.ledger.Deposit(ctx, accountID, effective, domain.MovementMeta{
			Source: movementSource, Note: "server loan repayment reverted", DisplayNote: "Server loan refund",
		})
		if derr != nil {
			zap.L().Error("compensation failed: refund repayment",
				zap.String("account", accountID), zap.Int64("amount", effective), zap.Error(derr))
			return nil, domain.Unexpected(domain.CodeCompensationFailed, "failed to record repayment, revert incomplete", err)
		}
		return nil, domain.Unexpected(domain.CodeCompensated, "failed to record repayment, transfer reverted", err)
	}
	return updated, nil
}

// ComputeBorrowLimit derives how much the account may borrow from its recent
// repayment history. Any failed repayment in the window caps the limit at the
// smallest failed amount, otherwise it is five times the average successful
// repayment.
func (s *Service) ComputeBorrowLimit(ctx context.Context, accountID string, window *int) (int64, error) {
	w := s.policy.RepayHistoryWindow
	if window != nil {
		w = *window
	}
	w = max(1, min(w, maxWindow))

	events, err := s.repo.ListEvents(ctx, accountID,
		[]domain.ServerLoanAction{domain.ActionRepaySuccess, domain.ActionRepayFailure}, w*historyFactor)
	if err != nil {
		return 0, domain.AsUnexpected("failed to read repayment history", err)
	}

	var successes, failures []int64
	for _, e := range events {
		amount := e.Amount
		if amount < 0 {
			amount = -amount
		}
		switch {
		case e.Action == domain.ActionRepaySuccess && len(successes) < w:
			successes = append(successes, amount)
		case e.Action == domain.ActionRepayFailure && len(failures) < w:
			failures = append(failures, amount)
		}
	}

	limit := s.policy.MinLoanAmount
	switch {
	case len(failures) > 0:
		limit = failures[0]
		for _, f := range failures[1:] {
			limit = min(limit, f)
		}
	case len(successes) > 0:
		sum := decimal.Zero
		for _, a := range successes {
			sum = sum.Add(decimal.NewFromInt(a))
		}
		avg := sum.Div(decimal.NewFromInt(int64(len(successes))))
		limit = round(avg.Mul(decimal.NewFromInt(limitFactor)))
	}

	limit = max(s.policy.MinLoanAmount, min(limit, s.policy.MaxLoanAmount))
	return max(limit, 0), nil
}

// AddDailyInterest charges one day of interest on the current outstanding
// amount. Stopped and fully repaid loans are left alone.
func (s *Service) AddDailyInterest(ctx context.Context, accountID string) (_ *domain.ServerLoan, err error) {
	defer func() { s.observe("interest", err) }()

	unlock := s.locks.Lock(accountID)
	defer unlock()

	loan, err := s.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if loan.InterestStopped || loan.Outstanding <= 0 {
		return loan, nil
	}
	interest := round(decimal.NewFromInt(loan.Outstanding).Mul(s.policy.DailyInterestRate))
	if interest == 0 {
		return loan, nil
	}

	updated, err := s.repo.AddInterest(ctx, accountID, interest, s.now())
	if err != nil {
		return nil, domain.AsUnexpected("failed to add interest", err)
	}
	return updated, nil
}

func (s *Service) SetInterestStopped(ctx context.Context, accountID string, stopped bool) (*domain.ServerLoan, error) {
	loan, err := s.repo.SetInterestStopped(ctx, accountID, stopped, s.now())
	if err != nil {
		return nil, domain.AsUnexpected("failed to update server loan", err)
	}
	if loan == nil {
		return nil, domain.NotFound(domain.CodeServerLoanNotFound, "server loan not found")
	}
	return loan, nil
}

func (s *Service) SetPaymentAmount(ctx context.Context, accountID string, amount int64) (*domain.ServerLoan, error) {
	if amount <= 0 {
		return nil, domain.Validation(domain.CodeInvalidPaymentAmount, "payment amount must be positive")
	}
	loan, err := s.repo.SetPaymentAmount(ctx, accountID, amount, s.now())
	if err != nil {
		return nil, domain.AsUnexpected("failed to update server loan", err)
	}
	if loan == nil {
		return nil, domain.NotFound(domain.CodeServerLoanNotFound, "server loan not found")
	}
	return loan, nil
}

// ApplyDailyInterest charges interest on every outstanding loan.
func (s *Service) ApplyDailyInterest(ctx context.Context) error {
	return s.forEachOutstanding(ctx, "interest", func(ctx context.Context, accountID string) error {
		_, err := s.AddDailyInterest(ctx, accountID)
		return err
	})
}

// SweepRepayments collects the configured payment from every account that
// still owes money.
func (s *Service) SweepRepayments(ctx context.Context) error {
	return s.forEachOutstanding(ctx, "sweep", func(ctx context.Context, accountID string) error {
		_, err := s.Repay(ctx, accountID, nil)
		return err
	})
}

// forEachOutstanding runs fn for each indebted account with bounded
// parallelism. A failing account is logged and skipped. The returned error
// only summarizes how many accounts failed.
func (s *Service) forEachOutstanding(ctx context.Context, job string, fn func(ctx context.Context, accountID string) error) error {
	accounts, err := s.repo.ListOutstanding(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNothingApplied,
			domain.AsUnexpected("failed to list outstanding server loans", err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.policy.SweepConcurrency)

	failed := make(chan string, len(accounts))
	for _, accountID := range accounts {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := fn(gctx, accountID); err != nil {
				zap.L().Warn("server loan job skipped account",
					zap.String("job", job), zap.String("account", accountID), zap.Error(err))
				failed <- accountID
			}
			return nil
		})
	}
	_ = g.Wait()
	close(failed)

	zap.L().Info("server loan job finished",
		zap.String("job", job), zap.Int("accounts", len(accounts)), zap.Int("failed", len(failed)))
	if len(failed) > 0 {
		return fmt.Errorf("server loan %s: %d of %d accounts failed", job, len(failed), len(accounts))
	}
	return ctx.Err()
}
