package loanservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/metrics"
	"github.com/GlebRadaev/gamebank/internal/serial"
)

//go:generate mockgen -source=loanservice.go -destination=mock_loanservice.go -package=loanservice

const movementSource = "peer_loan"

type Repo interface {
	Create(ctx context.Context, loan *domain.PeerLoan) error
	Get(ctx context.Context, id string) (*domain.PeerLoan, error)
	Delete(ctx context.Context, id string) error
	UpdateOutstanding(ctx context.Context, id string, outstanding int64, at time.Time) error
	MarkCollateralReleased(ctx context.Context, id string, at time.Time) error
	Seize(ctx context.Context, id string, at time.Time) error
	ListByAccount(ctx context.Context, accountID string) ([]domain.PeerLoan, error)
}

type Ledger interface {
	GetBalance(ctx context.Context, accountID string) (int64, error)
	Deposit(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)
	Withdraw(ctx context.Context, accountID string, amount int64, meta domain.MovementMeta) (int64, error)
}

type NameResolver interface {
	ResolveName(ctx context.Context, accountID string) (string, error)
}

type CreateLoanInput struct {
	LenderID    string
	BorrowerID  string
	Principal   int64
	RepayAmount int64
	DueDate     time.Time
	Collateral  string
}

type RepayOutcome string

const (
	OutcomeCollected        RepayOutcome = "COLLECTED"
	OutcomeRepaid           RepayOutcome = "REPAID"
	OutcomeCollateralSeized RepayOutcome = "COLLATERAL_SEIZED"
)

type RepayResult struct {
	Outcome    RepayOutcome
	Collected  int64
	Remaining  int64
	Collateral string
	Loan       *domain.PeerLoan
}

// Service moves money between players for peer loans. Every multi-step
// transfer undoes its earlier steps when a later one fails.
type Service struct {
	repo    Repo
	ledger  Ledger
	names   NameResolver
	metrics metrics.Collector
	locks   serial.KeyedMutex
	now     func() time.Time
}

func New(repo Repo, ledger Ledger, names NameResolver, collector metrics.Collector) *Service {
	if collector == nil {
		collector = metrics.NoOp{}
	}
	return &Service{
		repo:    repo,
		ledger:  ledger,
		names:   names,
		metrics: collector,
		now:     time.Now,
	}
}

func (s *Service) observe(op string, err error) {
	s.metrics.RecordOperation("peer_loan", op, domain.StatusOf(err).String())
}

func (s *Service) Create(ctx context.Context, in CreateLoanInput) (_ *domain.PeerLoan, err error) {
	defer func() { s.observe("create", err) }()

	if in.LenderID == "" || in.BorrowerID == "" {
		return nil, domain.Validation(domain.CodeInvalidInput, "lender and borrower are required")
	}
	if in.LenderID == in.BorrowerID {
		return nil, domain.Validation(domain.CodeSameAccount, "lender and borrower must differ")
	}
	if in.Principal <= 0 || in.RepayAmount <= 0 {
		return nil, domain.Validation(domain.CodeInvalidAmount, "amounts must be positive")
	}
	if in.RepayAmount < in.Principal {
		return nil, domain.Validation(domain.CodeInvalidAmount, "repay amount must not be below principal")
	}
	for _, id := range []string{in.LenderID, in.BorrowerID} {
		if _, err := s.names.ResolveName(ctx, id); err != nil {
			zap.L().Warn("failed to resolve loan party", zap.String("account", id), zap.Error(err))
			return nil, domain.PlayerNotFound(id, err)
		}
	}

	now := s.now()
	loan := &domain.PeerLoan{
		ID:          uuid.NewString(),
		LenderID:    in.LenderID,
		BorrowerID:  in.BorrowerID,
		Principal:   in.Principal,
		RepayAmount: in.RepayAmount,
		Outstanding: in.RepayAmount,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Collateral != "" {
		collateral := in.Collateral
		loan.Collateral = &collateral
	}

	// Once money starts moving the caller can no longer abandon the transfer
	// halfway.
	ctx = context.WithoutCancel(ctx)
	if _, err := s.ledger.Withdraw(ctx, in.LenderID, in.Principal, domain.MovementMeta{
		Source: movementSource, Note: "loan " + loan.ID + " to " + in.BorrowerID, DisplayNote: "Loan given",
	}); err != nil {
		return nil, err
	}

	refundLender := func() bool {
		return s.compensate(ctx, "refund lender", in.LenderID, in.Principal, loan.ID)
	}

	if err := s.repo.Create(ctx, loan); err != nil {
		zap.L().Error("failed to record loan", zap.String("loan", loan.ID), zap.Error(err))
		return nil, compensationError("failed to record loan", err, refundLender())
	}

	if _, err := s.ledger.Deposit(ctx, in.BorrowerID, in.Principal, domain.MovementMeta{
		Source: movementSource, Note: "loan " + loan.ID + " from " + in.LenderID, DisplayNote: "Loan received",
	}); err != nil {
		zap.L().Error("failed to pay out loan", zap.String("loan", loan.ID), zap.Error(err))
		ok := true
		if derr := s.repo.Delete(ctx, loan.ID); derr != nil {
			zap.L().Error("compensation failed: delete loan", zap.String("loan", loan.ID), zap.Error(derr))
			ok = false
		}
		ok = refundLender() && ok
		return nil, compensationError("failed to pay out loan", err, ok)
	}

	zap.L().Info("peer loan created", zap.String("loan", loan.ID),
		zap.String("lender", loan.LenderID), zap.String("borrower", loan.BorrowerID), zap.Int64("principal", loan.Principal))
	return loan, nil
}

func (s *Service) Repay(ctx context.Context, loanID, collectorID string) (_ *RepayResult, err error) {
	defer func() { s.observe("repay", err) }()

	if collectorID == "" {
		return nil, domain.Validation(domain.CodeInvalidInput, "collector is required")
	}

	unlock := s.locks.Lock(loanID)
	defer unlock()

	loan, err := s.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Settled() {
		return nil, domain.Conflict(domain.CodeLoanSettled, "loan is already settled")
	}
	if s.now().Before(loan.DueDate) {
		return nil, domain.Conflict(domain.CodeBeforePaybackDate, "loan is not due yet")
	}

	ctx = context.WithoutCancel(ctx)
	if loan.HasCollateral() {
		return s.repayWithCollateral(ctx, loan, collectorID)
	}

	balance, err := s.ledger.GetBalance(ctx, loan.BorrowerID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	amount := min(balance, loan.Outstanding)
	if amount <= 0 {
		return nil, domain.Validation(domain.CodeNothingToCollect, "nothing to collect")
	}
	if _, err := s.ledger.Withdraw(ctx, loan.BorrowerID, amount, s.repayMeta(loan, "Loan repayment")); err != nil {
		return nil, err
	}
	return s.settle(ctx, loan, collectorID, amount)
}

func (s *Service) repayWithCollateral(ctx context.Context, loan *domain.PeerLoan, collectorID string) (*RepayResult, error) {
	if loan.Outstanding <= 0 {
		return nil, domain.Validation(domain.CodeNothingToCollect, "nothing to collect")
	}

	_, err := s.ledger.Withdraw(ctx, loan.BorrowerID, loan.Outstanding, s.repayMeta(loan, "Loan repayment"))
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		at := s.now()
		if err := s.repo.Seize(ctx, loan.ID, at); err != nil {
			zap.L().Error("failed to seize collateral", zap.String("loan", loan.ID), zap.Error(err))
			return nil, domain.AsUnexpected("failed to seize collateral", err)
		}
		loan.Outstanding = 0
		loan.CollateralSeized = true
		loan.UpdatedAt = at
		zap.L().Info("collateral seized", zap.String("loan", loan.ID), zap.String("collateral", *loan.Collateral))
		return &RepayResult{
			Outcome:    OutcomeCollateralSeized,
			Collateral: *loan.Collateral,
			Loan:       loan,
		}, nil
	case err != nil:
		return nil, err
	}
	return s.settle(ctx, loan, collectorID, loan.Outstanding)
}

// settle books amount, already withdrawn from the borrower, against the loan
// and hands it to the collector.
func (s *Service) settle(ctx context.Context, loan *domain.PeerLoan, collectorID string, amount int64) (*RepayResult, error) {
	previous := loan.Outstanding
	remaining := previous - amount
	at := s.now()

	refundBorrower := func() bool {
		return s.compensate(ctx, "refund borrower", loan.BorrowerID, amount, loan.ID)
	}

	if err := s.repo.UpdateOutstanding(ctx, loan.ID, remaining, at); err != nil {
		zap.L().Error("failed to reduce loan outstanding", zap.String("loan", loan.ID), zap.Error(err))
		return nil, compensationError("failed to update loan", err, refundBorrower())
	}

	if _, err := s.ledger.Deposit(ctx, collectorID, amount, s.repayMeta(loan, "Loan collected")); err != nil {
		zap.L().Error("failed to pay collector", zap.String("loan", loan.ID), zap.Error(err))
		ok := true
		if rerr := s.repo.UpdateOutstanding(ctx, loan.ID, previous, s.now()); rerr != nil {
			zap.L().Error("compensation failed: restore outstanding", zap.String("loan", loan.ID), zap.Error(rerr))
			ok = false
		}
		ok = refundBorrower() && ok
		return nil, compensationError("failed to pay collector", err, ok)
	}

	loan.Outstanding = remaining
	loan.UpdatedAt = at
	outcome := OutcomeCollected
	if remaining == 0 {
		outcome = OutcomeRepaid
	}
	return &RepayResult{
		Outcome:   outcome,
		Collected: amount,
		Remaining: remaining,
		Loan:      loan,
	}, nil
}

func (s *Service) ReleaseCollateral(ctx context.Context, loanID, borrowerID string) (_ *domain.PeerLoan, err error) {
	defer func() { s.observe("release_collateral", err) }()

	unlock := s.locks.Lock(loanID)
	defer unlock()

	loan, err := s.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	switch {
	case loan.BorrowerID != borrowerID:
		return nil, domain.Validation(domain.CodeNotBorrower, "only the borrower can release collateral")
	case loan.Outstanding > 0:
		return nil, domain.Conflict(domain.CodeLoanNotRepaid, "loan is not repaid yet")
	case !loan.HasCollateral():
		return nil, domain.Conflict(domain.CodeNoCollateral, "loan has no collateral")
	case loan.CollateralReleased:
		return nil, domain.Conflict(domain.CodeCollateralReleased, "collateral already released")
	case loan.CollateralSeized:
		return nil, domain.Conflict(domain.CodeCollateralSeized, "collateral was seized")
	}

	at := s.now()
	if err := s.repo.MarkCollateralReleased(ctx, loan.ID, at); err != nil {
		return nil, domain.AsUnexpected("failed to release collateral", err)
	}
	loan.CollateralReleased = true
	loan.UpdatedAt = at
	return loan, nil
}

func (s *Service) Get(ctx context.Context, loanID string) (*domain.PeerLoan, error) {
	return s.load(ctx, loanID)
}

func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]domain.PeerLoan, error) {
	loans, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, domain.AsUnexpected("failed to list loans", err)
	}
	return loans, nil
}

func (s *Service) load(ctx context.Context, loanID string) (*domain.PeerLoan, error) {
	if _, err := uuid.Parse(loanID); err != nil {
		return nil, domain.NotFound(domain.CodeLoanNotFound, "loan not found")
	}
	loan, err := s.repo.Get(ctx, loanID)
	if err != nil {
		return nil, domain.AsUnexpected("failed to get loan", err)
	}
	if loan == nil {
		return nil, domain.NotFound(domain.CodeLoanNotFound, "loan not found")
	}
	return loan, nil
}

func (s *Service) repayMeta(loan *domain.PeerLoan, display string) domain.MovementMeta {
	return domain.MovementMeta{Source: movementSource, Note: "loan " + loan.ID, DisplayNote: display}
}

// compensate puts amount back on accountID and reports whether it worked.
func (s *Service) compensate(ctx context.Context, step, accountID string, amount int64, loanID string) bool {
	_, err := s.ledger.Deposit(ctx, accountID, amount, domain.MovementMeta{
		Source: movementSource, Note: "loan " + loanID + " " + step, DisplayNote: "Loan refund",
	})
	if err != nil {
		zap.L().Error("compensation failed: "+step,
			zap.String("loan", loanID), zap.String("account", accountID), zap.Int64("amount", amount), zap.Error(err))
		return false
	}
	return true
}

func compensationError(msg string, cause error, compensated bool) error {
	if compensated {
		return domain.Unexpected(domain.CodeCompensated, msg+", transfer reverted", cause)
	}
	return domain.Unexpected(domain.CodeCompensationFailed, msg+", revert incomplete", cause)
}
