package serverloanrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/pg"
)

const loanColumns = `account_id, outstanding, payment_amount, last_paid_at, failed_payments, interest_stopped, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanLoan(row pgx.Row) (*domain.ServerLoan, error) {
	var l domain.ServerLoan
	err := row.Scan(&l.AccountID, &l.Outstanding, &l.PaymentAmount, &l.LastPaidAt, &l.FailedPayments,
		&l.InterestStopped, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Get(ctx context.Context, accountID string) (*domain.ServerLoan, error) {
	query := `SELECT ` + loanColumns + ` FROM server_loans WHERE account_id = $1`

	loan, err := scanLoan(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get server loan", zap.String("account", accountID), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) appendEvent(ctx context.Context, accountID string, action domain.ServerLoanAction, amount int64, at time.Time) error {
	query := `
		INSERT INTO server_loan_events (account_id, action, amount, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, accountID, string(action), amount, at); err != nil {
		zap.L().Error("failed to append server loan event",
			zap.String("account", accountID), zap.String("action", string(action)), zap.Error(err))
		return err
	}
	return nil
}

// mutate runs an UPDATE ... RETURNING against the loan row and appends the
// matching event in the same transaction.
func (r *Repository) mutate(ctx context.Context, query string, args []any, action domain.ServerLoanAction, amount int64, at time.Time) (*domain.ServerLoan, error) {
	accountID := args[0].(string)

	var loan *domain.ServerLoan
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		loan, err = scanLoan(r.db.QueryRow(ctx, query, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFound(domain.CodeServerLoanNotFound, "server loan not found")
			}
			zap.L().Error("failed to update server loan",
				zap.String("account", accountID), zap.String("action", string(action)), zap.Error(err))
			return err
		}
		return r.appendEvent(ctx, accountID, action, amount, at)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Borrow creates the loan row on first use or raises its outstanding amount.
// paymentAmount only applies when the row has no payment amount yet.
func (r *Repository) Borrow(ctx context.Context, accountID string, amount, paymentAmount int64, at time.Time) (*domain.ServerLoan, error) {
	query := `
		INSERT INTO server_loans (account_id, outstanding, payment_amount, failed_payments, interest_stopped, created_at, updated_at)
		VALUES ($1, $2, $3, 0, false, $4, $4)
		ON CONFLICT (account_id) DO UPDATE
		SET outstanding = server_loans.outstanding + EXCLUDED.outstanding,
			payment_amount = CASE WHEN server_loans.payment_amount > 0 THEN server_loans.payment_amount ELSE EXCLUDED.payment_amount END,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + loanColumns
	return r.mutate(ctx, query, []any{accountID, amount, paymentAmount, at}, domain.ActionBorrow, amount, at)
}

func (r *Repository) RecordRepaySuccess(ctx context.Context, accountID string, amount int64, at time.Time) (*domain.ServerLoan, error) {
	query := `
		UPDATE server_loans
		SET outstanding = outstanding - $2, failed_payments = 0, last_paid_at = $3, updated_at = $3
		WHERE account_id = $1
		RETURNING ` + loanColumns
	return r.mutate(ctx, query, []any{accountID, amount, at}, domain.ActionRepaySuccess, -amount, at)
}

func (r *Repository) RecordRepayFailure(ctx context.Context, accountID string, amount int64, at time.Time) (*domain.ServerLoan, error) {
	query := `
		UPDATE server_loans
		SET failed_payments = failed_payments + 1, updated_at = $2
		WHERE account_id = $1
		RETURNING ` + loanColumns
	return r.mutate(ctx, query, []any{accountID, at}, domain.ActionRepayFailure, -amount, at)
}

func (r *Repository) AddInterest(ctx context.Context, accountID string, interest int64, at time.Time) (*domain.ServerLoan, error) {
	query := `
		UPDATE server_loans
		SET outstanding = outstanding + $2, updated_at = $3
		WHERE account_id = $1
		RETURNING ` + loanColumns
	return r.mutate(ctx, query, []any{accountID, interest, at}, domain.ActionInterest, interest, at)
}

func (r *Repository) setField(ctx context.Context, query, accountID string, value any, at time.Time) (*domain.ServerLoan, error) {
	loan, err := scanLoan(r.db.QueryRow(ctx, query, accountID, value, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update server loan settings", zap.String("account", accountID), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) SetInterestStopped(ctx context.Context, accountID string, stopped bool, at time.Time) (*domain.ServerLoan, error) {
	query := `
		UPDATE server_loans SET interest_stopped = $2, updated_at = $3
		WHERE account_id = $1
		RETURNING ` + loanColumns
	return r.setField(ctx, query, accountID, stopped, at)
}

func (r *Repository) SetPaymentAmount(ctx context.Context, accountID string, amount int64, at time.Time) (*domain.ServerLoan, error) {
	query := `
		UPDATE server_loans SET payment_amount = $2, updated_at = $3
		WHERE account_id = $1
		RETURNING ` + loanColumns
	return r.setField(ctx, query, accountID, amount, at)
}

// ListEvents returns the newest events of the given actions first.
func (r *Repository) ListEvents(ctx context.Context, accountID string, actions []domain.ServerLoanAction, limit int) ([]domain.ServerLoanEvent, error) {
	query := `
		SELECT id, account_id, action, amount, created_at
		FROM server_loan_events
		WHERE account_id = $1 AND action = ANY($2)
		ORDER BY id DESC
		LIMIT $3
	`
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}

	rows, err := r.db.Query(ctx, query, accountID, names, limit)
	if err != nil {
		zap.L().Error("failed to list server loan events", zap.String("account", accountID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.ServerLoanEvent
	for rows.Next() {
		var e domain.ServerLoanEvent
		var action string
		if err := rows.Scan(&e.ID, &e.AccountID, &action, &e.Amount, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan server loan event row", zap.Error(err))
			return nil, err
		}
		e.Action = domain.ServerLoanAction(action)
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListOutstanding returns the accounts that currently owe the server money.
func (r *Repository) ListOutstanding(ctx context.Context) ([]string, error) {
	query := `
		SELECT account_id
		FROM server_loans
		WHERE outstanding > 0
		ORDER BY account_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list outstanding server loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan server loan account", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, id)
	}
	return accounts, rows.Err()
}
