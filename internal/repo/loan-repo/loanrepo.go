package loanrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/pg"
)

const loanColumns = `id, lender_id, borrower_id, principal, repay_amount, outstanding, due_date,
	collateral, collateral_released, collateral_seized, created_at, updated_at`

// ErrLoanNotFound is returned by updates that matched no row.
var ErrLoanNotFound = errors.New("loan not found")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanLoan(row pgx.Row) (*domain.PeerLoan, error) {
	var l domain.PeerLoan
	err := row.Scan(&l.ID, &l.LenderID, &l.BorrowerID, &l.Principal, &l.RepayAmount, &l.Outstanding, &l.DueDate,
		&l.Collateral, &l.CollateralReleased, &l.CollateralSeized, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Create(ctx context.Context, loan *domain.PeerLoan) error {
	query := `
		INSERT INTO peer_loans (id, lender_id, borrower_id, principal, repay_amount, outstanding, due_date,
			collateral, collateral_released, collateral_seized, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, false, $9, $9)
	`
	_, err := r.db.Exec(ctx, query, loan.ID, loan.LenderID, loan.BorrowerID, loan.Principal, loan.RepayAmount,
		loan.Outstanding, loan.DueDate, loan.Collateral, loan.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create loan", zap.String("loan", loan.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.PeerLoan, error) {
	query := `SELECT ` + loanColumns + ` FROM peer_loans WHERE id = $1`

	loan, err := scanLoan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get loan", zap.String("loan", id), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM peer_loans WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete loan", zap.String("loan", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}
	return nil
}

func (r *Repository) update(ctx context.Context, query, id string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		zap.L().Error("failed to update loan", zap.String("loan", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}
	return nil
}

func (r *Repository) UpdateOutstanding(ctx context.Context, id string, outstanding int64, at time.Time) error {
	return r.update(ctx, `UPDATE peer_loans SET outstanding = $2, updated_at = $3 WHERE id = $1`, id, outstanding, at)
}

func (r *Repository) MarkCollateralReleased(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, `UPDATE peer_loans SET collateral_released = true, updated_at = $2 WHERE id = $1`, id, at)
}

// Seize settles the loan through its collateral: outstanding drops to zero
// and no money moves.
func (r *Repository) Seize(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, `UPDATE peer_loans SET outstanding = 0, collateral_seized = true, updated_at = $2 WHERE id = $1`, id, at)
}

func (r *Repository) ListByAccount(ctx context.Context, accountID string) ([]domain.PeerLoan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM peer_loans
		WHERE lender_id = $1 OR borrower_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to list loans", zap.String("account", accountID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.PeerLoan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			zap.L().Error("failed to scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, *loan)
	}
	return loans, rows.Err()
}
