package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/pg"
)

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

func (r *Repository) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT id, name, balance, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, accountID).
		Scan(&account.ID, &account.Name, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.String("account", accountID), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// ApplyMovement creates the account if needed, shifts its balance by
// movement.Delta and appends the movement, all in one transaction. A delta
// that would leave the balance negative changes nothing.
func (r *Repository) ApplyMovement(ctx context.Context, name string, movement *domain.MoneyMovement) (*domain.Account, error) {
	insertAccount := `
		INSERT INTO accounts (id, name, balance, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3)
		ON CONFLICT (id) DO NOTHING
	`
	updateBalance := `
		UPDATE accounts
		SET balance = balance + $2, updated_at = $3
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING id, name, balance, created_at, updated_at
	`
	insertMovement := `
		INSERT INTO money_movements (account_id, delta, deposit, source, note, display_note, origin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var account domain.Account
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, insertAccount, movement.AccountID, name, movement.CreatedAt); err != nil {
			zap.L().Error("failed to create account", zap.String("account", movement.AccountID), zap.Error(err))
			return err
		}

		err := r.db.QueryRow(ctx, updateBalance, movement.AccountID, movement.Delta, movement.CreatedAt).
			Scan(&account.ID, &account.Name, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.InsufficientFunds("balance would become negative")
			}
			zap.L().Error("failed to update balance", zap.String("account", movement.AccountID), zap.Error(err))
			return err
		}

		err = r.db.QueryRow(ctx, insertMovement,
			movement.AccountID, movement.Delta, movement.Deposit, movement.Source,
			movement.Note, movement.DisplayNote, movement.Origin, movement.CreatedAt,
		).Scan(&movement.ID)
		if err != nil {
			zap.L().Error("failed to append money movement", zap.String("account", movement.AccountID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) ListMovements(ctx context.Context, accountID string, limit int) ([]domain.MoneyMovement, error) {
	query := `
		SELECT id, account_id, delta, deposit, source, note, display_note, origin, created_at
		FROM money_movements
		WHERE account_id = $1
		ORDER BY id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch money movements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var movements []domain.MoneyMovement
	for rows.Next() {
		var m domain.MoneyMovement
		err := rows.Scan(&m.ID, &m.AccountID, &m.Delta, &m.Deposit, &m.Source, &m.Note, &m.DisplayNote, &m.Origin, &m.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan money movement row", zap.Error(err))
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
