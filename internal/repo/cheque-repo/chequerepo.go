package chequerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/pg"
)

const chequeColumns = `id, issuer_id, amount, note, used, redeemer_id, redeemed_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCheque(row pgx.Row) (*domain.Cheque, error) {
	var c domain.Cheque
	err := row.Scan(&c.ID, &c.IssuerID, &c.Amount, &c.Note, &c.Used, &c.RedeemerID, &c.RedeemedAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create stores a new cheque. It reports false without error when the
// number is already taken so the caller can draw another one.
func (r *Repository) Create(ctx context.Context, cheque *domain.Cheque) (bool, error) {
	query := `
		INSERT INTO cheques (id, issuer_id, amount, note, used, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, cheque.ID, cheque.IssuerID, cheque.Amount, cheque.Note, cheque.CreatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("failed to create cheque", zap.String("issuer", cheque.IssuerID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE id = $1`

	cheque, err := scanCheque(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get cheque", zap.String("cheque", id), zap.Error(err))
		return nil, err
	}
	return cheque, nil
}

// MarkUsed flips an unused cheque to used. It returns nil when the cheque
// is missing or was already used.
func (r *Repository) MarkUsed(ctx context.Context, id, redeemerID string, at time.Time) (*domain.Cheque, error) {
	query := `
		UPDATE cheques
		SET used = true, redeemer_id = $2, redeemed_at = $3
		WHERE id = $1 AND used = false
		RETURNING ` + chequeColumns

	cheque, err := scanCheque(r.db.QueryRow(ctx, query, id, redeemerID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to redeem cheque", zap.String("cheque", id), zap.Error(err))
		return nil, err
	}
	return cheque, nil
}

func (r *Repository) ListByIssuer(ctx context.Context, issuerID string, limit int) ([]domain.Cheque, error) {
	query := `
		SELECT ` + chequeColumns + `
		FROM cheques
		WHERE issuer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, issuerID, limit)
	if err != nil {
		zap.L().Error("failed to list cheques", zap.String("issuer", issuerID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cheques []domain.Cheque
	for rows.Next() {
		cheque, err := scanCheque(rows)
		if err != nil {
			zap.L().Error("failed to scan cheque row", zap.Error(err))
			return nil, err
		}
		cheques = append(cheques, *cheque)
	}
	return cheques, rows.Err()
}
