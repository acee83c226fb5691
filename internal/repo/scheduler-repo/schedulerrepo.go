package schedulerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// LastRun returns the period key recorded for job, or "" when it never ran.
func (r *Repository) LastRun(ctx context.Context, job string) (string, error) {
	query := `SELECT period_key FROM scheduler_runs WHERE job = $1`

	var key string
	if err := r.db.QueryRow(ctx, query, job).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		zap.L().Error("failed to read scheduler run", zap.String("job", job), zap.Error(err))
		return "", err
	}
	return key, nil
}

func (r *Repository) SaveRun(ctx context.Context, job, periodKey string, at time.Time) error {
	query := `
		INSERT INTO scheduler_runs (job, period_key, ran_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job) DO UPDATE SET period_key = EXCLUDED.period_key, ran_at = EXCLUDED.ran_at
	`
	if _, err := r.db.Exec(ctx, query, job, periodKey, at); err != nil {
		zap.L().Error("failed to save scheduler run", zap.String("job", job), zap.Error(err))
		return err
	}
	return nil
}
