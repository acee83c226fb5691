package schedulerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_LastRun(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      string
		expectErr bool
	}{
		{
			name: "Recorded run",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT period_key FROM scheduler_runs WHERE job = $1`)).
					WithArgs("server-loan-interest").
					WillReturnRows(pgxmock.NewRows([]string{"period_key"}).AddRow("2024-05-01"))
			},
			want: "2024-05-01",
		},
		{
			name: "Never ran",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM scheduler_runs`)).
					WithArgs("server-loan-interest").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM scheduler_runs`)).
					WithArgs("server-loan-interest").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			key, err := repo.LastRun(context.Background(), "server-loan-interest")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, key)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SaveRun(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 0, 1, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (job) DO UPDATE`)).
		WithArgs("server-loan-interest", "2024-05-01", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveRun(context.Background(), "server-loan-interest", "2024-05-01", now)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
