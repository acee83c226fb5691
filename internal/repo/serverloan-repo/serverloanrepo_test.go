package serverloanrepo

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
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

var columns = []string{"account_id", "outstanding", "payment_amount", "last_paid_at", "failed_payments", "interest_stopped", "created_at", "updated_at"}

func loanRow(outstanding, payment int64, failed int, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow("p1", outstanding, payment, nil, failed, false, now, now)
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM server_loans WHERE account_id = $1`)).
		WithArgs("p1").
		WillReturnRows(loanRow(1000, 7, 0, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM server_loans WHERE account_id = $1`)).
		WithArgs("p2").
		WillReturnError(pgx.ErrNoRows)

	loan, err := repo.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), loan.Outstanding)
	assert.Nil(t, loan.LastPaidAt)

	loan, err = repo.Get(context.Background(), "p2")
	assert.NoError(t, err)
	assert.Nil(t, loan)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Mutations(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		query       string
		args        []any
		action      domain.ServerLoanAction
		eventAmount int64
		call        func(repo *Repository) (*domain.ServerLoan, error)
		row         *pgxmock.Rows
		want        int64
	}{
		{
			name:        "Borrow upserts and appends borrow event",
			query:       `ON CONFLICT (account_id) DO UPDATE`,
			args:        []any{"p1", int64(1000), int64(7), now},
			action:      domain.ActionBorrow,
			eventAmount: 1000,
			call: func(repo *Repository) (*domain.ServerLoan, error) {
				return repo.Borrow(context.Background(), "p1", 1000, 7, now)
			},
			row:  loanRow(1000, 7, 0, now),
			want: 1000,
		},
		{
			name:        "Repay success lowers outstanding",
			query:       `SET outstanding = outstanding - $2, failed_payments = 0`,
			args:        []any{"p1", int64(300), now},
			action:      domain.ActionRepaySuccess,
			eventAmount: -300,
			call: func(repo *Repository) (*domain.ServerLoan, error) {
				return repo.RecordRepaySuccess(context.Background(), "p1", 300, now)
			},
			row:  loanRow(700, 7, 0, now),
			want: 700,
		},
		{
			name:        "Repay failure counts the attempt",
			query:       `SET failed_payments = failed_payments + 1`,
			args:        []any{"p1", now},
			action:      domain.ActionRepayFailure,
			eventAmount: -300,
			call: func(repo *Repository) (*domain.ServerLoan, error) {
				return repo.RecordRepayFailure(context.Background(), "p1", 300, now)
			},
			row:  loanRow(1000, 7, 1, now),
			want: 1000,
		},
		{
			name:        "Interest raises outstanding",
			query:       `SET outstanding = outstanding + $2`,
			args:        []any{"p1", int64(1), now},
			action:      domain.ActionInterest,
			eventAmount: 1,
			call: func(repo *Repository) (*domain.ServerLoan, error) {
				return repo.AddInterest(context.Background(), "p1", 1, now)
			},
			row:  loanRow(1001, 7, 0, now),
			want: 1001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, txManager := NewMock(t)
			passThroughTx(txManager)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnRows(tt.row)
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO server_loan_events`)).
				WithArgs("p1", string(tt.action), tt.eventAmount, now).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))

			loan, err := tt.call(repo)

			require.NoError(t, err)
			assert.Equal(t, tt.want, loan.Outstanding)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MutationErrors(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Missing loan", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE server_loans`)).
			WithArgs("p1", int64(5), now).
			WillReturnError(pgx.ErrNoRows)

		loan, err := repo.AddInterest(context.Background(), "p1", 5, now)

		assert.Nil(t, loan)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Event insert failure", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (account_id) DO UPDATE`)).
			WithArgs("p1", int64(1000), int64(7), now).
			WillReturnRows(loanRow(1000, 7, 0, now))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO server_loan_events`)).
			WithArgs("p1", "BORROW", int64(1000), now).
			WillReturnError(errors.New("database error"))

		loan, err := repo.Borrow(context.Background(), "p1", 1000, 7, now)

		assert.Nil(t, loan)
		assert.EqualError(t, err, "database error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Settings(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SET interest_stopped = $2`)).
		WithArgs("p1", true, now).
		WillReturnRows(pgxmock.NewRows(columns).AddRow("p1", int64(1000), int64(7), nil, 0, true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SET payment_amount = $2`)).
		WithArgs("p2", int64(50), now).
		WillReturnError(pgx.ErrNoRows)

	loan, err := repo.SetInterestStopped(context.Background(), "p1", true, now)
	require.NoError(t, err)
	assert.True(t, loan.InterestStopped)

	loan, err = repo.SetPaymentAmount(context.Background(), "p2", 50, now)
	assert.NoError(t, err)
	assert.Nil(t, loan)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListEvents(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE account_id = $1 AND action = ANY($2)`)).
		WithArgs("p1", []string{"REPAY_SUCCESS", "REPAY_FAILURE"}, 200).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "action", "amount", "created_at"}).
			AddRow(int64(3), "p1", "REPAY_FAILURE", int64(-70), now).
			AddRow(int64(2), "p1", "REPAY_SUCCESS", int64(-50), now))

	events, err := repo.ListEvents(context.Background(), "p1",
		[]domain.ServerLoanAction{domain.ActionRepaySuccess, domain.ActionRepayFailure}, 200)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionRepayFailure, events[0].Action)
	assert.Equal(t, int64(-50), events[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOutstanding(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE outstanding > 0`)).
		WillReturnRows(pgxmock.NewRows([]string{"account_id"}).AddRow("p1").AddRow("p2"))

	accounts, err := repo.ListOutstanding(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
