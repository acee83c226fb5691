package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*DB, *TxManager, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), NewTXManager(mock), mock
}

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fnErr     error
		expectErr bool
	}{
		{
			name: "commits on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts`)).
					WithArgs("p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts`)).
					WithArgs("p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectRollback()
			},
			fnErr:     errors.New("insufficient funds"),
			expectErr: true,
		},
		{
			name: "begin fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(errors.New("pool closed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, txManager, mock := NewMock(t)
			tt.mockSetup(mock)

			err := txManager.Begin(context.Background(), func(ctx context.Context) error {
				assert.NotNil(t, txFromContext(ctx))
				if _, err := db.Exec(ctx, `UPDATE accounts SET balance = 0 WHERE id = $1`, "p1"); err != nil {
					return err
				}
				return tt.fnErr
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_NestedBeginJoinsOuter(t *testing.T) {
	_, txManager, mock := NewMock(t)
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectCommit()

	calls := 0
	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		return txManager.Begin(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_UsesPoolWithoutTx(t *testing.T) {
	db, _, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT balance FROM accounts`)).
		WithArgs("p1").
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(42)))

	var balance int64
	err := db.QueryRow(context.Background(), `SELECT balance FROM accounts WHERE id = $1`, "p1").Scan(&balance)

	require.NoError(t, err)
	assert.Equal(t, int64(42), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
