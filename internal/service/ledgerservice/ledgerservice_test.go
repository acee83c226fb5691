package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamebank/internal/domain"
	"github.com/GlebRadaev/gamebank/internal/serial"
)

var atm = domain.MovementMeta{Source: "atm", Note: "cash", DisplayNote: "ATM", Origin: "plugin"}

func startQueue(t *testing.T) *serial.Queue {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	queue := serial.New("ledger", nil)
	queue.Start(ctx)
	return queue
}

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNameResolver) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	names := NewMockNameResolver(ctrl)
	service := New(repo, names, startQueue(t), nil)
	return service, repo, names
}

func TestDeposit(t *testing.T) {
	existing := &domain.Account{ID: "p1", Name: "Steve", Balance: 100}

	tests := []struct {
		name        string
		accountID   string
		amount      int64
		prepareMock func(repo *MockRepo, names *MockNameResolver)
		wantBalance int64
		wantErr     error
		wantCode    domain.Code
	}{
		{
			name:      "Zero amount is rejected before any lookup",
			accountID: "p1",
			amount:    0,
			wantErr:   domain.ErrValidation,
			wantCode:  domain.CodeInvalidAmount,
		},
		{
			name:      "Missing account id",
			accountID: "",
			amount:    10,
			wantErr:   domain.ErrValidation,
			wantCode:  domain.CodeInvalidInput,
		},
		{
			name:      "Existing account keeps its name",
			accountID: "p1",
			amount:    50,
			prepareMock: func(repo *MockRepo, _ *MockNameResolver) {
				repo.EXPECT().GetAccount(gomock.Any(), "p1").Return(existing, nil)
				repo.EXPECT().ApplyMovement(gomock.Any(), "Steve", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, m *domain.MoneyMovement) (*domain.Account, error) {
						assert.Equal(t, int64(50), m.Delta)
						assert.True(t, m.Deposit)
						assert.Equal(t, "atm", m.Source)
						assert.Equal(t, "plugin", m.Origin)
						return &domain.Account{ID: "p1", Balance: 150}, nil
					})
			},
			wantBalance: 150,
		},
		{
			name:      "New account is stamped with the resolved name",
			accountID: "p2",
			amount:    500,
			prepareMock: func(repo *MockRepo, names *MockNameResolver) {
				repo.EXPECT().GetAccount(gomock.Any(), "p2").Return(nil, nil)
				names.EXPECT().ResolveName(gomock.Any(), "p2").Return("Alex", nil)
				repo.EXPECT().ApplyMovement(gomock.Any(), "Alex", gomock.Any()).
					Return(&domain.Account{ID: "p2", Name: "Alex", Balance: 500}, nil)
			},
			wantBalance: 500,
		},
		{
			name:      "Unresolvable player",
			accountID: "p3",
			amount:    500,
			prepareMock: func(repo *MockRepo, names *MockNameResolver) {
				repo.EXPECT().GetAccount(gomock.Any(), "p3").Return(nil, nil)
				names.EXPECT().ResolveName(gomock.Any(), "p3").Return("", errors.New("timeout"))
			},
			wantErr:  domain.ErrPlayerNotFound,
			wantCode: domain.CodePlayerNotFound,
		},
		{
			name:      "Store failure",
			accountID: "p1",
			amount:    50,
			prepareMock: func(repo *MockRepo, _ *MockNameResolver) {
				repo.EXPECT().GetAccount(gomock.Any(), "p1").Return(existing, nil)
				repo.EXPECT().ApplyMovement(gomock.Any(), "Steve", gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr:  domain.ErrUnexpected,
			wantCode: domain.CodeStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, names := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo, names)
			}

			balance, err := service.Deposit(context.Background(), tt.accountID, tt.amount, atm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, domain.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, balance)
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, repo, _ := NewMock(t)
	account := &domain.Account{ID: "p1", Name: "Steve", Balance: 100}

	repo.EXPECT().GetAccount(gomock.Any(), "p1").Return(account, nil).Times(2)
	repo.EXPECT().ApplyMovement(gomock.Any(), "Steve", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, m *domain.MoneyMovement) (*domain.Account, error) {
			assert.Equal(t, int64(-40), m.Delta)
			assert.False(t, m.Deposit)
			return &domain.Account{ID: "p1", Balance: 60}, nil
		})
	repo.EXPECT().ApplyMovement(gomock.Any(), "Steve", gomock.Any()).
		Return(nil, domain.InsufficientFunds("balance would become negative"))

	balance, err := service.Withdraw(context.Background(), "p1", 40, atm)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	_, err = service.Withdraw(context.Background(), "p1", 100, atm)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, domain.StatusConflict, domain.StatusOf(err))

	_, err = service.Withdraw(context.Background(), "p1", -5, atm)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetBalance(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().GetAccount(gomock.Any(), "p1").Return(&domain.Account{ID: "p1", Balance: 42}, nil)
	repo.EXPECT().GetAccount(gomock.Any(), "p2").Return(nil, nil)
	repo.EXPECT().GetAccount(gomock.Any(), "p3").Return(nil, errors.New("db error"))

	balance, err := service.GetBalance(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance)

	_, err = service.GetBalance(context.Background(), "p2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeAccountNotFound, domain.CodeOf(err))

	_, err = service.GetBalance(context.Background(), "p3")
	assert.Equal(t, domain.StatusInternalError, domain.StatusOf(err))
}

func TestMovements(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: DefaultMovementsLimit},
		{name: "custom", limit: 10, want: 10},
		{name: "capped", limit: 5000, want: MaxMovementsLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			repo.EXPECT().ListMovements(gomock.Any(), "p1", tt.want).Return([]domain.MoneyMovement{{ID: 1}}, nil)

			movements, err := service.Movements(context.Background(), "p1", tt.limit)

			require.NoError(t, err)
			assert.Len(t, movements, 1)
		})
	}
}

func TestDepositAfterQueueClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	queue := serial.New("ledger", nil)
	queue.Start(ctx)
	cancel()
	<-queue.Done()

	service := New(repo, nil, queue, nil)
	repo.EXPECT().GetAccount(gomock.Any(), "p1").Return(&domain.Account{ID: "p1", Name: "Steve"}, nil)

	_, err := service.Deposit(context.Background(), "p1", 10, atm)

	assert.ErrorIs(t, err, domain.ErrUnexpected)
	assert.Equal(t, domain.CodeQueueUnavailable, domain.CodeOf(err))
}

// memRepo is an in-memory Repo that fails the test if two movements are ever
// applied at the same time.
type memRepo struct {
	t        *testing.T
	mu       sync.Mutex
	accounts map[string]*domain.Account
	log      []domain.MoneyMovement
	inFlight int32
}

func newMemRepo(t *testing.T) *memRepo {
	return &memRepo{t: t, accounts: make(map[string]*domain.Account)}
}

func (r *memRepo) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[accountID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memRepo) ApplyMovement(_ context.Context, name string, m *domain.MoneyMovement) (*domain.Account, error) {
	if atomic.AddInt32(&r.inFlight, 1) != 1 {
		r.t.Error("two movements applied concurrently")
	}
	defer atomic.AddInt32(&r.inFlight, -1)

	r.mu.Lock()
	current, ok := r.accounts[m.AccountID]
	r.mu.Unlock()

	balance := int64(0)
	if ok {
		balance = current.Balance
	}
	// Widen the read-modify-write window so lost updates would show up.
	time.Sleep(50 * time.Microsecond)
	if balance+m.Delta < 0 {
		return nil, domain.InsufficientFunds("balance would become negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !ok {
		current = &domain.Account{ID: m.AccountID, Name: name}
		r.accounts[m.AccountID] = current
	}
	current.Balance = balance + m.Delta
	m.ID = int64(len(r.log) + 1)
	r.log = append(r.log, *m)
	cp := *current
	return &cp, nil
}

func (r *memRepo) ListMovements(_ context.Context, accountID string, limit int) ([]domain.MoneyMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.MoneyMovement
	for i := len(r.log) - 1; i >= 0 && len(out) < limit; i-- {
		if r.log[i].AccountID == accountID {
			out = append(out, r.log[i])
		}
	}
	return out, nil
}

type staticNames struct{}

func (staticNames) ResolveName(_ context.Context, accountID string) (string, error) {
	return "player-" + accountID, nil
}

func TestLedger_BalanceEqualsSumOfMovements(t *testing.T) {
	repo := newMemRepo(t)
	service := New(repo, staticNames{}, startQueue(t), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			account := []string{"a", "b", "c"}[i%3]
			amount := int64(i%17 + 1)
			if i%4 == 0 {
				_, _ = service.Withdraw(ctx, account, amount*3, atm)
				return
			}
			_, _ = service.Deposit(ctx, account, amount, atm)
		}(i)
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c"} {
		balance, err := service.GetBalance(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, balance, int64(0))

		movements, err := service.Movements(ctx, id, MaxMovementsLimit)
		require.NoError(t, err)
		var sum int64
		for _, m := range movements {
			sum += m.Delta
			assert.Equal(t, m.Delta >= 0, m.Deposit)
		}
		assert.Equal(t, sum, balance, "account %s", id)
	}
}

func TestLedger_ConcurrentWithdrawalsSucceedInEnqueueOrder(t *testing.T) {
	repo := newMemRepo(t)
	queue := startQueue(t)
	service := New(repo, staticNames{}, queue, nil)
	ctx := context.Background()

	_, err := service.Deposit(ctx, "p1", 100, atm)
	require.NoError(t, err)

	// Hold the worker so every withdrawal below is queued before any runs.
	started, release := make(chan struct{}), make(chan struct{})
	go func() {
		_ = queue.Do(ctx, func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	amounts := []int64{30, 50, 40, 20}
	results := make([]error, len(amounts))
	var wg sync.WaitGroup
	for i, amount := range amounts {
		wg.Add(1)
		go func(i int, amount int64) {
			defer wg.Done()
			_, results[i] = service.Withdraw(ctx, "p1", amount, atm)
		}(i, amount)
		require.Eventually(t, func() bool { return queue.Len() == i+1 }, time.Second, time.Millisecond)
	}
	close(release)
	wg.Wait()

	assert.NoError(t, results[0])
	assert.NoError(t, results[1])
	assert.ErrorIs(t, results[2], domain.ErrInsufficientFunds)
	assert.NoError(t, results[3])

	balance, err := service.GetBalance(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestLedger_DepositThenOverdraw(t *testing.T) {
	service := New(newMemRepo(t), staticNames{}, startQueue(t), nil)
	ctx := context.Background()

	balance, err := service.Deposit(ctx, "p1", 500, atm)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	_, err = service.Withdraw(ctx, "p1", 600, atm)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	balance, err = service.GetBalance(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
}
