package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamebank/internal/repo"
	"github.com/GlebRadaev/gamebank/internal/scheduler"
	"github.com/GlebRadaev/gamebank/internal/serial"
	"github.com/GlebRadaev/gamebank/internal/service/chequeservice"
	"github.com/GlebRadaev/gamebank/internal/service/ledgerservice"
	"github.com/GlebRadaev/gamebank/internal/service/loanservice"
	"github.com/GlebRadaev/gamebank/internal/service/serverloanservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		AccountRepo:    ledgerservice.NewMockRepo(ctrl),
		ChequeRepo:     chequeservice.NewMockRepo(ctrl),
		LoanRepo:       loanservice.NewMockRepo(ctrl),
		ServerLoanRepo: serverloanservice.NewMockRepo(ctrl),
		SchedulerRuns:  scheduler.NewMemoryStore(),
	}

	services := New(repos, Deps{
		Names:       ledgerservice.NewMockNameResolver(ctrl),
		LedgerQueue: serial.New("ledger", nil),
		ChequeQueue: serial.New("cheque", nil),
		Policy: serverloanservice.Policy{
			DailyInterestRate: decimal.RequireFromString("0.001"),
			MinLoanAmount:     1000,
			MaxLoanAmount:     100000,
		},
	})

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.ChequeService)
	assert.NotNil(t, services.LoanService)
	assert.NotNil(t, services.ServerLoanService)
	assert.IsType(t, &ledgerservice.Service{}, services.LedgerService)
	assert.IsType(t, &serverloanservice.Service{}, services.ServerLoanService)
}
