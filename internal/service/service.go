package service

import (
	"github.com/GlebRadaev/gamebank/internal/handlers/cheques"
	"github.com/GlebRadaev/gamebank/internal/handlers/ledger"
	"github.com/GlebRadaev/gamebank/internal/handlers/loans"
	"github.com/GlebRadaev/gamebank/internal/handlers/serverloans"
	"github.com/GlebRadaev/gamebank/internal/metrics"
	"github.com/GlebRadaev/gamebank/internal/repo"
	"github.com/GlebRadaev/gamebank/internal/serial"
	"github.com/GlebRadaev/gamebank/internal/service/chequeservice"
	"github.com/GlebRadaev/gamebank/internal/service/ledgerservice"
	"github.com/GlebRadaev/gamebank/internal/service/loanservice"
	"github.com/GlebRadaev/gamebank/internal/service/serverloanservice"
)

// Deps are the runtime collaborators shared by the engines.
type Deps struct {
	Names       ledgerservice.NameResolver
	LedgerQueue serial.QueueI
	ChequeQueue serial.QueueI
	Policy      serverloanservice.Policy
	Metrics     metrics.Collector
}

type Services struct {
	LedgerService     ledger.Service
	ChequeService     cheques.Service
	LoanService       loans.Service
	ServerLoanService serverloans.Service
}

func New(repo *repo.Repositories, deps Deps) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, deps.Names, deps.LedgerQueue, deps.Metrics)
	chequeService := chequeservice.New(repo.ChequeRepo, deps.ChequeQueue, deps.Metrics)
	loanService := loanservice.New(repo.LoanRepo, ledgerService, deps.Names, deps.Metrics)
	serverLoanService := serverloanservice.New(repo.ServerLoanRepo, ledgerService, deps.Policy, deps.Metrics)

	return &Services{
		LedgerService:     ledgerService,
		ChequeService:     chequeService,
		LoanService:       loanService,
		ServerLoanService: serverLoanService,
	}
}
