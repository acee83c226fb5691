package repo

import (
	"github.com/GlebRadaev/gamebank/internal/pg"
	accountrepo "github.com/GlebRadaev/gamebank/internal/repo/account-repo"
	chequerepo "github.com/GlebRadaev/gamebank/internal/repo/cheque-repo"
	loanrepo "github.com/GlebRadaev/gamebank/internal/repo/loan-repo"
	schedulerrepo "github.com/GlebRadaev/gamebank/internal/repo/scheduler-repo"
	serverloanrepo "github.com/GlebRadaev/gamebank/internal/repo/serverloan-repo"
	"github.com/GlebRadaev/gamebank/internal/scheduler"
	"github.com/GlebRadaev/gamebank/internal/service/chequeservice"
	"github.com/GlebRadaev/gamebank/internal/service/ledgerservice"
	"github.com/GlebRadaev/gamebank/internal/service/loanservice"
	"github.com/GlebRadaev/gamebank/internal/service/serverloanservice"
)

type Repositories struct {
	AccountRepo    ledgerservice.Repo
	ChequeRepo     chequeservice.Repo
	LoanRepo       loanservice.Repo
	ServerLoanRepo serverloanservice.Repo
	SchedulerRuns  scheduler.Store
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	chequeRepo := chequerepo.New(conn)
	loanRepo := loanrepo.New(conn)
	serverLoanRepo := serverloanrepo.New(conn, txManager)
	schedulerRuns := schedulerrepo.New(conn)

	return &Repositories{
		AccountRepo:    accountRepo,
		ChequeRepo:     chequeRepo,
		LoanRepo:       loanRepo,
		ServerLoanRepo: serverLoanRepo,
		SchedulerRuns:  schedulerRuns,
	}
}
