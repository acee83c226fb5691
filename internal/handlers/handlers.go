package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gamebank/docs"
	chequehandlers "github.com/GlebRadaev/gamebank/internal/handlers/cheques"
	ledgerhandlers "github.com/GlebRadaev/gamebank/internal/handlers/ledger"
	loanhandlers "github.com/GlebRadaev/gamebank/internal/handlers/loans"
	serverloanhandlers "github.com/GlebRadaev/gamebank/internal/handlers/serverloans"
	"github.com/GlebRadaev/gamebank/internal/service"
	"github.com/GlebRadaev/gamebank/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type LedgerHandler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetMovements(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type ChequeHandler interface {
	CreateCheque(w http.ResponseWriter, r *http.Request)
	RedeemCheque(w http.ResponseWriter, r *http.Request)
	GetCheque(w http.ResponseWriter, r *http.Request)
	ListCheques(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	CreateLoan(w http.ResponseWriter, r *http.Request)
	RepayLoan(w http.ResponseWriter, r *http.Request)
	ReleaseCollateral(w http.ResponseWriter, r *http.Request)
	GetLoan(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
}

type ServerLoanHandler interface {
	GetServerLoan(w http.ResponseWriter, r *http.Request)
	GetBorrowLimit(w http.ResponseWriter, r *http.Request)
	Borrow(w http.ResponseWriter, r *http.Request)
	Repay(w http.ResponseWriter, r *http.Request)
	SetPaymentAmount(w http.ResponseWriter, r *http.Request)
	AddInterest(w http.ResponseWriter, r *http.Request)
	SetInterestStopped(w http.ResponseWriter, r *http.Request)
	RunInterest(w http.ResponseWriter, r *http.Request)
	RunSweep(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LedgerHandler     LedgerHandler
	ChequeHandler     ChequeHandler
	LoanHandler       LoanHandler
	ServerLoanHandler ServerLoanHandler

	JWT     auth.JWTServiceInterface
	Metrics http.Handler
}

func New(s *service.Services, jwt auth.JWTServiceInterface, metrics http.Handler) *Handlers {
	return &Handlers{
		LedgerHandler:     ledgerhandlers.New(s.LedgerService),
		ChequeHandler:     chequehandlers.New(s.ChequeService),
		LoanHandler:       loanhandlers.New(s.LoanService),
		ServerLoanHandler: serverloanhandlers.New(s.ServerLoanService),
		JWT:               jwt,
		Metrics:           metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.JWT))

		r.Route("/account", func(r chi.Router) {
			r.Get("/", h.LedgerHandler.GetAccount)
			r.Get("/balance", h.LedgerHandler.GetBalance)
			r.Get("/movements", h.LedgerHandler.GetMovements)
		})
		r.Route("/cheques", func(r chi.Router) {
			r.Post("/", h.ChequeHandler.CreateCheque)
			r.Get("/", h.ChequeHandler.ListCheques)
			r.Get("/{chequeID}", h.ChequeHandler.GetCheque)
			r.Post("/{chequeID}/redeem", h.ChequeHandler.RedeemCheque)
		})
		r.Route("/loans", func(r chi.Router) {
			r.Get("/", h.LoanHandler.ListLoans)
			r.Get("/{loanID}", h.LoanHandler.GetLoan)
			r.Post("/{loanID}/release-collateral", h.LoanHandler.ReleaseCollateral)
		})
		r.Route("/server-loan", func(r chi.Router) {
			r.Get("/", h.ServerLoanHandler.GetServerLoan)
			r.Get("/limit", h.ServerLoanHandler.GetBorrowLimit)
			r.Post("/borrow", h.ServerLoanHandler.Borrow)
			r.Post("/repay", h.ServerLoanHandler.Repay)
			r.Put("/payment-amount", h.ServerLoanHandler.SetPaymentAmount)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Route("/accounts/{accountID}", func(r chi.Router) {
				r.Get("/", h.LedgerHandler.GetAccount)
				r.Get("/movements", h.LedgerHandler.GetMovements)
				r.Post("/deposit", h.LedgerHandler.Deposit)
				r.Post("/withdraw", h.LedgerHandler.Withdraw)
			})
			// Peer loans are created and collected by the game server only.
			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.LoanHandler.CreateLoan)
				r.Get("/{loanID}", h.LoanHandler.GetLoan)
				r.Post("/{loanID}/repay", h.LoanHandler.RepayLoan)
			})
			r.Route("/server-loans", func(r chi.Router) {
				r.Post("/interest", h.ServerLoanHandler.RunInterest)
				r.Post("/sweep", h.ServerLoanHandler.RunSweep)
				r.Get("/{accountID}", h.ServerLoanHandler.GetServerLoan)
				r.Get("/{accountID}/limit", h.ServerLoanHandler.GetBorrowLimit)
				r.Post("/{accountID}/interest", h.ServerLoanHandler.AddInterest)
				r.Put("/{accountID}/interest-stopped", h.ServerLoanHandler.SetInterestStopped)
			})
		})
	})

	return r
}
