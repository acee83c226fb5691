package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/config"
	"github.com/GlebRadaev/gamebank/internal/handlers"
	"github.com/GlebRadaev/gamebank/internal/metrics"
	"github.com/GlebRadaev/gamebank/internal/pg"
	"github.com/GlebRadaev/gamebank/internal/repo"
	"github.com/GlebRadaev/gamebank/internal/scheduler"
	"github.com/GlebRadaev/gamebank/internal/serial"
	"github.com/GlebRadaev/gamebank/internal/service"
	"github.com/GlebRadaev/gamebank/pkg/auth"
	"github.com/GlebRadaev/gamebank/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sched *scheduler.Scheduler

	ledgerQueue *serial.Queue
	chequeQueue *serial.Queue
	stopQueues  context.CancelFunc
	queueWg     sync.WaitGroup
	closers     []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	flush, err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.closers = append(a.closers, flush)

	policy, err := buildPolicy(cfg.Policy)
	if err != nil {
		return fmt.Errorf("invalid server loan policy: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewPrometheus("gamebank")
	if err := collector.Register(registry); err != nil {
		return fmt.Errorf("can't register metrics: %w", err)
	}

	resolver, closeResolver, err := buildNameResolver(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't build name resolver: %w", err)
	}
	a.closers = append(a.closers, closeResolver)

	conn := pg.New(pool)
	a.cfg = cfg
	a.ledgerQueue = serial.New("ledger", collector)
	a.chequeQueue = serial.New("cheque", collector)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, service.Deps{
		Names:       resolver,
		LedgerQueue: a.ledgerQueue,
		ChequeQueue: a.chequeQueue,
		Policy:      policy,
		Metrics:     collector,
	})
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	jobs, err := serverLoanJobs(cfg.Policy, a.srv.ServerLoanService)
	if err != nil {
		return fmt.Errorf("invalid server loan schedule: %w", err)
	}
	a.sched = scheduler.New(scheduler.SystemClock{}, a.repo.SchedulerRuns, cfg.SchedulerInterval, collector)
	for _, job := range jobs {
		a.sched.Add(job)
	}

	a.startQueues(ctx, a.ledgerQueue, a.chequeQueue)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// startQueues runs the queues on their own context. Wait stops them only
// after the HTTP server and the scheduler have returned.
func (a *Application) startQueues(ctx context.Context, queues ...*serial.Queue) {
	qctx, stop := context.WithCancel(context.WithoutCancel(ctx))
	a.stopQueues = stop
	for _, q := range queues {
		q.Start(qctx)
		a.queueWg.Add(1)
		go func(q *serial.Queue) {
			defer a.queueWg.Done()
			<-q.Done()
		}(q)
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) {
	a.sched.Start(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.sched.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	if a.stopQueues != nil {
		a.stopQueues()
	}
	a.queueWg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	return appErr
}
