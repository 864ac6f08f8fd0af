package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/cardsync"
	"github.com/GlebRadaev/pupuledger/internal/config"
	"github.com/GlebRadaev/pupuledger/internal/handlers"
	"github.com/GlebRadaev/pupuledger/internal/pg"
	"github.com/GlebRadaev/pupuledger/internal/repo"
	memoryrepo "github.com/GlebRadaev/pupuledger/internal/repo/memory-repo"
	"github.com/GlebRadaev/pupuledger/internal/service"
	"github.com/GlebRadaev/pupuledger/pkg/clients"
	"github.com/GlebRadaev/pupuledger/pkg/logger"
	"github.com/GlebRadaev/pupuledger/pkg/notify"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	poller *cardsync.Service
	pool   *pgxpool.Pool

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

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid configuration: ", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	if err := a.initRepositories(ctx); err != nil {
		return err
	}

	cards := clients.NewCardClient(cfg.CardAPIAddress, cfg.CardAPIKey, clients.NewHTTPClient())
	a.srv = service.New(a.repo, cards, notify.NewLogNotifier(zap.L()), cfg)
	a.api = handlers.New(a.srv, cfg)
	a.poller = cardsync.New(a.repo.Intents, cards, a.srv.ReconcileService, cfg.CardSyncInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startCardSync(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

func (a *Application) initRepositories(ctx context.Context) error {
	if a.cfg.Storage == config.StorageMemory {
		zap.L().Warn("using in-memory storage, data is lost on restart")
		a.repo = repo.NewMemory(memoryrepo.New())
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
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

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startCardSync(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.poller.Start(ctx)
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
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}
	return appErr
}
