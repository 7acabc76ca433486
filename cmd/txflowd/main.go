package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/admesh/txflow/config"
	"github.com/admesh/txflow/internal/cache"
	"github.com/admesh/txflow/internal/domain"
	domainstore "github.com/admesh/txflow/internal/domain/postgresql"
	"github.com/admesh/txflow/internal/ledger"
	"github.com/admesh/txflow/internal/lifecycle"
	txstore "github.com/admesh/txflow/internal/lifecycle/store/postgresql"
	"github.com/admesh/txflow/internal/logger"
	"github.com/admesh/txflow/internal/mq"
)

const progname = "txflowd"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func main() {
	configDir := flag.String("config", "", "path to directory containing config.yaml")
	flag.Parse()

	txConfig, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(txConfig.LogLevel, txConfig.LogFormat)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	appLogger.Info("starting", slog.String("progname", progname), slog.String("version", version), slog.String("commit", commit))

	shutdown, err := run(appLogger, txConfig)
	if err != nil {
		appLogger.Error("failed to start", slog.String("err", err.Error()))
		os.Exit(1)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	<-signalChan

	appLogger.Info("shutting down")
	shutdown()
}

func run(appLogger *slog.Logger, txConfig *config.TxFlowConfig) (func(), error) {
	if txConfig.ProfilerAddr != "" {
		go func() {
			appLogger.Info("profiler listening", slog.String("addr", fmt.Sprintf("http://%s/debug/pprof", txConfig.ProfilerAddr)))
			err := http.ListenAndServe(txConfig.ProfilerAddr, nil)
			if err != nil {
				appLogger.Error("profiler failed", slog.String("err", err.Error()))
			}
		}()
	}

	if txConfig.Db.Mode != "postgres" {
		return nil, fmt.Errorf("db mode %s is not supported", txConfig.Db.Mode)
	}

	dbInfo := txConfig.Db.Postgres.DSN()

	transactionStore, err := txstore.New(dbInfo, txConfig.Db.Postgres.MaxIdleConns, txConfig.Db.Postgres.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction store: %w", err)
	}

	err = transactionStore.Ping(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to reach transaction store: %w", err)
	}

	domainStore, err := domainstore.New(dbInfo, txConfig.Db.Postgres.MaxIdleConns, txConfig.Db.Postgres.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain store: %w", err)
	}

	cacheStore, err := newCacheStore(txConfig.Cache)
	if err != nil {
		return nil, err
	}

	gatewayOpts := []func(*ledger.Client){
		ledger.WithLogger(appLogger),
		ledger.WithPollInterval(txConfig.Ledger.PollInterval),
	}
	if txConfig.Ledger.AuthToken != "" {
		gatewayOpts = append(gatewayOpts, ledger.WithAuth(txConfig.Ledger.AuthToken))
	}
	gateway := ledger.NewClient(txConfig.Ledger.URL, gatewayOpts...)

	managerOpts := []lifecycle.Option{
		lifecycle.WithLogger(appLogger),
		lifecycle.WithCacheStore(cacheStore),
		lifecycle.WithHandlers(
			domain.NewFundingHandler(domainStore, appLogger),
			domain.NewPayoutHandler(domainStore, domainStore, appLogger),
			domain.NewConsentHandler(domainStore, appLogger),
		),
		lifecycle.WithRetryBase(txConfig.Lifecycle.RetryBase),
		lifecycle.WithSweepInterval(txConfig.Lifecycle.SweepInterval),
		lifecycle.WithReceiptTimeout(txConfig.Lifecycle.ReceiptTimeout),
		lifecycle.WithSubmitTimeout(txConfig.Lifecycle.SubmitTimeout),
		lifecycle.WithConfirmations(txConfig.Lifecycle.Confirmations),
		lifecycle.WithStatusCacheTTL(txConfig.Lifecycle.StatusCacheTTL),
	}

	if txConfig.Tracing != nil && txConfig.Tracing.Enabled {
		managerOpts = append(managerOpts, lifecycle.WithTracing(txConfig.Tracing.KeyValueAttributes))
	}

	var publisher *mq.Publisher
	if txConfig.MessageQueue.Enabled {
		conn, err := mq.NewNatsClient(txConfig.MessageQueue.URL, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to message queue: %w", err)
		}
		publisher = mq.NewPublisher(conn, appLogger)
		managerOpts = append(managerOpts, lifecycle.WithPublisher(publisher))
	}

	manager, err := lifecycle.New(transactionStore, gateway, managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create lifecycle manager: %w", err)
	}

	err = manager.Recover(context.Background())
	if err != nil {
		return nil, fmt.Errorf("recovery failed: %w", err)
	}

	manager.Start()

	jobsCtx, stopJobs := context.WithCancel(context.Background())
	if txConfig.Lifecycle.RecordRetentionDays > 0 {
		go clearAuditJob(jobsCtx, appLogger, transactionStore, txConfig.Lifecycle.RecordRetentionDays)
	}

	shutdown := func() {
		stopJobs()
		manager.Shutdown()

		if publisher != nil {
			publisher.Shutdown()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := transactionStore.Close(ctx); err != nil {
			appLogger.Error("failed to close transaction store", slog.String("err", err.Error()))
		}
		if err := domainStore.Close(ctx); err != nil {
			appLogger.Error("failed to close domain store", slog.String("err", err.Error()))
		}
	}

	return shutdown, nil
}

func newCacheStore(cacheConfig *config.CacheConfig) (cache.Store, error) {
	switch cacheConfig.Engine {
	case "memory":
		return cache.NewMemoryStore(10*time.Second, time.Minute), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cacheConfig.Redis.Addr,
			Password: cacheConfig.Redis.Password,
			DB:       cacheConfig.Redis.DB,
		})
		return cache.NewRedisStore(context.Background(), client), nil
	}

	return nil, fmt.Errorf("cache engine %s is not supported", cacheConfig.Engine)
}

// clearAuditJob prunes resolved records past the retention window once a day.
func clearAuditJob(ctx context.Context, appLogger *slog.Logger, transactionStore *txstore.PostgreSQL, retentionDays int32) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := transactionStore.ClearAudit(ctx, retentionDays)
			if err != nil {
				appLogger.Error("audit cleanup failed", slog.String("err", err.Error()))
				continue
			}
			appLogger.Info("audit cleanup complete", slog.Int64("deleted", deleted))
		}
	}
}
