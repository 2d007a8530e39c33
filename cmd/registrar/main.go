// Package main runs the registrar HTTP API and the background resolver.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goodnatureofminers/tla-registrar/internal/clock"
	"github.com/goodnatureofminers/tla-registrar/internal/metrics"
	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"github.com/goodnatureofminers/tla-registrar/internal/repository/clickhouse"
	"github.com/goodnatureofminers/tla-registrar/internal/service/events"
	"github.com/goodnatureofminers/tla-registrar/internal/service/sweeper"
	"github.com/goodnatureofminers/tla-registrar/internal/storage/bolt"
	"github.com/goodnatureofminers/tla-registrar/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr          string        `long:"addr" env:"REGISTRAR_ADDR" description:"http listen address" default:":8000"`
	DBDir         string        `long:"db-dir" env:"REGISTRAR_DB_DIR" description:"directory of the ledger database" default:"data"`
	Launch        string        `long:"launch" env:"REGISTRAR_LAUNCH" description:"launch instant (RFC3339)" required:"true"`
	BiddingWindow time.Duration `long:"bidding-window" env:"REGISTRAR_BIDDING_WINDOW" description:"bidding window" default:"168h"`
	RevealWindow  time.Duration `long:"reveal-window" env:"REGISTRAR_REVEAL_WINDOW" description:"reveal window" default:"168h"`
	Week          time.Duration `long:"week" env:"REGISTRAR_WEEK" description:"release schedule week length" default:"168h"`
	WeekModulus   uint64        `long:"week-modulus" env:"REGISTRAR_WEEK_MODULUS" description:"number of release weeks" default:"52"`
	MinNameLength int           `long:"min-name-length" env:"REGISTRAR_MIN_NAME_LENGTH" description:"names this long or longer are not auctioned" default:"32"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"REGISTRAR_CLICKHOUSE_DSN" description:"ClickHouse DSN for event history (optional)"`
	SweepInterval time.Duration `long:"sweep-interval" env:"REGISTRAR_SWEEP_INTERVAL" description:"resolver sweep interval" default:"1m"`
	DevCredit     bool          `long:"dev-credit" env:"REGISTRAR_DEV_CREDIT" description:"expose the account credit endpoint"`
	LogJSON       bool          `long:"log-json" env:"REGISTRAR_LOG_JSON" description:"production json logging"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("registrar failed", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func registrarConfig(cfg config) (registrar.Config, error) {
	launch, err := time.Parse(time.RFC3339, cfg.Launch)
	if err != nil {
		return registrar.Config{}, fmt.Errorf("parse launch: %w", err)
	}
	rc := registrar.DefaultConfig(launch.UTC())
	rc.BiddingWindow = cfg.BiddingWindow
	rc.RevealWindow = cfg.RevealWindow
	rc.Week = cfg.Week
	rc.WeekModulus = cfg.WeekModulus
	rc.MinNameLength = cfg.MinNameLength
	return rc, rc.Validate()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	rc, err := registrarConfig(cfg)
	if err != nil {
		return err
	}

	store, err := bolt.Open(cfg.DBDir)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close ledger", zap.Error(err))
		}
	}()

	var (
		publisher registrar.EventPublisher
		history   transport.History
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewEventRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()

		writer, err := events.NewWriter(repo, metrics.NewEventWriter(), logger.Named("events"))
		if err != nil {
			return fmt.Errorf("init event writer: %w", err)
		}
		// Stop flushes the tail, so the writer must outlive the signal context.
		writer.Start(context.WithoutCancel(ctx))
		defer writer.Stop()

		publisher = writer
		history = repo
	} else {
		logger.Info("event history disabled")
	}

	registry, err := registrar.NewRegistry(store, clock.System{}, rc, metrics.NewRegistrar(), publisher, logger.Named("registrar"))
	if err != nil {
		return err
	}

	sweep, err := sweeper.NewService(registry, metrics.NewSweeper(), cfg.SweepInterval, logger.Named("sweeper"))
	if err != nil {
		return err
	}
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		if err := sweep.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("sweeper stopped", zap.Error(err))
		}
	}()

	handler, err := transport.NewHandler(registry, history, logger.Named("http"), cfg.DevCredit)
	if err != nil {
		return err
	}
	router := transport.NewRouter(handler, metrics.NewHTTP())
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	err = serve(ctx, cfg.Addr, router, logger)
	<-sweepDone
	return err
}

func serve(ctx context.Context, addr string, router chi.Router, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
