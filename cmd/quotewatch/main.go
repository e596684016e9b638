// quotewatch polls quotes for a configured symbol list and prints each
// sample to stdout.
// Usage: go run ./cmd/quotewatch --config configs/client.local.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finnwire/finnhub-data/internal/api"
	"github.com/finnwire/finnhub-data/internal/auth"
	"github.com/finnwire/finnhub-data/internal/config"
	"github.com/finnwire/finnhub-data/internal/model"
	"github.com/finnwire/finnhub-data/internal/poller"
	"github.com/finnwire/finnhub-data/internal/ratelimit"
	"github.com/finnwire/finnhub-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/client.example.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting quotewatch",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if len(cfg.Poller.Symbols) == 0 {
		logger.Error("poller.symbols is empty, nothing to watch")
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Build the rate limiter from the configured strategy
	var limiter *ratelimit.Limiter
	switch cfg.RateLimit.Strategy {
	case config.StrategyWindowed:
		limiter = ratelimit.Windowed()
	case config.StrategyCustom:
		limiter = ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.PerSecond)
	default:
		limiter = ratelimit.Default()
	}

	// Create API client
	client, err := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.Token,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(limiter),
		api.WithAuthPlacement(auth.Placement(cfg.API.AuthPlacement)),
	)
	if err != nil {
		logger.Error("failed to create API client", "error", err)
		os.Exit(1)
	}

	// Sanity check before entering the loop
	status, err := client.GetMarketStatus(ctx, "US")
	if err != nil {
		logger.Error("failed to get market status", "error", err)
		os.Exit(1)
	}
	logger.Info("market status", "exchange", status.Exchange, "open", status.IsOpen)

	handler := poller.SampleHandlerFunc(func(s model.QuoteSample) error {
		fmt.Printf("%s  %-10s price=%-12.4f chg=%+.2f%%  [%s]\n",
			time.UnixMicro(s.FetchedAt).Format("15:04:05"),
			s.Symbol, s.Price, s.PercentChange, s.SampleID)
		return nil
	})

	p := poller.New(
		poller.Config{
			Interval:    cfg.Poller.Interval,
			Concurrency: cfg.Poller.Concurrency,
			Timeout:     cfg.API.Timeout,
		},
		client,
		poller.SymbolList(cfg.Poller.Symbols),
		handler,
		logger,
	)

	if err := p.Start(ctx); err != nil {
		logger.Error("failed to start poller", "error", err)
		os.Exit(1)
	}

	logger.Info("quotewatch running", "symbols", len(cfg.Poller.Symbols))

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := p.Stop(shutdownCtx); err != nil {
		logger.Error("poller shutdown error", "error", err)
		os.Exit(1)
	}
}
