package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finnwire/finnhub-data/internal/api"
	"github.com/finnwire/finnhub-data/internal/model"
)

// SymbolSource provides the symbols to poll.
type SymbolSource interface {
	Symbols() []string
}

// SymbolList is a fixed SymbolSource.
type SymbolList []string

func (s SymbolList) Symbols() []string {
	return s
}

// SampleHandler receives fetched quote samples.
type SampleHandler interface {
	HandleSample(sample model.QuoteSample) error
}

// SampleHandlerFunc is a function adapter for SampleHandler.
type SampleHandlerFunc func(model.QuoteSample) error

func (f SampleHandlerFunc) HandleSample(s model.QuoteSample) error {
	return f(s)
}

// Config holds poller configuration.
type Config struct {
	Interval    time.Duration // Poll interval (default: 30s)
	Concurrency int           // Max concurrent requests (default: 10)
	Timeout     time.Duration // Per-request timeout (default: 10s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    30 * time.Second,
		Concurrency: 10,
		Timeout:     10 * time.Second,
	}
}

// Poller periodically fetches quotes through the API client.
type Poller struct {
	cfg     Config
	client  *api.Client
	symbols SymbolSource
	handler SampleHandler
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Poller.
func New(cfg Config, client *api.Client, symbols SymbolSource, handler SampleHandler, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:     cfg,
		client:  client,
		symbols: symbols,
		handler: handler,
		logger:  logger,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("quote poller started",
		"interval", p.cfg.Interval,
		"concurrency", p.cfg.Concurrency,
	)

	return nil
}

// Stop gracefully shuts down the poller.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("quote poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	p.pollAll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.pollAll()
		}
	}
}

// pollAll fetches quotes for all symbols with bounded concurrency.
// A failed symbol does not abort the cycle; failures are counted and
// logged per symbol.
func (p *Poller) pollAll() {
	start := time.Now()

	symbols := p.symbols.Symbols()
	if len(symbols) == 0 {
		p.logger.Debug("no symbols to poll")
		return
	}

	g, ctx := errgroup.WithContext(p.ctx)
	g.SetLimit(p.cfg.Concurrency)

	var fetched, failed atomic.Int64

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			if err := p.pollSymbol(ctx, symbol); err != nil {
				p.logger.Warn("failed to poll symbol",
					"symbol", symbol,
					"err", err,
				)
				failed.Add(1)
				return nil
			}
			fetched.Add(1)
			return nil
		})
	}

	g.Wait()

	p.logger.Info("poll cycle complete",
		"symbols", len(symbols),
		"fetched", fetched.Load(),
		"failed", failed.Load(),
		"duration", time.Since(start),
	)
}

// pollSymbol fetches and handles a single symbol's quote.
func (p *Poller) pollSymbol(ctx context.Context, symbol string) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	q, err := p.client.GetQuote(ctx, symbol)
	if err != nil {
		return err
	}

	sample := model.QuoteSample{
		SampleID:      uuid.New(),
		Symbol:        symbol,
		Price:         q.CurrentPrice,
		Change:        q.Change,
		PercentChange: q.PercentChange,
		High:          q.High,
		Low:           q.Low,
		Open:          q.Open,
		PreviousClose: q.PreviousClose,
		QuoteTS:       q.Timestamp,
		FetchedAt:     time.Now().UnixMicro(),
	}

	if p.handler != nil {
		if err := p.handler.HandleSample(sample); err != nil {
			return err
		}
	}

	return nil
}
