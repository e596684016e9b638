// streamtest connects to the Finnhub WebSocket and streams parsed
// messages to console.
// Usage: go run ./cmd/streamtest --symbols AAPL,MSFT,BINANCE:BTCUSDT
//
// Required environment variables:
//
//	FINNHUB_TOKEN - Your API token from the Finnhub dashboard
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/finnwire/finnhub-data/internal/auth"
	"github.com/finnwire/finnhub-data/internal/model"
	"github.com/finnwire/finnhub-data/internal/stream"
)

func main() {
	symbols := flag.String("symbols", "AAPL", "comma-separated symbols to subscribe")
	wsURL := flag.String("url", stream.DefaultURL, "WebSocket URL")
	verbose := flag.Bool("verbose", false, "print full message JSON")
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	token := os.Getenv("FINNHUB_TOKEN")
	if token == "" {
		logger.Error("FINNHUB_TOKEN environment variable is required")
		os.Exit(1)
	}

	creds, err := auth.New(token, auth.PlacementQuery)
	if err != nil {
		logger.Error("failed to build credentials", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	cfg := stream.DefaultConfig()
	cfg.URL = *wsURL

	client := stream.NewClient(cfg, creds, logger)
	if err := client.Connect(ctx); err != nil {
		logger.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	for _, sym := range strings.Split(*symbols, ",") {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			continue
		}
		if err := client.Subscribe(sym); err != nil {
			logger.Error("subscribe failed", "symbol", sym, "error", err)
			os.Exit(1)
		}
		logger.Info("subscribed", "symbol", sym)
	}

	var trades, alerts int
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down",
				"trades", trades,
				"news_alerts", alerts,
				"uptime", time.Since(start).Round(time.Second),
			)
			return

		case err := <-client.Errors():
			logger.Error("stream error", "error", err)
			return

		case msg, ok := <-client.Messages():
			if !ok {
				logger.Info("message channel closed")
				return
			}

			if *verbose {
				raw, _ := json.Marshal(msg)
				fmt.Println(string(raw))
				continue
			}

			switch msg.Type {
			case stream.TypeTrade:
				trades += len(msg.Trades)
				for _, t := range msg.Trades {
					tick := model.TradeTick{
						TickID:     uuid.New(),
						Symbol:     t.Symbol,
						Price:      t.Price,
						Volume:     t.Volume,
						ExchangeTS: t.Timestamp,
						ReceivedAt: msg.ReceivedAt.UnixMicro(),
					}
					fmt.Printf("TRADE  %-20s price=%-12.4f vol=%-10.2f %s  [%s]\n",
						tick.Symbol, tick.Price, tick.Volume,
						time.UnixMilli(tick.ExchangeTS).Format("15:04:05.000"),
						tick.TickID)
				}
			case stream.TypeNews, stream.TypePressRelease:
				alerts += len(msg.News)
				for _, n := range msg.News {
					fmt.Printf("NEWS   %-20s [%s] %s\n", n.Symbol, n.Source, n.Headline)
				}
			case stream.TypeError:
				logger.Warn("server error message", "msg", msg.Err)
			}
		}
	}
}
