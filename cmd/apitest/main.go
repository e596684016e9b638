// apitest exercises the Finnhub REST endpoints from the command line.
// Usage: go run ./cmd/apitest --symbol AAPL
//
// Required environment variables:
//
//	FINNHUB_TOKEN - Your API token from the Finnhub dashboard
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/finnwire/finnhub-data/internal/api"
)

func main() {
	symbol := flag.String("symbol", "AAPL", "stock symbol to query")
	exchange := flag.String("exchange", "US", "exchange code for symbol listing")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	token := os.Getenv("FINNHUB_TOKEN")
	if token == "" {
		log.Fatalf("FINNHUB_TOKEN environment variable is required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	client, err := api.NewClient(api.DefaultBaseURL, token, api.WithLogger(logger))
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("=== Market Status ===")
	status, err := client.GetMarketStatus(ctx, *exchange)
	if err != nil {
		log.Fatalf("get market status: %v", err)
	}
	fmt.Printf("exchange=%s open=%v", status.Exchange, status.IsOpen)
	if status.Session != nil {
		fmt.Printf(" session=%s", *status.Session)
	}
	fmt.Println()

	fmt.Println("\n=== Quote ===")
	quote, err := client.GetQuote(ctx, *symbol)
	if err != nil {
		log.Fatalf("get quote: %v", err)
	}
	fmt.Printf("%s: current=%.2f high=%.2f low=%.2f open=%.2f prev_close=%.2f\n",
		*symbol, quote.CurrentPrice, quote.High, quote.Low, quote.Open, quote.PreviousClose)

	fmt.Println("\n=== Company Profile ===")
	profile, err := client.GetCompanyProfile(ctx, *symbol)
	if err != nil {
		log.Fatalf("get company profile: %v", err)
	}
	if profile.Name != nil {
		fmt.Printf("name: %s\n", *profile.Name)
	}
	if profile.Exchange != nil {
		fmt.Printf("exchange: %s\n", *profile.Exchange)
	}
	if profile.Industry != nil {
		fmt.Printf("industry: %s\n", *profile.Industry)
	}
	if profile.MarketCapitalization != nil {
		fmt.Printf("market cap: %.0f\n", *profile.MarketCapitalization)
	}

	fmt.Println("\n=== Daily Candles (last 7 days) ===")
	now := time.Now()
	candles, err := client.GetCandles(ctx, *symbol, api.ResolutionDay, now.AddDate(0, 0, -7).Unix(), now.Unix())
	if err != nil {
		log.Fatalf("get candles: %v", err)
	}
	fmt.Printf("status=%s bars=%d\n", candles.Status, len(candles.Close))
	for i := range candles.Close {
		fmt.Printf("  %s  o=%.2f h=%.2f l=%.2f c=%.2f v=%.0f\n",
			time.Unix(candles.Timestamp[i], 0).Format("2006-01-02"),
			candles.Open[i], candles.High[i], candles.Low[i], candles.Close[i], candles.Volume[i])
	}

	fmt.Println("\n=== Market News ===")
	news, err := client.GetMarketNews(ctx, api.NewsGeneral, 0)
	if err != nil {
		log.Fatalf("get market news: %v", err)
	}
	for i, item := range news {
		if i >= 5 {
			break
		}
		fmt.Printf("  [%s] %s\n", item.Source, item.Headline)
	}

	fmt.Println("\ndone")
}
