package model

import "github.com/google/uuid"

// QuoteSample is one observation of a symbol's quote, taken by the
// poller. SampleID is assigned locally at fetch time so consumers can
// deduplicate across overlapping poll cycles.
type QuoteSample struct {
	SampleID uuid.UUID // Locally assigned identity
	Symbol   string    // Upstream symbol (e.g., "AAPL")

	Price         float64 // Current price
	Change        float64 // Absolute change since previous close
	PercentChange float64 // Percent change since previous close
	High          float64 // Day high
	Low           float64 // Day low
	Open          float64 // Day open
	PreviousClose float64 // Previous close

	QuoteTS   int64 // Upstream quote timestamp (seconds since epoch)
	FetchedAt int64 // Local fetch time (µs since epoch)
}

// TradeTick is one trade from the stream, stamped with a local identity
// and receive time.
type TradeTick struct {
	TickID     uuid.UUID // Locally assigned identity
	Symbol     string    // Upstream symbol
	Price      float64   // Trade price
	Volume     float64   // Trade volume
	ExchangeTS int64     // Upstream trade timestamp (ms since epoch)
	ReceivedAt int64     // Local receive time (µs since epoch)
}
