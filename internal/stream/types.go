package stream

import (
	"encoding/json"
	"errors"
	"time"
)

// Errors
var (
	ErrNotConnected  = errors.New("not connected")
	ErrAlreadyClosed = errors.New("already closed")
)

// MessageType discriminates push messages on the wire.
type MessageType string

const (
	TypeTrade        MessageType = "trade"
	TypeNews         MessageType = "news"
	TypePressRelease MessageType = "press-release"
	TypePing         MessageType = "ping"
	TypeError        MessageType = "error"
)

// envelope is the raw wire shape; Data is decoded per Type.
type envelope struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"msg"`
}

// controlFrame is a subscribe/unsubscribe command.
type controlFrame struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
}

// Trade is a single tick from the trade channel.
type Trade struct {
	Symbol     string   `json:"s"`
	Price      float64  `json:"p"`
	Timestamp  int64    `json:"t"` // UNIX ms
	Volume     float64  `json:"v"`
	Conditions []string `json:"c"`
}

// NewsAlert is a push item from the news and press-release channels.
type NewsAlert struct {
	ID       int64  `json:"id"`
	Symbol   string `json:"symbol"`
	Headline string `json:"headline"`
	Datetime int64  `json:"datetime"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Message is a decoded push message. Exactly one payload field is set,
// per Type; ReceivedAt is the local read timestamp.
type Message struct {
	Type       MessageType
	Trades     []Trade     // TypeTrade
	News       []NewsAlert // TypeNews, TypePressRelease
	Err        string      // TypeError
	ReceivedAt time.Time
}

// Config configures a streaming client.
type Config struct {
	URL              string        // WebSocket URL (default wss://ws.finnhub.io)
	BufferSize       int           // Message channel buffer size
	WriteTimeout     time.Duration // Write deadline for control frames
	HandshakeTimeout time.Duration // Dial handshake timeout
}

// DefaultURL is the production Finnhub streaming endpoint.
const DefaultURL = "wss://ws.finnhub.io"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		URL:              DefaultURL,
		BufferSize:       1000,
		WriteTimeout:     5 * time.Second,
		HandshakeTimeout: 10 * time.Second,
	}
}
