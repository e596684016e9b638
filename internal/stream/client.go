package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/finnwire/finnhub-data/internal/auth"
)

// Client is a single WebSocket connection to the Finnhub stream.
type Client struct {
	cfg    Config
	creds  *auth.Credentials
	logger *slog.Logger

	conn *websocket.Conn

	// Output channels
	messages chan Message
	errors   chan error
	done     chan struct{}

	// Write serialization
	writeMu sync.Mutex

	// State
	mu        sync.RWMutex
	connected bool
	closed    bool
}

// NewClient creates a streaming client. Credentials are attached to the
// dial URL as a query token; the stream endpoint accepts nothing else.
func NewClient(cfg Config, creds *auth.Credentials, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultConfig().WriteTimeout
	}
	if cfg.HandshakeTimeout == 0 {
		cfg.HandshakeTimeout = DefaultConfig().HandshakeTimeout
	}

	return &Client{
		cfg:      cfg,
		creds:    creds,
		logger:   logger,
		messages: make(chan Message, cfg.BufferSize),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
}

// Connect establishes the WebSocket connection and starts the read loop.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.mu.Unlock()

	dialURL, err := c.creds.StreamURL(c.cfg.URL)
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: c.cfg.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, dialURL, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()

	c.logger.Debug("stream connected", "url", c.cfg.URL)

	return nil
}

// Close gracefully closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.connected = false
	c.mu.Unlock()

	close(c.done)

	if c.conn != nil {
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		return c.conn.Close()
	}

	return nil
}

// Subscribe requests push messages for a symbol.
func (c *Client) Subscribe(symbol string) error {
	return c.sendControl("subscribe", symbol)
}

// Unsubscribe stops push messages for a symbol.
func (c *Client) Unsubscribe(symbol string) error {
	return c.sendControl("unsubscribe", symbol)
}

// Messages returns the channel of decoded push messages.
func (c *Client) Messages() <-chan Message {
	return c.messages
}

// Errors returns the channel of connection errors. At most one error is
// delivered; the connection is dead afterwards.
func (c *Client) Errors() <-chan error {
	return c.errors
}

// IsConnected returns current connection state.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// sendControl writes a subscribe/unsubscribe frame.
func (c *Client) sendControl(frameType, symbol string) error {
	c.mu.RLock()
	if !c.connected {
		c.mu.RUnlock()
		return ErrNotConnected
	}
	c.mu.RUnlock()

	data, err := json.Marshal(controlFrame{Type: frameType, Symbol: symbol})
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// readLoop reads frames, decodes them, and feeds the messages channel.
func (c *Client) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		close(c.messages)
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, data, err := c.conn.ReadMessage()
		receivedAt := time.Now()

		if err != nil {
			// Ignore errors after Close() is called.
			select {
			case <-c.done:
				return
			default:
				select {
				case c.errors <- err:
				default:
				}
				return
			}
		}

		msg, ok := decode(data, receivedAt)
		if !ok {
			c.logger.Warn("undecodable stream frame", "size", len(data))
			continue
		}
		if msg.Type == TypePing {
			continue
		}

		select {
		case c.messages <- msg:
		case <-c.done:
			return
		default:
			c.logger.Warn("message buffer full, dropping message", "type", msg.Type)
		}
	}
}

// decode parses a wire frame into a typed Message.
func decode(data []byte, receivedAt time.Time) (Message, bool) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Message{}, false
	}

	msg := Message{Type: env.Type, ReceivedAt: receivedAt}

	switch env.Type {
	case TypeTrade:
		if err := json.Unmarshal(env.Data, &msg.Trades); err != nil {
			return Message{}, false
		}
	case TypeNews, TypePressRelease:
		if err := json.Unmarshal(env.Data, &msg.News); err != nil {
			return Message{}, false
		}
	case TypeError:
		msg.Err = env.Msg
	case TypePing:
	default:
		return Message{}, false
	}

	return msg, true
}
