package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/finnwire/finnhub-data/internal/auth"
)

var upgrader = websocket.Upgrader{}

// newTestServer runs handler for each WebSocket connection and returns
// a ws:// URL for it.
func newTestServer(t *testing.T, handler func(*websocket.Conn, *http.Request)) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		handler(conn, r)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func testCreds(t *testing.T) *auth.Credentials {
	t.Helper()
	creds, err := auth.New("stream-token", auth.PlacementHeader)
	if err != nil {
		t.Fatalf("auth.New: %v", err)
	}
	return creds
}

func TestConnectSendsToken(t *testing.T) {
	gotToken := make(chan string, 1)
	url := newTestServer(t, func(conn *websocket.Conn, r *http.Request) {
		gotToken <- r.URL.Query().Get(auth.QueryParam)
		// Hold the connection open until the client hangs up.
		conn.ReadMessage()
	})

	c := NewClient(Config{URL: url}, testCreds(t), nil)
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	select {
	case token := <-gotToken:
		if token != "stream-token" {
			t.Errorf("token = %q, want %q", token, "stream-token")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the connection")
	}

	if !c.IsConnected() {
		t.Error("IsConnected() = false after Connect")
	}
}

func TestSubscribeFrames(t *testing.T) {
	frames := make(chan controlFrame, 2)
	url := newTestServer(t, func(conn *websocket.Conn, r *http.Request) {
		for i := 0; i < 2; i++ {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var f controlFrame
			if err := json.Unmarshal(data, &f); err != nil {
				t.Errorf("bad control frame %q: %v", data, err)
				return
			}
			frames <- f
		}
	})

	c := NewClient(Config{URL: url}, testCreds(t), nil)
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	if err := c.Subscribe("AAPL"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := c.Unsubscribe("AAPL"); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	want := []controlFrame{
		{Type: "subscribe", Symbol: "AAPL"},
		{Type: "unsubscribe", Symbol: "AAPL"},
	}
	for _, w := range want {
		select {
		case f := <-frames:
			if f != w {
				t.Errorf("frame = %+v, want %+v", f, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("server never received %+v", w)
		}
	}
}

func TestReceiveTrades(t *testing.T) {
	url := newTestServer(t, func(conn *websocket.Conn, r *http.Request) {
		conn.WriteMessage(websocket.TextMessage, []byte(
			`{"type": "trade", "data": [{"s": "AAPL", "p": 150.25, "t": 1700000000000, "v": 100}]}`,
		))
		conn.ReadMessage()
	})

	c := NewClient(Config{URL: url}, testCreds(t), nil)
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	select {
	case msg := <-c.Messages():
		if msg.Type != TypeTrade {
			t.Fatalf("Type = %q, want trade", msg.Type)
		}
		if len(msg.Trades) != 1 {
			t.Fatalf("Trades len = %d, want 1", len(msg.Trades))
		}
		tr := msg.Trades[0]
		if tr.Symbol != "AAPL" || tr.Price != 150.25 || tr.Volume != 100 {
			t.Errorf("trade = %+v", tr)
		}
		if msg.ReceivedAt.IsZero() {
			t.Error("ReceivedAt not set")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestPingFramesAreSwallowed(t *testing.T) {
	url := newTestServer(t, func(conn *websocket.Conn, r *http.Request) {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type": "ping"}`))
		conn.WriteMessage(websocket.TextMessage, []byte(
			`{"type": "news", "data": [{"id": 3, "symbol": "AAPL", "headline": "hello"}]}`,
		))
		conn.ReadMessage()
	})

	c := NewClient(Config{URL: url}, testCreds(t), nil)
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	select {
	case msg := <-c.Messages():
		// The ping must not surface; the first message is the news item.
		if msg.Type != TypeNews {
			t.Fatalf("Type = %q, want news", msg.Type)
		}
		if len(msg.News) != 1 || msg.News[0].Headline != "hello" {
			t.Errorf("news = %+v", msg.News)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestDecode(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		data     string
		wantOK   bool
		wantType MessageType
	}{
		{"trade", `{"type": "trade", "data": []}`, true, TypeTrade},
		{"news", `{"type": "news", "data": []}`, true, TypeNews},
		{"press release", `{"type": "press-release", "data": []}`, true, TypePressRelease},
		{"error frame", `{"type": "error", "msg": "Subscribing to too many symbols"}`, true, TypeError},
		{"ping", `{"type": "ping"}`, true, TypePing},
		{"unknown type", `{"type": "mystery"}`, false, ""},
		{"not json", `nope`, false, ""},
		{"wrong data shape", `{"type": "trade", "data": {"s": "AAPL"}}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := decode([]byte(tt.data), now)
			if ok != tt.wantOK {
				t.Fatalf("decode ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && msg.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", msg.Type, tt.wantType)
			}
		})
	}
}

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient(Config{URL: "ws://unused"}, testCreds(t), nil)
	if err := c.Subscribe("AAPL"); err != ErrNotConnected {
		t.Errorf("Subscribe = %v, want ErrNotConnected", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	url := newTestServer(t, func(conn *websocket.Conn, r *http.Request) {
		conn.ReadMessage()
	})

	c := NewClient(Config{URL: url}, testCreds(t), nil)
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := c.Connect(context.Background()); err != ErrAlreadyClosed {
		t.Errorf("Connect after Close = %v, want ErrAlreadyClosed", err)
	}
}
