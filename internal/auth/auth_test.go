package auth

import (
	"net/http"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("empty token rejected", func(t *testing.T) {
		_, err := New("", PlacementHeader)
		if err == nil {
			t.Fatal("expected error for empty token")
		}
	})

	t.Run("empty placement defaults to header", func(t *testing.T) {
		c, err := New("test-token", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Placement() != PlacementHeader {
			t.Errorf("Placement() = %q, want %q", c.Placement(), PlacementHeader)
		}
	})

	t.Run("unknown placement rejected", func(t *testing.T) {
		_, err := New("test-token", "cookie")
		if err == nil {
			t.Fatal("expected error for unknown placement")
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("header placement", func(t *testing.T) {
		c, _ := New("test-token", PlacementHeader)
		req, _ := http.NewRequest(http.MethodGet, "https://finnhub.io/api/v1/quote?symbol=AAPL", nil)

		c.Apply(req)

		if got := req.Header.Get(HeaderName); got != "test-token" {
			t.Errorf("header = %q, want %q", got, "test-token")
		}
		if req.URL.Query().Get(QueryParam) != "" {
			t.Error("token must not also appear in query")
		}
	})

	t.Run("query placement", func(t *testing.T) {
		c, _ := New("test-token", PlacementQuery)
		req, _ := http.NewRequest(http.MethodGet, "https://finnhub.io/api/v1/quote?symbol=AAPL", nil)

		c.Apply(req)

		if got := req.URL.Query().Get(QueryParam); got != "test-token" {
			t.Errorf("query token = %q, want %q", got, "test-token")
		}
		if req.Header.Get(HeaderName) != "" {
			t.Error("token must not also appear in header")
		}
		// Existing query parameters survive.
		if got := req.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("symbol = %q, want %q", got, "AAPL")
		}
	})

	t.Run("idempotent across request clones", func(t *testing.T) {
		c, _ := New("test-token", PlacementQuery)

		base, _ := http.NewRequest(http.MethodGet, "https://finnhub.io/api/v1/quote?symbol=AAPL", nil)
		a := base.Clone(base.Context())
		b := base.Clone(base.Context())

		c.Apply(a)
		c.Apply(b)

		if a.URL.String() != b.URL.String() {
			t.Errorf("clones diverged: %q vs %q", a.URL.String(), b.URL.String())
		}
		if a.Header.Get(HeaderName) != "" || b.Header.Get(HeaderName) != "" {
			t.Error("query placement must not touch headers")
		}
	})
}

func TestStreamURL(t *testing.T) {
	c, _ := New("stream-token", PlacementHeader)

	got, err := c.StreamURL("wss://ws.finnhub.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "wss://ws.finnhub.io?token=stream-token" {
		t.Errorf("StreamURL = %q", got)
	}
}

func TestStringRedactsToken(t *testing.T) {
	c, _ := New("super-secret", PlacementHeader)
	if s := c.String(); strings.Contains(s, "super-secret") {
		t.Errorf("String() leaked the token: %q", s)
	}
}
