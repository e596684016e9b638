package api

import (
	"testing"
)

// Upstream payload shape is not stable across records: optional fields
// are sometimes omitted or null. Decodes must succeed and report those
// fields as absent.
func TestSoftDecode(t *testing.T) {
	t.Run("profile with missing optional fields", func(t *testing.T) {
		body := []byte(`{"name": "Apple Inc", "ticker": "AAPL", "country": "US"}`)

		var p CompanyProfile
		if err := decodeInto(body, &p); err != nil {
			t.Fatalf("decode failed: %v", err)
		}

		if p.Name == nil || *p.Name != "Apple Inc" {
			t.Errorf("Name = %v, want Apple Inc", p.Name)
		}
		if p.MarketCapitalization != nil {
			t.Errorf("MarketCapitalization = %v, want absent", *p.MarketCapitalization)
		}
		if p.Logo != nil || p.IPO != nil {
			t.Error("omitted fields must read as absent")
		}
	})

	t.Run("null reads as absent, not decode error", func(t *testing.T) {
		body := []byte(`{"ticker": "AAPL", "marketCapitalization": null}`)

		var p CompanyProfile
		if err := decodeInto(body, &p); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if p.MarketCapitalization != nil {
			t.Error("null must decode as absent")
		}
	})

	t.Run("symbol list with ragged identifier coverage", func(t *testing.T) {
		body := []byte(`[
			{"symbol": "AAPL", "displaySymbol": "AAPL", "description": "APPLE INC", "figi": "BBG000B9XRY4", "currency": "USD"},
			{"symbol": "XYZ", "displaySymbol": "XYZ", "description": "XYZ CORP"}
		]`)

		var symbols []Symbol
		if err := decodeInto(body, &symbols); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(symbols) != 2 {
			t.Fatalf("len = %d, want 2", len(symbols))
		}
		if symbols[0].FIGI == nil || *symbols[0].FIGI != "BBG000B9XRY4" {
			t.Errorf("symbols[0].FIGI = %v", symbols[0].FIGI)
		}
		if symbols[1].FIGI != nil || symbols[1].Currency != nil {
			t.Error("symbols[1] identifiers must read as absent")
		}
	})

	t.Run("market status with closed-session nulls", func(t *testing.T) {
		body := []byte(`{"exchange": "US", "isOpen": false, "session": null, "timezone": "America/New_York", "t": 1700000000}`)

		var status MarketStatus
		if err := decodeInto(body, &status); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if status.IsOpen {
			t.Error("IsOpen = true, want false")
		}
		if status.Session != nil {
			t.Error("Session must read as absent outside trading hours")
		}
	})

	t.Run("no_data candles decode to empty arrays", func(t *testing.T) {
		body := []byte(`{"s": "no_data"}`)

		var candles Candles
		if err := decodeInto(body, &candles); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if candles.Status != "no_data" || len(candles.Close) != 0 {
			t.Errorf("candles = %+v", candles)
		}
	})
}
