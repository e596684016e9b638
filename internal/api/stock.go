package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetQuote fetches the real-time quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var q Quote
	if err := c.get(ctx, "/quote", query, &q); err != nil {
		return nil, fmt.Errorf("get quote %s: %w", symbol, err)
	}

	return &q, nil
}

// GetCompanyProfile fetches the company profile for a symbol.
func (c *Client) GetCompanyProfile(ctx context.Context, symbol string) (*CompanyProfile, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var p CompanyProfile
	if err := c.get(ctx, "/stock/profile2", query, &p); err != nil {
		return nil, fmt.Errorf("get company profile %s: %w", symbol, err)
	}

	return &p, nil
}

// GetCandles fetches OHLCV bars for a symbol between from and to
// (UNIX seconds).
func (c *Client) GetCandles(ctx context.Context, symbol string, res Resolution, from, to int64) (*Candles, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("resolution", string(res))
	query.Set("from", strconv.FormatInt(from, 10))
	query.Set("to", strconv.FormatInt(to, 10))

	var candles Candles
	if err := c.get(ctx, "/stock/candle", query, &candles); err != nil {
		return nil, fmt.Errorf("get candles %s: %w", symbol, err)
	}

	return &candles, nil
}

// GetSymbols lists supported symbols for an exchange (e.g. "US").
func (c *Client) GetSymbols(ctx context.Context, exchange string) ([]Symbol, error) {
	query := url.Values{}
	query.Set("exchange", exchange)

	var symbols []Symbol
	if err := c.get(ctx, "/stock/symbol", query, &symbols); err != nil {
		return nil, fmt.Errorf("get symbols %s: %w", exchange, err)
	}

	return symbols, nil
}

// GetMarketStatus fetches the current market status for an exchange.
func (c *Client) GetMarketStatus(ctx context.Context, exchange string) (*MarketStatus, error) {
	query := url.Values{}
	query.Set("exchange", exchange)

	var status MarketStatus
	if err := c.get(ctx, "/stock/market-status", query, &status); err != nil {
		return nil, fmt.Errorf("get market status %s: %w", exchange, err)
	}

	return &status, nil
}
