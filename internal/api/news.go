package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetMarketNews fetches general market news for a category. minID > 0
// restricts results to news after that ID.
func (c *Client) GetMarketNews(ctx context.Context, category NewsCategory, minID int64) ([]NewsItem, error) {
	query := url.Values{}
	query.Set("category", string(category))
	if minID > 0 {
		query.Set("minId", strconv.FormatInt(minID, 10))
	}

	var items []NewsItem
	if err := c.get(ctx, "/news", query, &items); err != nil {
		return nil, fmt.Errorf("get market news %s: %w", category, err)
	}

	return items, nil
}

// GetCompanyNews fetches company news for a symbol between from and to
// dates (YYYY-MM-DD).
func (c *Client) GetCompanyNews(ctx context.Context, symbol, from, to string) ([]NewsItem, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("from", from)
	query.Set("to", to)

	var items []NewsItem
	if err := c.get(ctx, "/company-news", query, &items); err != nil {
		return nil, fmt.Errorf("get company news %s: %w", symbol, err)
	}

	return items, nil
}
