package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// get dispatches a GET request and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.dispatch(ctx, http.MethodGet, path, query, nil, out)
}

// post dispatches a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.dispatch(ctx, http.MethodPost, path, query, body, out)
}

// dispatch is the single pipeline every endpoint call funnels through:
// admission control, credential injection, transport, normalization.
// Errors come back as *Error; nothing is retried here.
func (c *Client) dispatch(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Acquire(ctx); err != nil {
		// Caller cancelled while waiting for admission.
		return err
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.creds.Apply(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return normalize(resp.StatusCode, resp.Header, respBody, out)
}

// normalize maps a completed transport outcome to a decoded value or a
// normalized *Error.
func normalize(status int, header http.Header, body []byte, out any) error {
	switch {
	case status >= 200 && status < 300:
		return decodeInto(body, out)

	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Status: status}

	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status}

	case status == http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimited,
			Status:     status,
			RetryAfter: retryAfterHint(header, body),
		}

	default:
		return &Error{
			Kind:    KindAPI,
			Status:  status,
			Message: extractMessage(status, body),
		}
	}
}

// decodeInto unmarshals a 2xx body. Absent or null fields decode to zero
// values or nil pointers — ragged upstream payloads are expected and must
// not fail the call. Only a structural mismatch is an error, and the
// diagnostic names the offending field or byte offset.
func decodeInto(body []byte, out any) error {
	if out == nil {
		return nil
	}

	err := json.Unmarshal(body, out)
	if err == nil {
		return nil
	}

	var diag string
	switch e := err.(type) {
	case *json.UnmarshalTypeError:
		field := e.Field
		if field == "" {
			field = "(document root)"
		}
		diag = fmt.Sprintf("field %s: cannot decode JSON %s into %s", field, e.Value, e.Type)
	case *json.SyntaxError:
		diag = fmt.Sprintf("invalid JSON at offset %d: %q", e.Offset, fragmentAt(body, e.Offset))
	default:
		diag = err.Error()
	}

	return &Error{
		Kind:       KindMalformed,
		Status:     http.StatusOK,
		Diagnostic: diag,
		cause:      err,
	}
}

// fragmentAt returns a short window of the body around offset.
func fragmentAt(body []byte, offset int64) string {
	const window = 20

	lo := int(offset) - window/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + window
	if hi > len(body) {
		hi = len(body)
	}
	return string(body[lo:hi])
}

// retryAfterHint parses the server's retry hint from the Retry-After
// header (delta-seconds or HTTP-date) or a retryAfter body field,
// falling back to DefaultRetryAfter.
func retryAfterHint(header http.Header, body []byte) time.Duration {
	if v := header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
		if at, err := http.ParseTime(v); err == nil {
			if d := time.Until(at); d > 0 {
				return d
			}
		}
	}

	var hint struct {
		RetryAfter float64 `json:"retryAfter"`
	}
	if err := json.Unmarshal(body, &hint); err == nil && hint.RetryAfter > 0 {
		return time.Duration(hint.RetryAfter * float64(time.Second))
	}

	return DefaultRetryAfter
}

// extractMessage pulls a best-effort message from an error body. Finnhub
// reports errors as {"error": "..."}; anything else is used verbatim.
func extractMessage(status int, body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		const maxLen = 200
		if len(msg) > maxLen {
			msg = msg[:maxLen] + "..."
		}
		return msg
	}

	return http.StatusText(status)
}
