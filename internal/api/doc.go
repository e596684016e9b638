// Package api provides the Finnhub REST API client.
//
// Endpoints:
//   - Production: https://finnhub.io/api/v1
//
// Every call runs through one dispatch pipeline: rate-limit admission,
// credential injection, transport, response normalization. Failures come
// back as *Error with a closed Kind set; the client never retries and
// never caches — both are the caller's decision.
package api
