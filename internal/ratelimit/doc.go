// Package ratelimit implements the client-side admission gate for the
// Finnhub request budget.
//
// Every REST call acquires one token before the request leaves the
// process. The bucket refills continuously, so short bursts up to the
// configured capacity pass immediately and sustained traffic converges
// on the refill rate. A true upstream rejection (HTTP 429) is handled by
// the response normalizer, not here.
package ratelimit
