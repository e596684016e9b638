// Package poller implements the quote poller.
//
// The poller:
//   - Fetches quotes for a configured symbol list on a fixed interval
//   - Bounds request concurrency; the client's rate limiter still gates
//     every call underneath
//   - Hands each observation to a SampleHandler as a model.QuoteSample
package poller
