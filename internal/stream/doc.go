// Package stream implements the Finnhub WebSocket streaming client.
//
// One logical connection per credential; subscriptions are controlled
// with {"type": "subscribe"/"unsubscribe", "symbol": ...} frames, and
// the server pushes trade, news, and press-release messages.
//
// Known limitations: the client does not reconnect after a connection
// drop and sends no heartbeats. A consumer that needs a durable feed
// watches Errors() and dials a fresh client.
package stream
