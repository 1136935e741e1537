// Package clients provides the HTTP transport and request executor used by
// the content repository endpoint clients.
package clients

import "errors"

// Transport-level errors. The executor wraps them as the cause of a
// domain.ClientError of the operation's kind.
var (
	// ErrCircuitOpen is returned while the circuit breaker rejects requests.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrNilResponse is returned when a Transport reports neither a response
	// nor an error.
	ErrNilResponse = errors.New("transport returned no response")
)
