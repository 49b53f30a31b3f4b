package store

import "errors"

// Sentinel errors returned by the REST client and repositories to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrNoRows is returned when a store operation completes successfully
	// but matches zero rows where at least one was expected (e.g. update
	// or delete by a non-existent id, lookup of an unknown email).
	// Distinct from a store failure: the store answered, the data simply
	// is not there.
	ErrNoRows = errors.New("no rows matched")

	// ErrStoreUnavailable is returned when the store cannot be reached at
	// all: connection refused, DNS failure, or timeout. There is no retry;
	// the error propagates to the caller immediately.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreRejected is returned when the store answers with a non-2xx
	// status (bad API key, constraint violation, malformed filter). The
	// store's response body is attached for the logs; it never reaches an
	// HTTP response.
	ErrStoreRejected = errors.New("store rejected request")

	// ErrDecodingResponse is returned when the store's response body
	// cannot be decoded into the expected row shape.
	ErrDecodingResponse = errors.New("error decoding store response")
)
