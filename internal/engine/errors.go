package engine

import "errors"

var (
	// ErrFetchFailed covers any remote failure: network, decoding, server error.
	ErrFetchFailed = errors.New("fetch currencies failed")
	// ErrNoDataAvailable means the fetch failed and nothing was persisted to fall back on.
	ErrNoDataAvailable = errors.New("no currency data available")
)
