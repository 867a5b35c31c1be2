package internal

import "errors"

var (
	// ErrNoProvider reports an accessor used outside a provider scope.
	// This is an integration error, not a runtime condition to recover from.
	ErrNoProvider = errors.New("traduki: no provider in context")

	// ErrClosed reports an operation on a closed provider.
	ErrClosed = errors.New("traduki: provider is closed")
)
