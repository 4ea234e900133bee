package gocardless

import "errors"

var (
	// ErrPaymentNotFound is returned on HTTP 404.
	ErrPaymentNotFound = errors.New("gocardless payment not found")

	// ErrProviderUnavailable covers transport errors, timeouts, 429 and 5xx.
	// Only these are retried.
	ErrProviderUnavailable = errors.New("gocardless unavailable")

	// ErrProviderRejected covers the remaining 4xx responses, e.g. an invalid
	// access token.
	ErrProviderRejected = errors.New("gocardless rejected request")
)
