package domain

import "errors"

var (
	// ErrCatalogUnavailable means no snapshot has been loaded yet. Fatal to
	// the call, never retried internally.
	ErrCatalogUnavailable = errors.New("catalog: unavailable")

	// ErrUnknownCity signals a knowledge-base/catalog inconsistency. The city
	// set is closed, so hitting this is a defect, not a user error.
	ErrUnknownCity = errors.New("knowledge: unknown city")
)
