package errors

import (
	"errors"
)

// Sentinel errors usable with errors.Is() across layers.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrModelUnavailable   = errors.New("relevance model unavailable")
	ErrInvalidInput       = errors.New("invalid input")
	ErrArticleNotFound    = errors.New("article not found")
)

// IsStorageError checks if an error represents a storage-collaborator problem.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsModelError checks if an error represents a relevance-model problem.
func IsModelError(err error) bool {
	return errors.Is(err, ErrModelUnavailable)
}

// IsInvalidInput checks if an error represents a rejected request parameter.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsArticleNotFound checks if an error represents a missing article.
func IsArticleNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound)
}
