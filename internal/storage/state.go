package storage

import (
	"context"

	"github.com/iudanet/cashbook/internal/models"
)

//go:generate moq -out statestorage_mock.go . StateStorage

// StateStorage defines interface for persisting the replicated document on device
type StateStorage interface {
	// LoadState returns the last saved document.
	// A missing or unreadable stored value yields a fresh empty document,
	// never an error to the caller.
	LoadState(ctx context.Context) (*models.Document, error)

	// SaveState overwrites any previously stored document.
	// Safe to call on every state change (write-through, no batching).
	SaveState(ctx context.Context, doc *models.Document) error
}
