package storage

import "context"

//go:generate moq -out pairingstorage_mock.go . PairingStorage

// PairingStorage defines interface for persisted peer identity and pairing data.
// The peer ID is assigned once and reused on every start so the device stays
// reachable at the same address; the editor ID is what a viewer paired with.
type PairingStorage interface {
	// GetPeerID returns this device's persisted peer identifier.
	// Returns ErrPeerIDNotFound if the device never came online before.
	GetPeerID(ctx context.Context) (string, error)

	// SavePeerID persists the peer identifier assigned to this device
	SavePeerID(ctx context.Context, id string) error

	// GetEditorID returns the editor identifier this viewer paired with.
	// Returns ErrEditorIDNotFound if the device was never paired.
	GetEditorID(ctx context.Context) (string, error)

	// SaveEditorID persists the editor identifier a viewer paired with
	SaveEditorID(ctx context.Context, id string) error
}
