package storage

import "errors"

// Common storage errors
var (
	// ErrPeerIDNotFound indicates that no peer identifier was persisted yet
	ErrPeerIDNotFound = errors.New("peer identifier not found")

	// ErrEditorIDNotFound indicates that the device was never paired with an editor
	ErrEditorIDNotFound = errors.New("editor identifier not found")
)
