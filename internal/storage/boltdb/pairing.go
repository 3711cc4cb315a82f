package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cashbook/internal/storage"
)

const (
	keyPeerID   = "peer_id"
	keyEditorID = "editor_id"
)

// GetPeerID retrieves this device's persisted peer identifier.
// Returns storage.ErrPeerIDNotFound if the device never came online before.
func (s *Storage) GetPeerID(ctx context.Context) (string, error) {
	return s.getPairingKey(keyPeerID, storage.ErrPeerIDNotFound)
}

// SavePeerID persists the peer identifier assigned to this device
func (s *Storage) SavePeerID(ctx context.Context, id string) error {
	return s.savePairingKey(keyPeerID, id)
}

// GetEditorID retrieves the editor identifier this viewer paired with.
// Returns storage.ErrEditorIDNotFound if the device was never paired.
func (s *Storage) GetEditorID(ctx context.Context) (string, error) {
	return s.getPairingKey(keyEditorID, storage.ErrEditorIDNotFound)
}

// SaveEditorID persists the editor identifier a viewer paired with
func (s *Storage) SaveEditorID(ctx context.Context, id string) error {
	return s.savePairingKey(keyEditorID, id)
}

func (s *Storage) getPairingKey(key string, notFound error) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPairing)
		if bucket == nil {
			return fmt.Errorf("pairing bucket not found")
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			return notFound
		}

		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *Storage) savePairingKey(key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPairing)
		if bucket == nil {
			return fmt.Errorf("pairing bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}
