package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cashbook/internal/models"
)

const (
	keyDocument = "document"
)

// LoadState returns the last saved document.
// A missing or unreadable stored value falls back to a fresh empty document:
// the device must keep functioning even when local persistence got corrupted.
func (s *Storage) LoadState(ctx context.Context) (*models.Document, error) {
	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return fmt.Errorf("state bucket not found")
		}

		raw := bucket.Get([]byte(keyDocument))
		if raw == nil {
			// Первый запуск устройства — документа еще нет
			return nil
		}

		var stored models.Document
		if err := json.Unmarshal(raw, &stored); err != nil {
			// Поврежденное значение приравнивается к отсутствующему
			return nil
		}

		doc = &stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	if doc == nil {
		return models.NewDocument(models.CurrentDateLabel()), nil
	}

	return doc, nil
}

// SaveState overwrites the stored document (write-through on every change)
func (s *Storage) SaveState(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return fmt.Errorf("state bucket not found")
		}

		if err := bucket.Put([]byte(keyDocument), raw); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		return nil
	})
}
