// ABOUTME: Badger-backed Backend implementation, the default on disk.
// ABOUTME: Stores one key per collection under the configured data directory.
package storage

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerBackend stores collection documents in a local Badger database.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger database at dir.
func OpenBadger(dir string) (*BadgerBackend, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &BadgerBackend{db: db}, nil
}

// Get reads the collection document, returning (nil, nil) if absent.
func (b *BadgerBackend) Get(collection string) ([]byte, error) {
	var doc []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(collection))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return doc, nil
}

// Set writes the collection document.
func (b *BadgerBackend) Set(collection string, doc []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(collection), doc)
	})
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

// Delete removes the collection document. Absent keys are not an error.
func (b *BadgerBackend) Delete(collection string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(collection))
	})
	if err != nil {
		return fmt.Errorf("delete collection %s: %w", collection, err)
	}
	return nil
}

// Close closes the underlying Badger database.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}
