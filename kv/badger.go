package kv

import (
	"os"

	"github.com/dgraph-io/badger/v3"
)

// Badger is the production Store, backed by an embedded Badger database.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (creating if necessary) a Badger store in dataDir.
func OpenBadger(dataDir string) (*Badger, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	options := badger.DefaultOptions(dataDir)
	options.Logger = nil // Disable logging

	db, err := badger.Open(options)
	if err != nil {
		return nil, err
	}

	return &Badger{db: db}, nil
}

// Get returns the value stored under key
func (b *Badger) Get(key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key
func (b *Badger) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Close closes the database
func (b *Badger) Close() error {
	return b.db.Close()
}

// RunGC runs one round of garbage collection on the value log. A round
// that found nothing to rewrite is not an error.
func (b *Badger) RunGC() error {
	err := b.db.RunValueLogGC(0.5)
	if err == badger.ErrNoRewrite {
		return nil
	}
	return err
}
