// Package kv is the key-value persistence layer. The application state is a
// handful of independent JSON entries under fixed keys; Store is the only
// I/O dependency of the ledger and is injectable for testing.
package kv

import (
	"errors"
)

// Storage keys for the persisted application state.
const (
	// KeyTransactions holds the full transaction list as a JSON array
	KeyTransactions = "transactions_v1"

	// KeyCurrency holds the display currency preference as a JSON object
	KeyCurrency = "currency_v1"

	// KeyTheme holds the theme mode as a plain string
	KeyTheme = "theme_v1"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("key not found")

// Store is an opaque key-value storage abstraction
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(key string, value []byte) error

	// Close releases the underlying storage
	Close() error
}
