// Package ledger owns the authoritative in-memory transaction list and the
// derived views over it. Every mutation is applied to memory first and then
// the full list is written back to storage; a write failure is logged and
// swallowed, so the session state never loses an edit to a transient
// storage fault. The persisted copy is only read back at startup.
package ledger

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kharcha/dates"
	"kharcha/kv"
	"kharcha/models"
)

// Input describes a transaction to be recorded; the id is assigned by Add.
type Input struct {
	Amount   float64
	Category string
	Date     string
	Note     string
	Type     models.TransactionType
}

// Store holds the transaction list for the running session.
type Store struct {
	mu     sync.RWMutex
	kv     kv.Store
	logger zerolog.Logger
	items  []models.Transaction
	loaded bool
}

// NewStore creates a Store over the given key-value backend.
func NewStore(backend kv.Store, logger zerolog.Logger) *Store {
	return &Store{kv: backend, logger: logger}
}

// Load replaces the in-memory state with the persisted transaction list.
// An absent key, an unparseable blob or an unavailable backend all resolve
// to an empty list; none of them is fatal. Every recovered date is re-run
// through the normalizer and stored back in canonical form, correcting any
// non-canonical strings persisted by earlier sessions.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.loaded = true

	raw, err := s.kv.Get(kv.KeyTransactions)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("failed to load transactions")
		}
		return
	}

	transactions, err := models.DecodeTransactions(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to parse stored transactions")
		return
	}

	for i := range transactions {
		transactions[i].Normalize()
		if d, ok := dates.Normalize(transactions[i].Date); ok {
			transactions[i].Date = dates.Canonical(d)
		}
	}

	s.items = transactions
}

// Loaded reports whether the initial load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Add records a new transaction. The record is prepended so the newest
// creation lists first regardless of its date, and the type defaults to
// expense when unset. The returned transaction carries the assigned id.
func (s *Store) Add(in Input) models.Transaction {
	transaction := models.Transaction{
		ID:       uuid.NewString(),
		Amount:   in.Amount,
		Category: in.Category,
		Date:     in.Date,
		Note:     in.Note,
		Type:     in.Type,
	}
	transaction.Normalize()

	s.mu.Lock()
	s.items = append([]models.Transaction{transaction}, s.items...)
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.persist(snapshot)
	return transaction
}

// Delete removes the transaction with the given id. A missing id is a
// no-op, not an error; the list is persisted either way.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	filtered := s.items[:0]
	for _, t := range s.items {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.items = filtered
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.persist(snapshot)
}

// Update replaces the stored transaction whose id matches, keeping its
// position in the list. A missing id is a no-op.
func (s *Store) Update(transaction models.Transaction) {
	transaction.Normalize()

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == transaction.ID {
			s.items[i] = transaction
			break
		}
	}
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.persist(snapshot)
}

// Transactions returns a snapshot copy of the current list, newest-added
// first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Get returns the transaction with the given id, if present.
func (s *Store) Get(id string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// IncomeTotal sums the amounts of all income transactions.
func (s *Store) IncomeTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, t := range s.items {
		if t.Type == models.TypeIncome {
			total += t.Amount
		}
	}
	return total
}

// ExpenseTotal sums the amounts of all expense transactions.
func (s *Store) ExpenseTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, t := range s.items {
		if t.Type == models.TypeExpense {
			total += t.Amount
		}
	}
	return total
}

// NetTotal is income minus expenses.
func (s *Store) NetTotal() float64 {
	return s.IncomeTotal() - s.ExpenseTotal()
}

// snapshot copies the current list; callers must hold at least a read lock.
func (s *Store) snapshot() []models.Transaction {
	copied := make([]models.Transaction, len(s.items))
	copy(copied, s.items)
	return copied
}

// persist writes the full list back to storage. Failures are logged at
// warning level and never propagated: the in-memory state stays
// authoritative for the session and is re-written whole on the next
// mutation.
func (s *Store) persist(transactions []models.Transaction) {
	data, err := models.EncodeTransactions(transactions)
	if err == nil {
		err = s.kv.Set(kv.KeyTransactions, data)
	}
	if err != nil {
		s.logger.Warn().Err(err).Int("count", len(transactions)).Msg("failed to persist transactions")
	}
}
