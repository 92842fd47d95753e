package models

import (
	"encoding/json"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	// TypeIncome marks a transaction that adds to the balance
	TypeIncome TransactionType = "income"

	// TypeExpense marks a transaction that subtracts from the balance
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense event
type Transaction struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note,omitempty"`
	Type     TransactionType `json:"type"`
}

// Normalize fills in the default type for records that were stored without one
func (t *Transaction) Normalize() {
	if t.Type == "" {
		t.Type = TypeExpense
	}
}

// ToJSON converts the transaction to JSON
func (t *Transaction) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

// FromJSON populates the transaction from JSON
func (t *Transaction) FromJSON(data []byte) error {
	return json.Unmarshal(data, t)
}

// EncodeTransactions converts a full transaction list to JSON for storage
func EncodeTransactions(transactions []Transaction) ([]byte, error) {
	if transactions == nil {
		transactions = []Transaction{}
	}
	return json.Marshal(transactions)
}

// DecodeTransactions parses a stored transaction list
func DecodeTransactions(data []byte) ([]Transaction, error) {
	var transactions []Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
