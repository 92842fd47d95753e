package api

import (
	"kharcha/ledger"
	"kharcha/models"
)

// CreateTransactionRequest is the payload for recording a transaction
type CreateTransactionRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Note     string  `json:"note"`
	Type     string  `json:"type" binding:"omitempty,oneof=income expense"`
}

// UpdateTransactionRequest replaces a stored transaction wholesale
type UpdateTransactionRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Note     string  `json:"note"`
	Type     string  `json:"type" binding:"omitempty,oneof=income expense"`
}

// TransactionResponse is the response for a single transaction
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// TransactionListResponse is the response for a page of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   Pagination           `json:"pagination"`
}

// Pagination contains pagination information
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// SummaryResponse is the response for the overall totals
type SummaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MonthlySummaryResponse is the response for the six-month breakdown
type MonthlySummaryResponse struct {
	Months []ledger.MonthBucket `json:"months"`
	Max    float64              `json:"max"`
}

// CurrencyRequest is the payload for changing the display currency
type CurrencyRequest struct {
	Code   string `json:"code" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

// CurrencyResponse is the response for the display currency
type CurrencyResponse struct {
	Currency models.Currency `json:"currency"`
}

// ThemeRequest is the payload for changing the theme mode
type ThemeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=light dark"`
}

// ThemeResponse is the response for the theme mode
type ThemeResponse struct {
	Mode string `json:"mode"`
}

// StatusResponse acknowledges a mutation with no payload
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the response for an error
type ErrorResponse struct {
	Error string `json:"error"`
}
