package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kharcha/dates"
	"kharcha/ledger"
	"kharcha/models"
)

// Default page size for the transaction list
const defaultPageSize = 10

// Handler contains the handlers for the API
type Handler struct {
	Store    *ledger.Store
	Settings *ledger.Settings
}

// NewHandler creates a new Handler
func NewHandler(store *ledger.Store, settings *ledger.Settings) *Handler {
	return &Handler{Store: store, Settings: settings}
}

// validDate parses a transaction date and rejects dates after today.
// Returns the canonical form of the date on success.
func validDate(value string) (string, bool) {
	d, ok := dates.Normalize(value)
	if !ok {
		return "", false
	}

	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.Local)
	if d.After(endOfToday) {
		return "", false
	}

	return dates.Canonical(d), true
}

// CreateTransaction records a new transaction
// @Summary Record a transaction
// @Description Record a new income or expense transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Category is required"})
		return
	}

	date, ok := validDate(req.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Date is invalid or in the future"})
		return
	}

	transaction := h.Store.Add(ledger.Input{
		Amount:   req.Amount,
		Category: category,
		Date:     date,
		Note:     strings.TrimSpace(req.Note),
		Type:     models.TransactionType(req.Type),
	})

	c.JSON(http.StatusCreated, TransactionResponse{Transaction: transaction})
}

// ListTransactions returns a page of the transaction list
// @Summary List transactions
// @Description Get transactions sorted by date descending, paginated
// @Tags transactions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} TransactionListResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	sizeStr := c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		size = defaultPageSize
	}

	transactions := h.Store.Transactions()
	totalPages := ledger.TotalPages(len(transactions), size)

	// The exposed page control never navigates outside [1, totalPages]
	if page > totalPages {
		page = totalPages
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Transactions: ledger.Page(transactions, page, size),
		Pagination: Pagination{
			Page:       page,
			PageSize:   size,
			TotalPages: totalPages,
			Total:      len(transactions),
		},
	})
}

// GetTransaction returns a single transaction by id
// @Summary Get a transaction
// @Description Get a single transaction by its id
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	transaction, ok := h.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, TransactionResponse{Transaction: transaction})
}

// UpdateTransaction replaces a stored transaction
// @Summary Update a transaction
// @Description Replace the transaction with the given id. Updating an id that does not exist leaves the collection unchanged.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Replacement transaction"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions/{id} [put]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Category is required"})
		return
	}

	date, ok := validDate(req.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Date is invalid or in the future"})
		return
	}

	transaction := models.Transaction{
		ID:       c.Param("id"),
		Amount:   req.Amount,
		Category: category,
		Date:     date,
		Note:     strings.TrimSpace(req.Note),
		Type:     models.TransactionType(req.Type),
	}
	h.Store.Update(transaction)

	c.JSON(http.StatusOK, TransactionResponse{Transaction: transaction})
}

// DeleteTransaction removes a transaction
// @Summary Delete a transaction
// @Description Remove the transaction with the given id. Deleting an id that does not exist is a no-op.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} StatusResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	h.Store.Delete(c.Param("id"))
	c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

// GetSummary returns the overall totals
// @Summary Get totals
// @Description Get income, expense and net totals over all transactions
// @Tags summary
// @Accept json
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Router /summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryResponse{
		Income:  h.Store.IncomeTotal(),
		Expense: h.Store.ExpenseTotal(),
		Net:     h.Store.NetTotal(),
	})
}

// GetMonthlySummary returns the trailing six-month breakdown
// @Summary Get monthly breakdown
// @Description Get income and expense totals for the current month and the five preceding it, oldest first
// @Tags summary
// @Accept json
// @Produce json
// @Success 200 {object} MonthlySummaryResponse
// @Failure 401 {object} ErrorResponse
// @Router /summary/monthly [get]
func (h *Handler) GetMonthlySummary(c *gin.Context) {
	months := ledger.MonthlyBreakdown(h.Store.Transactions(), time.Now())
	c.JSON(http.StatusOK, MonthlySummaryResponse{
		Months: months,
		Max:    ledger.MaxSeries(months),
	})
}

// GetCurrency returns the display currency preference
// @Summary Get currency
// @Description Get the saved display currency
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} CurrencyResponse
// @Failure 401 {object} ErrorResponse
// @Router /settings/currency [get]
func (h *Handler) GetCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, CurrencyResponse{Currency: h.Settings.Currency()})
}

// SetCurrency changes the display currency preference
// @Summary Set currency
// @Description Save the display currency; must be one of the supported currencies
// @Tags settings
// @Accept json
// @Produce json
// @Param request body CurrencyRequest true "Currency to save"
// @Success 200 {object} CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /settings/currency [put]
func (h *Handler) SetCurrency(c *gin.Context) {
	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	currency := models.Currency{Code: req.Code, Symbol: req.Symbol}
	if !currency.IsSupported() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported currency"})
		return
	}

	if err := h.Settings.SetCurrency(currency); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save currency: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, CurrencyResponse{Currency: currency})
}

// GetTheme returns the theme mode preference
// @Summary Get theme
// @Description Get the saved theme mode
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} ThemeResponse
// @Failure 401 {object} ErrorResponse
// @Router /settings/theme [get]
func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{Mode: string(h.Settings.Theme())})
}

// SetTheme changes the theme mode preference
// @Summary Set theme
// @Description Save the theme mode, either light or dark
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme mode to save"
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /settings/theme [put]
func (h *Handler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	mode := models.ThemeMode(req.Mode)
	if err := h.Settings.SetTheme(mode); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save theme: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Mode: req.Mode})
}
