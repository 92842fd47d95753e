package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"kharcha/kv"
	"kharcha/ledger"
	"kharcha/models"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *ledger.Store, func()) {
	// Set test mode
	gin.SetMode(gin.TestMode)

	// Create temporary directory for the test store
	tempDir, err := os.MkdirTemp("", "test-kv-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	backend, err := kv.OpenBadger(tempDir)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to open store: %v", err)
	}

	store := ledger.NewStore(backend, zerolog.Nop())
	store.Load()
	settings := ledger.NewSettings(backend, zerolog.Nop())

	router := SetupRouter(store, settings)

	cleanup := func() {
		backend.Close()
		os.RemoveAll(tempDir)
	}

	return router, store, cleanup
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTransaction(t *testing.T) {
	router, _, cleanup := setupTestEnvironment(t)
	defer cleanup()

	w := doJSON(router, "POST", "/api/v1/transactions", CreateTransactionRequest{
		Amount:   250,
		Category: "Food",
		Date:     "2024-01-15",
		Note:     "lunch",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp TransactionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Transaction.ID)
	assert.Equal(t, 250.0, resp.Transaction.Amount)
	assert.Equal(t, "Food", resp.Transaction.Category)
	assert.Equal(t, "2024-01-15", resp.Transaction.Date)
	assert.Equal(t, "lunch", resp.Transaction.Note)

	// Type defaults to expense when unspecified
	assert.Equal(t, models.TypeExpense, resp.Transaction.Type)
}

func TestCreateTransactionValidation(t *testing.T) {
	router, _, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cases := []struct {
		name string
		req  CreateTransactionRequest
	}{
		{"zero amount", CreateTransactionRequest{Amount: 0, Category: "Food", Date: "2024-01-15"}},
		{"negative amount", CreateTransactionRequest{Amount: -5, Category: "Food", Date: "2024-01-15"}},
		{"missing category", CreateTransactionRequest{Amount: 10, Date: "2024-01-15"}},
		{"whitespace category", CreateTransactionRequest{Amount: 10, Category: "   ", Date: "2024-01-15"}},
		{"missing date", CreateTransactionRequest{Amount: 10, Category: "Food"}},
		{"garbage date", CreateTransactionRequest{Amount: 10, Category: "Food", Date: "soon"}},
		{"future date", CreateTransactionRequest{Amount: 10, Category: "Food", Date: "2099-01-01"}},
		{"unknown type", CreateTransactionRequest{Amount: 10, Category: "Food", Date: "2024-01-15", Type: "transfer"}},
	}

	for _, tc := range cases {
		w := doJSON(router, "POST", "/api/v1/transactions", tc.req)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
	}
}

func TestListTransactionsPagination(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	for i := 0; i < 25; i++ {
		store.Add(ledger.Input{Amount: float64(i + 1), Category: "Food", Date: "2024-01-15", Type: models.TypeExpense})
	}

	w := doJSON(router, "GET", "/api/v1/transactions?page=3&page_size=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp TransactionListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Transactions, 5)
	assert.Equal(t, 3, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 25, resp.Pagination.Total)

	// A page beyond the end is clamped to the last page
	w = doJSON(router, "GET", "/api/v1/transactions?page=99&page_size=10", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Pagination.Page)
	assert.Len(t, resp.Transactions, 5)
}

func TestListTransactionsSortedByDateDesc(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	store.Add(ledger.Input{Amount: 1, Category: "Food", Date: "2024-01-10", Type: models.TypeExpense})
	store.Add(ledger.Input{Amount: 2, Category: "Rent", Date: "2024-03-05", Type: models.TypeExpense})
	store.Add(ledger.Input{Amount: 3, Category: "Travel", Date: "2024-02-20", Type: models.TypeExpense})

	w := doJSON(router, "GET", "/api/v1/transactions", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp TransactionListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Transactions, 3)
	assert.Equal(t, "2024-03-05", resp.Transactions[0].Date)
	assert.Equal(t, "2024-02-20", resp.Transactions[1].Date)
	assert.Equal(t, "2024-01-10", resp.Transactions[2].Date)
}

func TestGetTransaction(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	tx := store.Add(ledger.Input{Amount: 10, Category: "Food", Date: "2024-01-15", Type: models.TypeExpense})

	w := doJSON(router, "GET", "/api/v1/transactions/"+tx.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/v1/transactions/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTransaction(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	tx := store.Add(ledger.Input{Amount: 10, Category: "Food", Date: "2024-01-15", Type: models.TypeExpense})

	w := doJSON(router, "PUT", "/api/v1/transactions/"+tx.ID, UpdateTransactionRequest{
		Amount:   2000,
		Category: "Salary",
		Date:     "2024-01-31",
		Type:     "income",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated, ok := store.Get(tx.ID)
	assert.True(t, ok)
	assert.Equal(t, 2000.0, updated.Amount)
	assert.Equal(t, models.TypeIncome, updated.Type)
}

func TestUpdateMissingIDLeavesStoreUnchanged(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	store.Add(ledger.Input{Amount: 10, Category: "Food", Date: "2024-01-15", Type: models.TypeExpense})
	before := store.Transactions()

	w := doJSON(router, "PUT", "/api/v1/transactions/no-such-id", UpdateTransactionRequest{
		Amount:   1,
		Category: "X",
		Date:     "2024-01-01",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, store.Transactions())
}

func TestDeleteTransaction(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	tx := store.Add(ledger.Input{Amount: 10, Category: "Food", Date: "2024-01-15", Type: models.TypeExpense})

	w := doJSON(router, "DELETE", "/api/v1/transactions/"+tx.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Transactions())

	// Deleting again is still a no-op success
	w = doJSON(router, "DELETE", "/api/v1/transactions/"+tx.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSummary(t *testing.T) {
	router, store, cleanup := setupTestEnvironment(t)
	defer cleanup()

	store.Add(ledger.Input{Amount: 1000, Category: "Salary", Date: "2024-01-01", Type: models.TypeIncome})
	store.Add(ledger.Input{Amount: 250, Category: "Food", Date: "2024-01-15", Type: models.TypeExpense})

	w := doJSON(router, "GET", "/api/v1/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SummaryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1000.0, resp.Income)
	assert.Equal(t, 250.0, resp.Expense)
	assert.Equal(t, 750.0, resp.Net)
}

func TestGetMonthlySummary(t *testing.T) {
	router, _, cleanup := setupTestEnvironment(t)
	defer cleanup()

	w := doJSON(router, "GET", "/api/v1/summary/monthly", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp MonthlySummaryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Months, 6)
	assert.GreaterOrEqual(t, resp.Max, 1.0)
}

func TestCurrencySettings(t *testing.T) {
	router, _, cleanup := setupTestEnvironment(t)
	defer cleanup()

	w := doJSON(router, "GET", "/api/v1/settings/currency", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp CurrencyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INR", resp.Currency.Code)

	w = doJSON(router, "PUT", "/api/v1/settings/currency", CurrencyRequest{Code: "USD", Symbol: "$"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/v1/settings/currency", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "USD", resp.Currency.Code)

	// Currencies off the supported list are rejected
	w = doJSON(router, "PUT", "/api/v1/settings/currency", CurrencyRequest{Code: "XYZ", Symbol: "?"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestThemeSettings(t *testing.T) {
	router, _, cleanup := setupTestEnvironment(t)
	defer cleanup()

	w := doJSON(router, "GET", "/api/v1/settings/theme", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ThemeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dark", resp.Mode)

	w = doJSON(router, "PUT", "/api/v1/settings/theme", ThemeRequest{Mode: "light"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/v1/settings/theme", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "light", resp.Mode)

	w = doJSON(router, "PUT", "/api/v1/settings/theme", ThemeRequest{Mode: "sepia"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	router, _, cleanup := setupTestEnvironment(t)
	defer cleanup()

	t.Setenv("API_TOKEN", "test-token")

	// Create request without token
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/transactions", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Create request with invalid token
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/transactions", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Create request with valid token
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/transactions", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
