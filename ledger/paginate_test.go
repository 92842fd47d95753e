package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"kharcha/models"
)

// twentyFive builds 25 transactions with strictly descending dates.
func twentyFive() []models.Transaction {
	transactions := make([]models.Transaction, 25)
	for i := range transactions {
		transactions[i] = models.Transaction{
			ID:     fmt.Sprintf("tx-%02d", i),
			Amount: float64(i + 1),
			Date:   fmt.Sprintf("2024-01-%02d", 25-i),
			Type:   models.TypeExpense,
		}
	}
	return transactions
}

func TestSortedByDateDescMostRecentFirst(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "a", Date: "2024-01-10"},
		{ID: "b", Date: "2024-03-05"},
		{ID: "c", Date: "2024-02-20"},
	}

	sorted := SortedByDateDesc(transactions)
	assert.Equal(t, []string{"b", "c", "a"}, idsOf(sorted))

	// The source list is untouched
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(transactions))
}

func TestSortKeepsSourceOrderOnEqualDates(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "newest", Date: "2024-01-15"},
		{ID: "middle", Date: "2024-01-15"},
		{ID: "oldest", Date: "2024-01-15"},
	}

	sorted := SortedByDateDesc(transactions)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, idsOf(sorted))
}

func TestPageWindows(t *testing.T) {
	transactions := twentyFive()

	assert.Equal(t, 3, TotalPages(len(transactions), 10))
	assert.Len(t, Page(transactions, 1, 10), 10)
	assert.Len(t, Page(transactions, 2, 10), 10)
	assert.Len(t, Page(transactions, 3, 10), 5)
}

func TestPageConcatenationReproducesSortedList(t *testing.T) {
	transactions := twentyFive()

	for size := 1; size <= 7; size++ {
		var collected []models.Transaction
		for page := 1; page <= TotalPages(len(transactions), size); page++ {
			collected = append(collected, Page(transactions, page, size)...)
		}
		assert.Equal(t, SortedByDateDesc(transactions), collected, "size %d", size)
	}
}

func TestPageOutOfRangeIsEmpty(t *testing.T) {
	transactions := twentyFive()

	assert.Empty(t, Page(transactions, 4, 10))
	assert.Empty(t, Page(transactions, 0, 10))
	assert.Empty(t, Page(transactions, 1, 0))
	assert.Empty(t, Page(nil, 1, 10))
}

func TestTotalPagesNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}
