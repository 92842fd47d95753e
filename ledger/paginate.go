package ledger

import (
	"sort"

	"kharcha/dates"
	"kharcha/models"
)

// SortedByDateDesc returns a copy of the list sorted most recent first. The
// sort is stable, so transactions on the same day keep their newest-added
// order from the source list. Unparseable dates sort last.
func SortedByDateDesc(transactions []models.Transaction) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := dates.Normalize(sorted[i].Date)
		dj, _ := dates.Normalize(sorted[j].Date)
		return di.After(dj)
	})

	return sorted
}

// Page returns the 1-indexed page of the date-descending transaction list.
// A page beyond the end yields an empty slice; clamping the page number into
// range is the caller's job. The result is recomputed from a fresh sort on
// every call, never cached.
func Page(transactions []models.Transaction, page int, size int) []models.Transaction {
	if page < 1 || size < 1 {
		return []models.Transaction{}
	}

	sorted := SortedByDateDesc(transactions)

	start := (page - 1) * size
	if start >= len(sorted) {
		return []models.Transaction{}
	}

	end := start + size
	if end > len(sorted) {
		end = len(sorted)
	}

	return sorted[start:end]
}

// TotalPages reports how many pages the collection spans, never less than
// one.
func TotalPages(count int, size int) int {
	if size < 1 {
		return 1
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}
