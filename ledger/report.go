package ledger

import (
	"time"

	"kharcha/dates"
	"kharcha/models"
)

// MonthBucket is one calendar-month slot in the six-month breakdown.
type MonthBucket struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyBreakdown buckets transactions into the six calendar months ending
// at now, oldest first. All six buckets are present even when a month had no
// activity. Transactions outside the window, or with unparseable dates, are
// skipped. Both the bucket keys and the per-transaction keys use local
// calendar fields, so a transaction near a month boundary always lands in
// the month the user saw when recording it.
func MonthlyBreakdown(transactions []models.Transaction, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, 6)
	index := make(map[string]int, 6)

	for i := 5; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.Local)
		key := dates.MonthKey(month)
		index[key] = len(buckets)
		buckets = append(buckets, MonthBucket{Month: key})
	}

	for _, t := range transactions {
		d, ok := dates.Normalize(t.Date)
		if !ok {
			continue
		}
		i, ok := index[dates.MonthKey(d)]
		if !ok {
			continue
		}
		if t.Type == models.TypeIncome {
			buckets[i].Income += t.Amount
		} else {
			buckets[i].Expense += t.Amount
		}
	}

	return buckets
}

// MaxSeries returns the largest single income or expense value across the
// series, never below 1 so bar heights can safely divide by it.
func MaxSeries(buckets []MonthBucket) float64 {
	max := 1.0
	for _, b := range buckets {
		if b.Income > max {
			max = b.Income
		}
		if b.Expense > max {
			max = b.Expense
		}
	}
	return max
}
