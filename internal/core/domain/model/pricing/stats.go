package pricing

import "github.com/shopspring/decimal"

// ChangeStats aggregates the price-ledger entries of an organization over a
// time range.
type ChangeStats struct {
	// TotalChanges counts all entries in the range.
	TotalChanges int

	// Increases counts entries with reason price_increase.
	Increases int

	// Decreases counts entries with reason price_decrease.
	Decreases int

	// Promotions counts entries with reason promotion.
	Promotions int

	// Corrections counts entries with reason correction.
	Corrections int

	// AverageChangePercentage is the arithmetic mean of
	// (price - previousPrice) / previousPrice * 100 over the entries with a
	// non-nil, positive previous price. Nil when no entry qualifies.
	AverageChangePercentage *decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeChangeStats aggregates entries into ChangeStats. The caller selects
// the entries (typically by organization and effective-from range); this
// function only counts and averages. Entries without a positive previous
// price are counted but excluded from the average, so the initial entry of
// each product never skews it.
func ComputeChangeStats(entries []*PriceEntry) ChangeStats {
	stats := ChangeStats{TotalChanges: len(entries)}

	sum := decimal.Zero
	qualified := 0

	for _, entry := range entries {
		switch entry.Reason() {
		case PriceIncrease:
			stats.Increases++
		case PriceDecrease:
			stats.Decreases++
		case Promotion:
			stats.Promotions++
		case Correction:
			stats.Corrections++
		}

		prev := entry.PreviousPrice()
		if prev == nil || !prev.Amount().IsPositive() {
			continue
		}

		change := entry.Price().Amount().Sub(prev.Amount()).Div(prev.Amount()).Mul(hundred)
		sum = sum.Add(change)
		qualified++
	}

	if qualified > 0 {
		avg := sum.Div(decimal.NewFromInt(int64(qualified)))
		stats.AverageChangePercentage = &avg
	}

	return stats
}
