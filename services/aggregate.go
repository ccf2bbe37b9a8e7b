package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

// PeriodAggregate is the monthly (or yearly, when Month is 0) rollup
// the dashboard and the compensation engine consume.
type PeriodAggregate struct {
	Year  int
	Month int // 1-12, or 0 for a whole-year aggregate

	// Revenue is the sum of final sale prices in the period.
	Revenue decimal.Decimal
	// NetMarginTotal is the sum of per-sale net margins in the period.
	NetMarginTotal decimal.Decimal
	// ExpenseTotal is the sum of tax-inclusive expenses in the period.
	ExpenseTotal decimal.Decimal
	// NetProfit is NetMarginTotal minus ExpenseTotal.
	NetProfit decimal.Decimal
	// HoursWorked sums the hour meters of the inventory items that the
	// period's sales reference. Hours logged on unsold items, or on
	// items sold in another period, do not count here.
	HoursWorked float64
}

// Aggregate rolls up sales and expenses for year, and for month when
// month is 1-12. It is a pure function: inputs are never mutated and
// the same inputs always produce the same aggregate.
func Aggregate(sales []models.Sale, expenses []models.Expense, inventory []models.InventoryItem, year, month int) PeriodAggregate {
	agg := PeriodAggregate{
		Year:           year,
		Month:          month,
		Revenue:        decimal.Zero,
		NetMarginTotal: decimal.Zero,
		ExpenseTotal:   decimal.Zero,
		NetProfit:      decimal.Zero,
	}

	soldItemIDs := make(map[int]bool)
	for _, s := range sales {
		if !inPeriod(s.Date, year, month) {
			continue
		}
		agg.Revenue = agg.Revenue.Add(s.FinalPrice)
		agg.NetMarginTotal = agg.NetMarginTotal.Add(s.NetMargin)
		soldItemIDs[s.ItemID] = true
	}

	for _, e := range expenses {
		if inPeriod(e.Date, year, month) {
			agg.ExpenseTotal = agg.ExpenseTotal.Add(e.Amount)
		}
	}

	for _, it := range inventory {
		if soldItemIDs[it.ID] {
			agg.HoursWorked += it.HoursSpent
		}
	}

	agg.NetProfit = agg.NetMarginTotal.Sub(agg.ExpenseTotal)
	return agg
}

// SaleYears returns the distinct years present in the sales history,
// most recent first, for the dashboard's year selector.
func SaleYears(sales []models.Sale) []int {
	seen := make(map[int]bool)
	var years []int
	for _, s := range sales {
		y := s.Date.Year()
		if y > 1 && !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func inPeriod(date time.Time, year, month int) bool {
	if date.Year() != year {
		return false
	}
	return month == 0 || int(date.Month()) == month
}
