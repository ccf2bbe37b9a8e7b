package services

import (
	"atelierbrocs/models"
	"atelierbrocs/store"
)

// Dashboard bundles everything the results view needs for one period.
type Dashboard struct {
	Aggregate PeriodAggregate
	Payout    Payout
	// Years available in the sales history, for the period selector.
	Years []int
	// Sales that fall in the requested period, newest first.
	Sales []models.Sale
}

// BuildDashboard loads one snapshot and derives the period figures from
// it. Month 0 means the whole year.
func BuildDashboard(st *store.Store, cfg Config, year, month int) (Dashboard, error) {
	snap, err := st.Load()
	if err != nil {
		return Dashboard{}, err
	}

	agg := Aggregate(snap.Sales, snap.Expenses, snap.Inventory, year, month)

	var periodSales []models.Sale
	for _, s := range snap.Sales {
		if inPeriod(s.Date, year, month) {
			periodSales = append(periodSales, s)
		}
	}
	for i, j := 0, len(periodSales)-1; i < j; i, j = i+1, j-1 {
		periodSales[i], periodSales[j] = periodSales[j], periodSales[i]
	}

	return Dashboard{
		Aggregate: agg,
		Payout:    ComputePayout(agg, cfg),
		Years:     SaleYears(snap.Sales),
		Sales:     periodSales,
	}, nil
}
