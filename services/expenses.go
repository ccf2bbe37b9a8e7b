package services

import (
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
	"atelierbrocs/store"
)

// AddExpense appends a tax-inclusive expense. Append-only, like the
// client book.
func AddExpense(st *store.Store, date time.Time, label string, amount decimal.Decimal) (models.Expense, error) {
	if label == "" {
		return models.Expense{}, &models.ValidationError{Field: "categorie", Message: "expense label must not be empty"}
	}
	if amount.IsNegative() {
		return models.Expense{}, &models.ValidationError{Field: "montant_ttc", Message: "expense amount must not be negative"}
	}

	var created models.Expense
	err := withConflictRetry(st, func(snap *store.Snapshot) error {
		max := 0
		for _, e := range snap.Expenses {
			if e.ID > max {
				max = e.ID
			}
		}
		created = models.Expense{ID: max + 1, Date: date, Category: label, Amount: amount}
		snap.Expenses = append(snap.Expenses, created)
		return nil
	})
	if err != nil {
		return models.Expense{}, err
	}
	return created, nil
}

// Expenses returns all recorded expenses in sheet order.
func Expenses(st *store.Store) ([]models.Expense, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	return snap.Expenses, nil
}
