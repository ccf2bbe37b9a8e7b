package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"atelierbrocs/models"
	"atelierbrocs/services"
	"atelierbrocs/store"
)

// HandleExpenseList returns all recorded expenses.
func HandleExpenseList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		expenses, err := services.Expenses(st)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusOK, expenses)
	}
}

// HandleExpenseCreate records a tax-inclusive expense.
func HandleExpenseCreate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return writeError(e, &models.ValidationError{Message: "invalid form data"})
		}

		amount, err := formDecimal(e, "montant_ttc")
		if err != nil {
			return writeError(e, err)
		}
		date, err := formDate(e, "date")
		if err != nil {
			return writeError(e, err)
		}

		expense, err := services.AddExpense(st, date, e.Request.FormValue("categorie"), amount)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusCreated, expense)
	}
}
