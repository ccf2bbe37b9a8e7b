package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"

	"atelierbrocs/testhelpers"
)

func TestHandleExpenseCreate(t *testing.T) {
	st := testhelpers.NewTestStore(t)

	e, rec := newTestFormEvent("/depenses", url.Values{
		"categorie":   {"Essence"},
		"montant_ttc": {"12,50"},
		"date":        {"2025-03-10"},
	})
	if err := HandleExpenseCreate(st)(e); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body)
	}

	snap, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Expenses) != 1 {
		t.Fatalf("got %d expenses, want 1", len(snap.Expenses))
	}
	exp := snap.Expenses[0]
	if exp.Category != "Essence" || !exp.Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expense = %+v", exp)
	}
	if exp.Date.Format("2006-01-02") != "2025-03-10" {
		t.Errorf("date = %v", exp.Date)
	}
}

func TestHandleExpenseCreate_BadAmount(t *testing.T) {
	st := testhelpers.NewTestStore(t)

	e, rec := newTestFormEvent("/depenses", url.Values{
		"categorie":   {"Essence"},
		"montant_ttc": {"douze"},
	})
	if err := HandleExpenseCreate(st)(e); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
