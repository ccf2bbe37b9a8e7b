// Package testhelpers provides utilities for testing against a real
// temp-directory workbook store.
package testhelpers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
	"atelierbrocs/services"
	"atelierbrocs/store"
)

// NewTestStore creates a Store backed by a workbook in a temporary
// directory. The directory is cleaned up automatically when the test
// finishes; the workbook file itself appears on the first write.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "atelier.xlsx"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return st
}

// TestConfig returns the default business parameters used across tests:
// 12.3% social charge, 25/h, 60/40 split.
func TestConfig() services.Config {
	return services.Config{
		WorkbookPath:     "atelier.xlsx",
		SocialChargeRate: decimal.RequireFromString("0.123"),
		HourlyRate:       decimal.NewFromInt(25),
		OperatorShare:    decimal.RequireFromString("0.60"),
		BusinessShare:    decimal.RequireFromString("0.40"),
	}
}

// CreateTestItem creates an inventory item with the given name and
// acquisition cost and returns it.
func CreateTestItem(t *testing.T, st *store.Store, name string, acquisitionCost float64) models.InventoryItem {
	t.Helper()

	item, err := services.CreateItem(st, services.CreateItemInput{
		Name:            name,
		Category:        models.CategoryDresser,
		ProjectType:     models.ProjectResale,
		AcquisitionCost: decimal.NewFromFloat(acquisitionCost),
		EntryDate:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestClient creates a client record and returns it.
func CreateTestClient(t *testing.T, st *store.Store, name string) models.Client {
	t.Helper()

	client, err := services.AddClient(st, name, "", "")
	if err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// SettleTestSale sells an item at the given price with the social
// charge applied, on the given date.
func SettleTestSale(t *testing.T, st *store.Store, itemID int, price float64, date time.Time) models.Sale {
	t.Helper()

	sale, err := services.SettleSale(st, TestConfig(), services.SettleSaleInput{
		ItemID:            itemID,
		FinalPrice:        decimal.NewFromFloat(price),
		Channel:           "Boutique",
		ApplySocialCharge: true,
		SaleDate:          date,
	})
	if err != nil {
		t.Fatalf("failed to settle test sale: %v", err)
	}
	return sale
}
