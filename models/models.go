// Package models defines the domain records for the atelier tracker:
// the five tables kept in the workbook plus their lifecycle enums.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the renovation state of an inventory item. The string values
// are what gets persisted in the Inventaire sheet.
type Status string

const (
	StatusToRenovate Status = "À rénover"
	StatusInProgress Status = "En cours"
	StatusDone       Status = "Terminé"
	StatusSold       Status = "Vendu"
)

// ParseStatus maps a sheet cell to a Status. Unknown values are rejected
// rather than defaulted because a typo here would silently resurrect a
// sold item.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusToRenovate, StatusInProgress, StatusDone, StatusSold:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Category classifies a piece of furniture.
type Category string

const (
	CategoryDresser  Category = "Commode"
	CategoryTable    Category = "Table"
	CategorySeating  Category = "Assise"
	CategoryWardrobe Category = "Armoire"
	CategoryDesk     Category = "Bureau"
	CategoryDecor    Category = "Déco"
	CategoryOther    Category = "Autre"
)

// Categories lists all valid categories, in display order.
func Categories() []Category {
	return []Category{
		CategoryDresser, CategoryTable, CategorySeating,
		CategoryWardrobe, CategoryDesk, CategoryDecor, CategoryOther,
	}
}

// ParseCategory maps a sheet cell to a Category, falling back to
// CategoryOther for unrecognized labels.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// ProjectType distinguishes items bought for resale from client
// renovation commissions.
type ProjectType string

const (
	ProjectResale        ProjectType = "Achat/Revente"
	ProjectClientService ProjectType = "Prestation Client"
)

// ParseProjectType maps a sheet cell to a ProjectType, defaulting to
// resale, which is what the legacy sheet rows without the column mean.
func ParseProjectType(s string) ProjectType {
	if ProjectType(s) == ProjectClientService {
		return ProjectClientService
	}
	return ProjectResale
}

// InventoryItem is a piece of furniture moving through the renovation
// pipeline. HoursSpent and MaterialCost are cumulative meters: progress
// updates add to them, never replace them. Once Status is Sold the
// record is frozen.
type InventoryItem struct {
	ID              int
	Name            string
	Category        Category
	ProjectType     ProjectType
	Status          Status
	AcquisitionCost decimal.Decimal
	MaterialCost    decimal.Decimal
	HoursSpent      float64
	EntryDate       time.Time
	Photo           string
}

// Available reports whether the item can still be sold.
func (it InventoryItem) Available() bool {
	return it.Status != StatusSold
}

// Sale records one sale event. It is created exactly once by the
// settlement operation and never mutated afterwards. NetMargin is the
// computed figure at settlement time and may be negative.
type Sale struct {
	ID         int
	ItemID     int
	ItemName   string // snapshot of the item name at sale time
	FinalPrice decimal.Decimal
	Date       time.Time
	ClientID   int // 0 = walk-in / no client record
	Channel    string
	NetMargin  decimal.Decimal
}

// Client is an address-book entry. Append-only.
type Client struct {
	ID    int
	Name  string
	Email string
	Phone string
}

// Expense is a tax-inclusive business expense. Append-only.
type Expense struct {
	ID       int
	Date     time.Time
	Category string
	Amount   decimal.Decimal
}

// Quote is an issued estimate. Append-only; promoting a quote into a
// sale is a manual action, never automatic.
type Quote struct {
	ID          int
	ProjectName string
	Amount      decimal.Decimal
	Date        time.Time
	Details     string
	ClientID    int // 0 = none
}
