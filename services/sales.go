package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
	"atelierbrocs/store"
)

// SettleSaleInput is the form behind "valider la vente".
type SettleSaleInput struct {
	ItemID            int
	FinalPrice        decimal.Decimal
	Channel           string
	ClientID          int // 0 for a walk-in sale
	ApplySocialCharge bool
	SaleDate          time.Time
}

func (in SettleSaleInput) validate() error {
	if in.FinalPrice.IsNegative() {
		return &models.ValidationError{Field: "prix_vente_final", Message: "sale price must not be negative"}
	}
	return nil
}

// NetMargin computes the margin on one sale: price minus acquisition
// cost, minus accumulated material cost, minus the social charge when
// it applies. A negative result is a loss, not an error. The social
// charge is returned separately for display.
func NetMargin(item models.InventoryItem, finalPrice, socialChargeRate decimal.Decimal, applySocialCharge bool) (margin, socialCharge decimal.Decimal) {
	socialCharge = decimal.Zero
	if applySocialCharge {
		socialCharge = finalPrice.Mul(socialChargeRate)
	}
	margin = finalPrice.Sub(item.AcquisitionCost).Sub(item.MaterialCost).Sub(socialCharge)
	return margin, socialCharge
}

// SettleSale sells an available item: it appends the Ventes row with
// the computed net margin and flips the item to Sold in the same
// workbook write, so both land or neither does. A sold or unknown item
// leaves every table untouched.
func SettleSale(st *store.Store, cfg Config, in SettleSaleInput) (models.Sale, error) {
	if err := in.validate(); err != nil {
		return models.Sale{}, err
	}

	var sale models.Sale
	err := withConflictRetry(st, func(snap *store.Snapshot) error {
		idx := findItem(snap.Inventory, in.ItemID)
		if idx < 0 {
			return fmt.Errorf("%w: item %d", models.ErrNotFound, in.ItemID)
		}
		item := &snap.Inventory[idx]
		if !item.Available() {
			return fmt.Errorf("%w: item %d is already sold", models.ErrInvalidState, in.ItemID)
		}
		if in.ClientID != 0 && findClient(snap.Clients, in.ClientID) < 0 {
			return fmt.Errorf("%w: client %d", models.ErrNotFound, in.ClientID)
		}

		margin, _ := NetMargin(*item, in.FinalPrice, cfg.SocialChargeRate, in.ApplySocialCharge)
		sale = models.Sale{
			ID:         nextSaleID(snap.Sales),
			ItemID:     item.ID,
			ItemName:   item.Name,
			FinalPrice: in.FinalPrice,
			Date:       in.SaleDate,
			ClientID:   in.ClientID,
			Channel:    in.Channel,
			NetMargin:  margin,
		}
		snap.Sales = append(snap.Sales, sale)
		item.Status = models.StatusSold
		return nil
	})
	if err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// SalesHistory returns all recorded sales, newest first.
func SalesHistory(st *store.Store) ([]models.Sale, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	sales := snap.Sales
	sort.Slice(sales, func(i, j int) bool { return sales[i].ID > sales[j].ID })
	return sales, nil
}

func nextSaleID(sales []models.Sale) int {
	max := 0
	for _, s := range sales {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func findClient(clients []models.Client, id int) int {
	for i := range clients {
		if clients[i].ID == id {
			return i
		}
	}
	return -1
}
