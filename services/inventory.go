// Package services holds the business core: the inventory lifecycle,
// sale settlement, period aggregation, the compensation engine, and the
// document/report builders on top of them.
package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
	"atelierbrocs/store"
)

// CreateItemInput is the form behind "add a new project".
type CreateItemInput struct {
	Name            string
	Category        models.Category
	ProjectType     models.ProjectType
	AcquisitionCost decimal.Decimal
	EntryDate       time.Time
}

func (in CreateItemInput) validate() error {
	if in.Name == "" {
		return &models.ValidationError{Field: "nom", Message: "name must not be empty"}
	}
	if in.AcquisitionCost.IsNegative() {
		return &models.ValidationError{Field: "cout_total", Message: "acquisition cost must not be negative"}
	}
	return nil
}

// CreateItem appends a new inventory item in the ToRenovate state with
// zeroed hour and material meters. Ids are max+1 and never reused, even
// when earlier items leave the available set, so sale rows keep
// pointing at the right item forever.
func CreateItem(st *store.Store, in CreateItemInput) (models.InventoryItem, error) {
	if err := in.validate(); err != nil {
		return models.InventoryItem{}, err
	}

	var created models.InventoryItem
	err := withConflictRetry(st, func(snap *store.Snapshot) error {
		created = models.InventoryItem{
			ID:              nextItemID(snap.Inventory),
			Name:            in.Name,
			Category:        in.Category,
			ProjectType:     in.ProjectType,
			Status:          models.StatusToRenovate,
			AcquisitionCost: in.AcquisitionCost,
			MaterialCost:    decimal.Zero,
			HoursSpent:      0,
			EntryDate:       in.EntryDate,
		}
		snap.Inventory = append(snap.Inventory, created)
		return nil
	})
	if err != nil {
		return models.InventoryItem{}, err
	}
	return created, nil
}

// RecordProgress adds hours and material cost to an item's running
// meters and moves it to newStatus. Both deltas are cumulative adds.
// Sold items are frozen: any progress on them is InvalidState, and
// newStatus may never be Sold (only settlement sets that).
func RecordProgress(st *store.Store, itemID int, addHours float64, addMaterials decimal.Decimal, newStatus models.Status) (models.InventoryItem, error) {
	if addHours < 0 {
		return models.InventoryItem{}, &models.ValidationError{Field: "temps_passe", Message: "added hours must not be negative"}
	}
	if addMaterials.IsNegative() {
		return models.InventoryItem{}, &models.ValidationError{Field: "cout_materiaux", Message: "added material cost must not be negative"}
	}
	if newStatus == models.StatusSold {
		return models.InventoryItem{}, fmt.Errorf("%w: only a sale can mark an item sold", models.ErrInvalidState)
	}
	if _, err := models.ParseStatus(string(newStatus)); err != nil {
		return models.InventoryItem{}, &models.ValidationError{Field: "statut", Message: err.Error()}
	}

	var updated models.InventoryItem
	err := withConflictRetry(st, func(snap *store.Snapshot) error {
		idx := findItem(snap.Inventory, itemID)
		if idx < 0 {
			return fmt.Errorf("%w: item %d", models.ErrNotFound, itemID)
		}
		it := &snap.Inventory[idx]
		if it.Status == models.StatusSold {
			return fmt.Errorf("%w: item %d is already sold", models.ErrInvalidState, itemID)
		}
		it.HoursSpent += addHours
		it.MaterialCost = it.MaterialCost.Add(addMaterials)
		it.Status = newStatus
		updated = *it
		return nil
	})
	if err != nil {
		return models.InventoryItem{}, err
	}
	return updated, nil
}

// AvailableItems returns the items that can still be sold (everything
// not yet Sold), newest first like the workshop view.
func AvailableItems(st *store.Store) ([]models.InventoryItem, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	var out []models.InventoryItem
	for _, it := range snap.Inventory {
		if it.Available() {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// nextItemID returns max existing id + 1, or 1 for an empty table.
func nextItemID(items []models.InventoryItem) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

func findItem(items []models.InventoryItem, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// withConflictRetry runs one store update and retries the whole
// load-compute-write cycle exactly once if the workbook changed
// underneath it. Anything past one retry is surfaced to the caller.
func withConflictRetry(st *store.Store, fn func(*store.Snapshot) error) error {
	err := st.Update(fn)
	if errors.Is(err, models.ErrConflict) {
		err = st.Update(fn)
	}
	return err
}
