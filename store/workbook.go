// Package store implements the record store over a single xlsx workbook.
//
// The workbook is the system of record: one sheet per table, read as a
// whole and overwritten as a whole. There is no partial-row update;
// every mutation is expressed as the new complete state of its table.
// A missing file or missing sheet reads as empty; only a genuine I/O
// failure surfaces as models.ErrStorageUnavailable.
package store

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"atelierbrocs/models"
)

// Sheet names, fixed by the legacy workbook layout.
const (
	TableInventory = "Inventaire"
	TableSales     = "Ventes"
	TableClients   = "Clients"
	TableExpenses  = "Depenses"
	TableQuotes    = "Devis"
)

// Snapshot is the full in-memory state of all five tables, loaded at the
// start of a unit of work and written back in full at the end.
type Snapshot struct {
	Inventory []models.InventoryItem
	Sales     []models.Sale
	Clients   []models.Client
	Expenses  []models.Expense
	Quotes    []models.Quote
}

// Store serializes all access to the workbook file. Mutations go through
// Update, which holds the store mutex for the whole load-compute-write
// cycle, so in-process writers never race. An out-of-band change to the
// file (someone editing the workbook directly) between load and write is
// detected via the file's modification time and rejected as
// models.ErrConflict.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open returns a Store for the workbook at path. The file does not have
// to exist yet; it is created on the first successful Update.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, &models.ValidationError{Field: "workbook", Message: "path must not be empty"}
	}
	return &Store{path: path}, nil
}

// Path returns the workbook location.
func (s *Store) Path() string { return s.path }

// Load reads a snapshot of all five tables. The returned snapshot is a
// private copy; mutating it has no effect until it is passed back
// through Update's callback.
func (s *Store) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, _, err := s.loadLocked()
	return snap, err
}

// Update runs fn against a freshly loaded snapshot and, if fn succeeds,
// overwrites the whole workbook with the snapshot's new state. If fn
// returns an error nothing is written. If the file changed underneath us
// while fn ran, Update returns models.ErrConflict and writes nothing;
// callers are expected to retry the whole cycle once before giving up.
func (s *Store) Update(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, loadedAt, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	if changed, err := s.changedSince(loadedAt); err != nil {
		return err
	} else if changed {
		return models.ErrConflict
	}
	return s.writeLocked(snap)
}

// loadLocked reads the workbook. Missing file or sheets read as empty
// tables. Caller must hold s.mu.
func (s *Store) loadLocked() (*Snapshot, time.Time, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Snapshot{}, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: stat %s: %v", models.ErrStorageUnavailable, s.path, err)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: open %s: %v", models.ErrStorageUnavailable, s.path, err)
	}
	defer f.Close()

	snap := &Snapshot{}
	if snap.Inventory, err = decodeInventory(readSheet(f, TableInventory)); err != nil {
		return nil, time.Time{}, err
	}
	if snap.Sales, err = decodeSales(readSheet(f, TableSales)); err != nil {
		return nil, time.Time{}, err
	}
	if snap.Clients, err = decodeClients(readSheet(f, TableClients)); err != nil {
		return nil, time.Time{}, err
	}
	if snap.Expenses, err = decodeExpenses(readSheet(f, TableExpenses)); err != nil {
		return nil, time.Time{}, err
	}
	if snap.Quotes, err = decodeQuotes(readSheet(f, TableQuotes)); err != nil {
		return nil, time.Time{}, err
	}
	return snap, info.ModTime(), nil
}

// changedSince reports whether the workbook file was modified after
// loadedAt. A zero loadedAt means the file did not exist at load time,
// in which case its appearance since counts as a change.
func (s *Store) changedSince(loadedAt time.Time) (bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return !loadedAt.IsZero(), nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: stat %s: %v", models.ErrStorageUnavailable, s.path, err)
	}
	if loadedAt.IsZero() {
		return true, nil
	}
	return !info.ModTime().Equal(loadedAt), nil
}

// writeLocked overwrites the workbook with the snapshot. Caller must
// hold s.mu.
func (s *Store) writeLocked(snap *Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	// Reuse the default sheet for the first table instead of leaving an
	// empty "Sheet1" around.
	if err := f.SetSheetName(f.GetSheetName(0), TableInventory); err != nil {
		return fmt.Errorf("%w: rename default sheet: %v", models.ErrStorageUnavailable, err)
	}

	writeSheet(f, TableInventory, inventoryHeader, encodeInventory(snap.Inventory))
	writeSheet(f, TableSales, salesHeader, encodeSales(snap.Sales))
	writeSheet(f, TableClients, clientsHeader, encodeClients(snap.Clients))
	writeSheet(f, TableExpenses, expensesHeader, encodeExpenses(snap.Expenses))
	writeSheet(f, TableQuotes, quotesHeader, encodeQuotes(snap.Quotes))

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("%w: write %s: %v", models.ErrStorageUnavailable, s.path, err)
	}
	return nil
}
