package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"atelierbrocs/models"
)

// Canonical column sets, in sheet order. Reads match headers
// case-insensitively after trimming; a column absent from the sheet
// takes its documented default (zero amount, empty string, resale
// project type).
var (
	inventoryHeader = []string{"id", "nom", "categorie", "statut", "cout_total", "date_entree", "photo", "temps_passe", "cout_materiaux", "type_projet"}
	salesHeader     = []string{"id_vente", "id_meuble", "nom_meuble", "prix_vente_final", "date_vente", "id_client", "plateforme", "marge_nette"}
	clientsHeader   = []string{"id_client", "nom_client", "email", "telephone"}
	expensesHeader  = []string{"id_depense", "date", "categorie", "montant_ttc"}
	quotesHeader    = []string{"id_devis", "nom_projet", "montant", "date_devis", "details", "id_client"}
)

const dateLayout = "2006-01-02"

// readSheet returns the sheet's data rows keyed by normalized header.
// A missing or empty sheet yields nil, never an error.
func readSheet(f *excelize.File, name string) []map[string]string {
	rows, err := f.GetRows(name)
	if err != nil || len(rows) < 2 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		if isBlankRow(raw) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(raw) {
				row[h] = strings.TrimSpace(raw[i])
			}
		}
		out = append(out, row)
	}
	return out
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// writeSheet replaces the named sheet's contents with header + rows.
func writeSheet(f *excelize.File, name string, header []string, rows [][]any) {
	if idx, _ := f.GetSheetIndex(name); idx < 0 {
		f.NewSheet(name)
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(name, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(name, cell, v)
		}
	}
}

// ── cell parsing ─────────────────────────────────────────────────────

func cellInt(row map[string]string, col string) int {
	v := row[col]
	if v == "" {
		return 0
	}
	// Sheets sometimes hold integer ids as "3.0".
	if f, err := strconv.ParseFloat(normalizeNumber(v), 64); err == nil {
		return int(f)
	}
	return 0
}

func cellFloat(row map[string]string, col string) float64 {
	f, err := strconv.ParseFloat(normalizeNumber(row[col]), 64)
	if err != nil {
		return 0
	}
	return f
}

func cellDecimal(row map[string]string, col string) (decimal.Decimal, error) {
	v := row[col]
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(normalizeNumber(v))
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %s: bad amount %q", col, v)
	}
	return d, nil
}

func cellDate(row map[string]string, col string) (time.Time, error) {
	v := row[col]
	if v == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{dateLayout, "02/01/2006", "2006-01-02 15:04:05", "02-01-06"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s: bad date %q", col, v)
}

// normalizeNumber accepts French-locale cells ("1 234,56").
func normalizeNumber(v string) string {
	v = strings.ReplaceAll(v, " ", "")
	v = strings.ReplaceAll(v, " ", "")
	return strings.ReplaceAll(v, ",", ".")
}

// amountCell rounds a monetary value half-even to 2 decimals at the
// persistence boundary and returns it as a number the spreadsheet can
// sum. Intermediate computation stays exact; only what lands in a cell
// is rounded.
func amountCell(d decimal.Decimal) float64 {
	f, _ := strconv.ParseFloat(d.StringFixedBank(2), 64)
	return f
}

func dateCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// ── Inventaire ───────────────────────────────────────────────────────

func decodeInventory(rows []map[string]string) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0, len(rows))
	for i, row := range rows {
		status := models.StatusToRenovate
		if s := row["statut"]; s != "" {
			var err error
			if status, err = models.ParseStatus(s); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", TableInventory, i+2, err)
			}
		}
		cost, err := cellDecimal(row, "cout_total")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableInventory, i+2, err)
		}
		materials, err := cellDecimal(row, "cout_materiaux")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableInventory, i+2, err)
		}
		entry, err := cellDate(row, "date_entree")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableInventory, i+2, err)
		}
		items = append(items, models.InventoryItem{
			ID:              cellInt(row, "id"),
			Name:            row["nom"],
			Category:        models.ParseCategory(row["categorie"]),
			ProjectType:     models.ParseProjectType(row["type_projet"]),
			Status:          status,
			AcquisitionCost: cost,
			MaterialCost:    materials,
			HoursSpent:      cellFloat(row, "temps_passe"),
			EntryDate:       entry,
			Photo:           row["photo"],
		})
	}
	return items, nil
}

func encodeInventory(items []models.InventoryItem) [][]any {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.ID, it.Name, string(it.Category), string(it.Status),
			amountCell(it.AcquisitionCost), dateCell(it.EntryDate), it.Photo,
			it.HoursSpent, amountCell(it.MaterialCost), string(it.ProjectType),
		})
	}
	return rows
}

// ── Ventes ───────────────────────────────────────────────────────────

func decodeSales(rows []map[string]string) ([]models.Sale, error) {
	sales := make([]models.Sale, 0, len(rows))
	for i, row := range rows {
		price, err := cellDecimal(row, "prix_vente_final")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableSales, i+2, err)
		}
		margin, err := cellDecimal(row, "marge_nette")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableSales, i+2, err)
		}
		date, err := cellDate(row, "date_vente")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableSales, i+2, err)
		}
		sales = append(sales, models.Sale{
			ID:         cellInt(row, "id_vente"),
			ItemID:     cellInt(row, "id_meuble"),
			ItemName:   row["nom_meuble"],
			FinalPrice: price,
			Date:       date,
			ClientID:   cellInt(row, "id_client"),
			Channel:    row["plateforme"],
			NetMargin:  margin,
		})
	}
	return sales, nil
}

func encodeSales(sales []models.Sale) [][]any {
	rows := make([][]any, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []any{
			s.ID, s.ItemID, s.ItemName, amountCell(s.FinalPrice),
			dateCell(s.Date), s.ClientID, s.Channel, amountCell(s.NetMargin),
		})
	}
	return rows
}

// ── Clients ──────────────────────────────────────────────────────────

func decodeClients(rows []map[string]string) ([]models.Client, error) {
	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, models.Client{
			ID:    cellInt(row, "id_client"),
			Name:  row["nom_client"],
			Email: row["email"],
			Phone: row["telephone"],
		})
	}
	return clients, nil
}

func encodeClients(clients []models.Client) [][]any {
	rows := make([][]any, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []any{c.ID, c.Name, c.Email, c.Phone})
	}
	return rows
}

// ── Depenses ─────────────────────────────────────────────────────────

func decodeExpenses(rows []map[string]string) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0, len(rows))
	for i, row := range rows {
		amount, err := cellDecimal(row, "montant_ttc")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableExpenses, i+2, err)
		}
		date, err := cellDate(row, "date")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableExpenses, i+2, err)
		}
		expenses = append(expenses, models.Expense{
			ID:       cellInt(row, "id_depense"),
			Date:     date,
			Category: row["categorie"],
			Amount:   amount,
		})
	}
	return expenses, nil
}

func encodeExpenses(expenses []models.Expense) [][]any {
	rows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []any{e.ID, dateCell(e.Date), e.Category, amountCell(e.Amount)})
	}
	return rows
}

// ── Devis ────────────────────────────────────────────────────────────

func decodeQuotes(rows []map[string]string) ([]models.Quote, error) {
	quotes := make([]models.Quote, 0, len(rows))
	for i, row := range rows {
		amount, err := cellDecimal(row, "montant")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableQuotes, i+2, err)
		}
		date, err := cellDate(row, "date_devis")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TableQuotes, i+2, err)
		}
		quotes = append(quotes, models.Quote{
			ID:          cellInt(row, "id_devis"),
			ProjectName: row["nom_projet"],
			Amount:      amount,
			Date:        date,
			Details:     row["details"],
			ClientID:    cellInt(row, "id_client"),
		})
	}
	return quotes, nil
}

func encodeQuotes(quotes []models.Quote) [][]any {
	rows := make([][]any, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []any{
			q.ID, q.ProjectName, amountCell(q.Amount), dateCell(q.Date),
			q.Details, q.ClientID,
		})
	}
	return rows
}
